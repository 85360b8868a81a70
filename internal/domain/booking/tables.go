package booking

import (
	"math/rand/v2"
	"sync"
)

// Randomizer abstracts the source of randomness for table assignment so
// tests can inject a seeded, reproducible one.
type Randomizer interface {
	IntN(n int) int
}

type defaultRandomizer struct{}

// NewRandomizer returns a goroutine-safe randomizer backed by the
// process-global source.
func NewRandomizer() Randomizer {
	return defaultRandomizer{}
}

func (defaultRandomizer) IntN(n int) int {
	return rand.IntN(n)
}

type seededRandomizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSeededRandomizer(seed uint64) Randomizer {
	return &seededRandomizer{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (s *seededRandomizer) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// FreeTables returns the table numbers in 1..maxTables not present in
// occupied, in ascending order.
func FreeTables(occupied []int, maxTables int) []int {
	taken := make(map[int]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}

	free := make([]int, 0, maxTables-len(taken))
	for t := 1; t <= maxTables; t++ {
		if _, ok := taken[t]; !ok {
			free = append(free, t)
		}
	}
	return free
}

// PickTable selects one free table uniformly at random. Load-spreading
// only: any free table is equally valid. Returns false when the slot is
// fully occupied.
func PickTable(occupied []int, maxTables int, rng Randomizer) (int, bool) {
	free := FreeTables(occupied, maxTables)
	if len(free) == 0 {
		return 0, false
	}
	return free[rng.IntN(len(free))], true
}

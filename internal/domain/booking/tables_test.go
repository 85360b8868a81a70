//go:build unit

package booking_test

import (
	"testing"

	"cafe-fausse/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeTables(t *testing.T) {
	tests := []struct {
		name      string
		occupied  []int
		maxTables int
		want      []int
	}{
		{
			name:      "empty slot has every table free",
			occupied:  nil,
			maxTables: 5,
			want:      []int{1, 2, 3, 4, 5},
		},
		{
			name:      "occupied tables are excluded",
			occupied:  []int{2, 4},
			maxTables: 5,
			want:      []int{1, 3, 5},
		},
		{
			name:      "full slot has none",
			occupied:  []int{1, 2, 3},
			maxTables: 3,
			want:      []int{},
		},
		{
			name:      "duplicates in occupied are harmless",
			occupied:  []int{1, 1, 2},
			maxTables: 3,
			want:      []int{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.FreeTables(tt.occupied, tt.maxTables)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FreeTables mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPickTable(t *testing.T) {
	t.Run("returns false when slot is full", func(t *testing.T) {
		rng := booking.NewSeededRandomizer(1)
		_, ok := booking.PickTable([]int{1, 2, 3}, 3, rng)
		assert.False(t, ok)
	})

	t.Run("only free tables are ever picked", func(t *testing.T) {
		rng := booking.NewSeededRandomizer(42)
		occupied := []int{1, 3, 5, 7, 9}

		for range 200 {
			table, ok := booking.PickTable(occupied, 10, rng)
			require.True(t, ok)
			assert.NotContains(t, occupied, table)
			assert.GreaterOrEqual(t, table, 1)
			assert.LessOrEqual(t, table, 10)
		}
	})

	t.Run("every free table is reachable", func(t *testing.T) {
		rng := booking.NewSeededRandomizer(7)
		seen := make(map[int]struct{})

		for range 500 {
			table, ok := booking.PickTable([]int{2}, 4, rng)
			require.True(t, ok)
			seen[table] = struct{}{}
		}

		assert.Len(t, seen, 3)
	})

	t.Run("same seed gives the same sequence", func(t *testing.T) {
		first := booking.NewSeededRandomizer(99)
		second := booking.NewSeededRandomizer(99)

		for range 50 {
			a, _ := booking.PickTable(nil, 30, first)
			b, _ := booking.PickTable(nil, 30, second)
			assert.Equal(t, a, b)
		}
	})
}

func TestNewReservation(t *testing.T) {
	name, err := booking.NewGuestName("Ana Gomez")
	require.NoError(t, err)
	email, err := booking.NewEmail("ana@example.com")
	require.NoError(t, err)
	guests4 := 4
	guests, err := booking.NewGuestCount(&guests4)
	require.NoError(t, err)
	slot, err := booking.ParseTimeSlot("2030-12-24T19:00")
	require.NoError(t, err)

	t.Run("valid table number", func(t *testing.T) {
		r, err := booking.NewReservation(name, email, booking.NewPhone(nil), guests, slot, 17, 30, false)
		require.NoError(t, err)
		assert.Equal(t, 17, r.TableNumber())
		assert.NotZero(t, r.ID())
	})

	t.Run("table number above the pool", func(t *testing.T) {
		_, err := booking.NewReservation(name, email, booking.NewPhone(nil), guests, slot, 31, 30, false)
		assert.ErrorIs(t, err, booking.ErrTableOutOfRange)
	})

	t.Run("table number zero", func(t *testing.T) {
		_, err := booking.NewReservation(name, email, booking.NewPhone(nil), guests, slot, 0, 30, false)
		assert.ErrorIs(t, err, booking.ErrTableOutOfRange)
	})
}

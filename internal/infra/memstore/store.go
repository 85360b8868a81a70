// Package memstore is the in-memory counterpart of the Postgres store.
// It enforces the same uniqueness rules under a mutex, so the command
// layer's conflict-retry path behaves identically in unit tests.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"cafe-fausse/internal/domain/booking"
	"cafe-fausse/internal/domain/newsletter"
	"cafe-fausse/internal/infra"
	"cafe-fausse/internal/pkg/clock"
	"cafe-fausse/internal/usecase/queries"
	"cafe-fausse/internal/usecase/shared"
)

type slotTableKey struct {
	slot  time.Time
	table int
}

type emailSlotKey struct {
	email string
	slot  time.Time
}

type subscriberRec struct {
	view *queries.SubscriberView
	seq  int
}

type Store struct {
	mu    sync.Mutex
	clock clock.Clock
	seq   int

	reservations []*queries.ReservationView
	subscribers  []subscriberRec

	bySlotTable map[slotTableKey]struct{}
	byEmailSlot map[emailSlotKey]struct{}
	byEmail     map[string]*queries.SubscriberView
}

func New(clk clock.Clock) *Store {
	return &Store{
		clock:       clk,
		bySlotTable: make(map[slotTableKey]struct{}),
		byEmailSlot: make(map[emailSlotKey]struct{}),
		byEmail:     make(map[string]*queries.SubscriberView),
	}
}

// Within serializes on the store mutex and restores the previous state
// when fn fails, matching the all-or-nothing transaction contract.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot()
	if err := fn(ctx, &memTx{store: s}); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

type storeState struct {
	reservations []*queries.ReservationView
	subscribers  []subscriberRec
	bySlotTable  map[slotTableKey]struct{}
	byEmailSlot  map[emailSlotKey]struct{}
	byEmail      map[string]*queries.SubscriberView
	seq          int
}

func (s *Store) snapshot() storeState {
	st := storeState{
		reservations: append([]*queries.ReservationView(nil), s.reservations...),
		subscribers:  append([]subscriberRec(nil), s.subscribers...),
		bySlotTable:  make(map[slotTableKey]struct{}, len(s.bySlotTable)),
		byEmailSlot:  make(map[emailSlotKey]struct{}, len(s.byEmailSlot)),
		byEmail:      make(map[string]*queries.SubscriberView, len(s.byEmail)),
		seq:          s.seq,
	}
	for k := range s.bySlotTable {
		st.bySlotTable[k] = struct{}{}
	}
	for k := range s.byEmailSlot {
		st.byEmailSlot[k] = struct{}{}
	}
	for k, v := range s.byEmail {
		st.byEmail[k] = v
	}
	return st
}

func (s *Store) restore(st storeState) {
	s.reservations = st.reservations
	s.subscribers = st.subscribers
	s.bySlotTable = st.bySlotTable
	s.byEmailSlot = st.byEmailSlot
	s.byEmail = st.byEmail
	s.seq = st.seq
}

type memTx struct {
	store *Store
}

func (t *memTx) Reservations() shared.ReservationRepository {
	return &reservationRepo{store: t.store}
}

func (t *memTx) Subscribers() shared.SubscriberRepository {
	return &subscriberRepo{store: t.store}
}

type reservationRepo struct {
	store *Store
}

func (r *reservationRepo) Create(_ context.Context, res *booking.Reservation) (time.Time, error) {
	s := r.store
	slot := res.TimeSlot().Time()

	if _, taken := s.bySlotTable[slotTableKey{slot: slot, table: res.TableNumber()}]; taken {
		return time.Time{}, infra.WrapRepoErr("table already taken for slot", nil, infra.KindConflict)
	}
	if _, dup := s.byEmailSlot[emailSlotKey{email: res.Email().Value(), slot: slot}]; dup {
		return time.Time{}, infra.WrapRepoErr("reservation already exists for email and slot", nil, infra.KindDuplicateKey)
	}

	createdAt := s.clock.Now()
	s.bySlotTable[slotTableKey{slot: slot, table: res.TableNumber()}] = struct{}{}
	s.byEmailSlot[emailSlotKey{email: res.Email().Value(), slot: slot}] = struct{}{}
	s.reservations = append(s.reservations, &queries.ReservationView{
		ID:              res.ID(),
		Name:            res.Name().Value(),
		Email:           res.Email().Value(),
		Phone:           res.Phone().Value(),
		Guests:          res.Guests().Value(),
		TimeSlot:        slot,
		TableNumber:     res.TableNumber(),
		NewsletterOptIn: res.NewsletterOptIn(),
		CreatedAt:       createdAt,
	})

	return createdAt, nil
}

func (r *reservationRepo) ExistsByEmailAndSlot(_ context.Context, email string, slot time.Time) (bool, error) {
	_, ok := r.store.byEmailSlot[emailSlotKey{email: email, slot: slot}]
	return ok, nil
}

func (r *reservationRepo) OccupiedTables(_ context.Context, slot time.Time) ([]int, error) {
	var tables []int
	for _, res := range r.store.reservations {
		if res.TimeSlot.Equal(slot) {
			tables = append(tables, res.TableNumber)
		}
	}
	return tables, nil
}

type subscriberRepo struct {
	store *Store
}

func (r *subscriberRepo) FindByEmail(_ context.Context, email string) (*queries.SubscriberView, error) {
	view, ok := r.store.byEmail[email]
	if !ok {
		return nil, infra.WrapRepoErr("subscriber not found", nil, infra.KindNotFound)
	}
	copied := *view
	return &copied, nil
}

func (r *subscriberRepo) Create(_ context.Context, sub *newsletter.Subscriber) (time.Time, error) {
	s := r.store
	if _, dup := s.byEmail[sub.Email().Value()]; dup {
		return time.Time{}, infra.WrapRepoErr("email already subscribed", nil, infra.KindDuplicateKey)
	}
	return s.insertSubscriber(sub), nil
}

func (r *subscriberRepo) CreateIfAbsent(_ context.Context, sub *newsletter.Subscriber) (bool, error) {
	s := r.store
	if _, dup := s.byEmail[sub.Email().Value()]; dup {
		return false, nil
	}
	s.insertSubscriber(sub)
	return true, nil
}

func (s *Store) insertSubscriber(sub *newsletter.Subscriber) time.Time {
	createdAt := s.clock.Now()
	view := &queries.SubscriberView{
		ID:        sub.ID(),
		Name:      sub.Name(),
		Email:     sub.Email().Value(),
		CreatedAt: createdAt,
	}
	s.seq++
	s.byEmail[view.Email] = view
	s.subscribers = append(s.subscribers, subscriberRec{view: view, seq: s.seq})
	return createdAt
}

// ListReservationsBySlot implements queries.OverviewReadStore.
func (s *Store) ListReservationsBySlot(_ context.Context) ([]*queries.ReservationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := append([]*queries.ReservationView(nil), s.reservations...)
	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].TimeSlot.Equal(result[j].TimeSlot) {
			return result[i].TimeSlot.Before(result[j].TimeSlot)
		}
		return result[i].TableNumber < result[j].TableNumber
	})
	return result, nil
}

// ListSubscribersByCreatedDesc implements queries.OverviewReadStore.
// Insertion order breaks created_at ties, newest first.
func (s *Store) ListSubscribersByCreatedDesc(_ context.Context) ([]*queries.SubscriberView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := append([]subscriberRec(nil), s.subscribers...)
	sort.SliceStable(recs, func(i, j int) bool {
		if !recs[i].view.CreatedAt.Equal(recs[j].view.CreatedAt) {
			return recs[i].view.CreatedAt.After(recs[j].view.CreatedAt)
		}
		return recs[i].seq > recs[j].seq
	})

	result := make([]*queries.SubscriberView, len(recs))
	for i, rec := range recs {
		result[i] = rec.view
	}
	return result, nil
}

package trip

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/viotsoft/Altiq-hr-AI/shared/sequence"
)

// ErrNotFound is the storage-level sentinel for a missing trip.
var ErrNotFound = errors.New("trip not found")

//go:generate mockgen -source=trip_repo.go -destination=mock/trip_repo_mock.go -package=mock
type Repository interface {
	// CreateTrip stores the trip and assigns its TripID.
	CreateTrip(ctx context.Context, t *Trip) error
	FindTrip(ctx context.Context, tripID string) (*Trip, error)
	UpdateTrip(ctx context.Context, t *Trip) error
	// ListTrips applies conjunctive filters; empty strings pass through.
	// The status filter is case-insensitive. Results are ordered newest
	// first.
	ListTrips(ctx context.Context, filter TripFilter) ([]Trip, error)
	// PendingByManager returns trips awaiting the manager's decision in
	// insertion order.
	PendingByManager(ctx context.Context, managerID string) ([]Trip, error)
	TripExists(ctx context.Context, tripID string) (bool, error)
	// CreateExpense stores the expense and assigns its ExpenseID.
	CreateExpense(ctx context.Context, e *TripExpense) error
	ExpensesByTrip(ctx context.Context, tripID string) ([]TripExpense, error)
}

type memoryRepository struct {
	mu       sync.Mutex
	trips    []*Trip
	byID     map[string]*Trip
	expenses map[string][]TripExpense
	tripIDs  *sequence.Counter
	expIDs   *sequence.Counter
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:     make(map[string]*Trip),
		expenses: make(map[string][]TripExpense),
		tripIDs:  sequence.NewCounter("TR", 3),
		expIDs:   sequence.NewCounter("EXP", 4),
	}
}

func (r *memoryRepository) CreateTrip(_ context.Context, t *Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.TripID = r.tripIDs.Next()
	stored := *t
	r.trips = append(r.trips, &stored)
	r.byID[t.TripID] = &stored
	return nil
}

func (r *memoryRepository) FindTrip(_ context.Context, tripID string) (*Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[tripID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, tripID)
	}
	cp := *t
	return &cp, nil
}

func (r *memoryRepository) UpdateTrip(_ context.Context, t *Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[t.TripID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, t.TripID)
	}
	*stored = *t
	return nil
}

func (r *memoryRepository) ListTrips(_ context.Context, filter TripFilter) ([]Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Trip
	for _, t := range r.trips {
		if filter.EmpID != "" && t.EmpID != filter.EmpID {
			continue
		}
		if filter.Status != "" && !strings.EqualFold(t.Status, filter.Status) {
			continue
		}
		if filter.ManagerID != "" && t.ManagerID != filter.ManagerID {
			continue
		}
		out = append(out, *t)
	}
	// Newest first. Trips created within the same clock tick fall back to
	// the ID sequence.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		ni, _ := sequence.Suffix("TR", out[i].TripID)
		nj, _ := sequence.Suffix("TR", out[j].TripID)
		return ni > nj
	})
	return out, nil
}

func (r *memoryRepository) PendingByManager(_ context.Context, managerID string) ([]Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Trip
	for _, t := range r.trips {
		if t.Status != StatusPending {
			continue
		}
		if managerID != "" && t.ManagerID != managerID {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *memoryRepository) TripExists(_ context.Context, tripID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[tripID]
	return ok, nil
}

func (r *memoryRepository) CreateExpense(_ context.Context, e *TripExpense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ExpenseID = r.expIDs.Next()
	r.expenses[e.TripID] = append(r.expenses[e.TripID], *e)
	return nil
}

func (r *memoryRepository) ExpensesByTrip(_ context.Context, tripID string) ([]TripExpense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.expenses[tripID]
	out := make([]TripExpense, len(stored))
	copy(out, stored)
	return out, nil
}

package employee

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/viotsoft/Altiq-hr-AI/shared/sequence"
)

// Storage-level sentinels, translated to domain errors by the service.
var (
	ErrDuplicateID = errors.New("employee id already exists")
	ErrNotFound    = errors.New("employee not found")
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, empID string) (*Employee, error)
	Exists(ctx context.Context, empID string) (bool, error)
	FindAll(ctx context.Context) ([]Employee, error)
	FindByManager(ctx context.Context, managerID string) ([]Employee, error)
	NextID(ctx context.Context) (string, error)
}

const (
	idPrefix = "E"
	idWidth  = 3
)

// memoryRepository keeps the directory in process memory: a map for lookup
// plus the insertion order, guarded by a single mutex. Records are never
// deleted.
type memoryRepository struct {
	mu    sync.Mutex
	byID  map[string]*Employee
	order []string
}

func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[string]*Employee)}
}

func (r *memoryRepository) Create(_ context.Context, e *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.EmpID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, e.EmpID)
	}
	stored := *e
	r.byID[e.EmpID] = &stored
	r.order = append(r.order, e.EmpID)
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, empID string) (*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[empID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, empID)
	}
	cp := *e
	return &cp, nil
}

func (r *memoryRepository) Exists(_ context.Context, empID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[empID]
	return ok, nil
}

func (r *memoryRepository) FindAll(_ context.Context) ([]Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Employee, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out, nil
}

func (r *memoryRepository) FindByManager(_ context.Context, managerID string) ([]Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Employee
	for _, id := range r.order {
		e := r.byID[id]
		if e.ManagerID != nil && *e.ManagerID == managerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

// NextID scans the assigned identifiers so that explicitly supplied IDs keep
// the sequence monotonic and collision-free.
func (r *memoryRepository) NextID(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.byID) == 0 {
		return sequence.Format(idPrefix, idWidth, 1), nil
	}
	var max int64
	for id := range r.byID {
		n, err := sequence.Suffix(idPrefix, id)
		if err != nil {
			return "", err
		}
		if n > max {
			max = n
		}
	}
	return sequence.Format(idPrefix, idWidth, max+1), nil
}

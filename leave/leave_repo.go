package leave

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrAccountNotFound is the storage-level sentinel for a missing account.
var ErrAccountNotFound = errors.New("leave account not found")

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	// Materialize returns the account, creating it with defaultBalance and
	// empty history on first reference.
	Materialize(ctx context.Context, empID string, defaultBalance int) (*LeaveAccount, error)
	// Find returns the account or ErrAccountNotFound; it never materializes.
	Find(ctx context.Context, empID string) (*LeaveAccount, error)
	// Save upserts the account, assigning HistoryIDs to new history items.
	Save(ctx context.Context, acct *LeaveAccount) error
	NextRequestID(ctx context.Context) (int64, error)
}

type memoryRepository struct {
	mu            sync.Mutex
	accounts      map[string]*LeaveAccount
	lastHistoryID int64
	lastRequestID int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{accounts: make(map[string]*LeaveAccount)}
}

func (r *memoryRepository) Materialize(_ context.Context, empID string, defaultBalance int) (*LeaveAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[empID]
	if !ok {
		acct = &LeaveAccount{EmpID: empID, Balance: defaultBalance}
		r.accounts[empID] = acct
	}
	return copyAccount(acct), nil
}

func (r *memoryRepository) Find(_ context.Context, empID string) (*LeaveAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[empID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, empID)
	}
	return copyAccount(acct), nil
}

func (r *memoryRepository) Save(_ context.Context, acct *LeaveAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyAccount(acct)
	for i := range stored.History {
		if stored.History[i].HistoryID == 0 {
			r.lastHistoryID++
			stored.History[i].HistoryID = r.lastHistoryID
		}
	}
	r.accounts[acct.EmpID] = stored
	return nil
}

func (r *memoryRepository) NextRequestID(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastRequestID++
	return r.lastRequestID, nil
}

func copyAccount(acct *LeaveAccount) *LeaveAccount {
	cp := *acct
	cp.History = make([]LeaveHistoryItem, len(acct.History))
	copy(cp.History, acct.History)
	return &cp
}

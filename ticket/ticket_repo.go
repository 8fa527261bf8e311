package ticket

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/viotsoft/Altiq-hr-AI/shared/sequence"
)

// ErrNotFound is the storage-level sentinel for a missing ticket.
var ErrNotFound = errors.New("ticket not found")

//go:generate mockgen -source=ticket_repo.go -destination=mock/ticket_repo_mock.go -package=mock
type Repository interface {
	// Create stores the ticket and assigns its TicketID.
	Create(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, ticketID string) (*Ticket, error)
	Update(ctx context.Context, t *Ticket) error
	// FindAll applies conjunctive filters; empty strings pass through. The
	// status filter is case-insensitive. Insertion order is preserved.
	FindAll(ctx context.Context, empID, status string) ([]Ticket, error)
	AppendHistory(ctx context.Context, h StatusChange) error
	HistoryByTicket(ctx context.Context, ticketID string) ([]StatusChange, error)
}

type memoryRepository struct {
	mu      sync.Mutex
	tickets []*Ticket
	byID    map[string]*Ticket
	history map[string][]StatusChange
	ids     *sequence.Counter
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:    make(map[string]*Ticket),
		history: make(map[string][]StatusChange),
		ids:     sequence.NewCounter("T", 4),
	}
}

func (r *memoryRepository) Create(_ context.Context, t *Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.TicketID = r.ids.Next()
	stored := *t
	r.tickets = append(r.tickets, &stored)
	r.byID[t.TicketID] = &stored
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, ticketID string) (*Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[ticketID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ticketID)
	}
	cp := *t
	return &cp, nil
}

func (r *memoryRepository) Update(_ context.Context, t *Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[t.TicketID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, t.TicketID)
	}
	*stored = *t
	return nil
}

func (r *memoryRepository) FindAll(_ context.Context, empID, status string) ([]Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Ticket
	for _, t := range r.tickets {
		if empID != "" && t.EmpID != empID {
			continue
		}
		if status != "" && !strings.EqualFold(t.Status, status) {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *memoryRepository) AppendHistory(_ context.Context, h StatusChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history[h.TicketID] = append(r.history[h.TicketID], h)
	return nil
}

func (r *memoryRepository) HistoryByTicket(_ context.Context, ticketID string) ([]StatusChange, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.history[ticketID]
	out := make([]StatusChange, len(stored))
	copy(out, stored)
	return out, nil
}

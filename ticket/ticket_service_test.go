package ticket_test

import (
	"context"
	"testing"

	"github.com/viotsoft/Altiq-hr-AI/ticket"
	ticketerrors "github.com/viotsoft/Altiq-hr-AI/ticket/errors"

	"github.com/stretchr/testify/assert"
)

type fakeTicketRepository struct {
	createFn          func(ctx context.Context, t *ticket.Ticket) error
	findByIDFn        func(ctx context.Context, ticketID string) (*ticket.Ticket, error)
	updateFn          func(ctx context.Context, t *ticket.Ticket) error
	findAllFn         func(ctx context.Context, empID, status string) ([]ticket.Ticket, error)
	appendHistoryFn   func(ctx context.Context, h ticket.StatusChange) error
	historyByTicketFn func(ctx context.Context, ticketID string) ([]ticket.StatusChange, error)
}

func (f *fakeTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	t.TicketID = "T0001"
	return nil
}

func (f *fakeTicketRepository) FindByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, ticketID)
	}
	return nil, ticket.ErrNotFound
}

func (f *fakeTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, t)
	}
	return nil
}

func (f *fakeTicketRepository) FindAll(ctx context.Context, empID, status string) ([]ticket.Ticket, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, empID, status)
	}
	return nil, nil
}

func (f *fakeTicketRepository) AppendHistory(ctx context.Context, h ticket.StatusChange) error {
	if f.appendHistoryFn != nil {
		return f.appendHistoryFn(ctx, h)
	}
	return nil
}

func (f *fakeTicketRepository) HistoryByTicket(ctx context.Context, ticketID string) ([]ticket.StatusChange, error) {
	if f.historyByTicketFn != nil {
		return f.historyByTicketFn(ctx, ticketID)
	}
	return nil, nil
}

func TestTicketService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success opens with history entry", func(t *testing.T) {
		repo := &fakeTicketRepository{}
		var recorded *ticket.StatusChange
		repo.appendHistoryFn = func(ctx context.Context, h ticket.StatusChange) error {
			recorded = &h
			return nil
		}
		svc := ticket.NewService(repo)

		resp, err := svc.Create(ctx, ticket.CreateTicketRequest{
			EmpID:  "E004",
			Item:   "Laptop",
			Reason: "Replacement for broken screen",
		})

		assert.NoError(t, err)
		assert.Equal(t, "T0001", resp.TicketID)
		assert.Equal(t, ticket.StatusOpen, resp.Status)
		assert.Equal(t, "Ticket T0001 created for E004.", resp.Message)

		assert.NotNil(t, recorded)
		assert.NotEmpty(t, recorded.ID)
		assert.Empty(t, recorded.FromStatus)
		assert.Equal(t, ticket.StatusOpen, recorded.ToStatus)
	})

	t.Run("negative missing reason", func(t *testing.T) {
		svc := ticket.NewService(&fakeTicketRepository{})

		_, err := svc.Create(ctx, ticket.CreateTicketRequest{EmpID: "E004", Item: "Laptop"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Reason is required")
	})
}

func TestTicketService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success any transition permitted", func(t *testing.T) {
		repo := &fakeTicketRepository{}
		repo.findByIDFn = func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
			return &ticket.Ticket{TicketID: ticketID, EmpID: "E004", Status: ticket.StatusClosed}, nil
		}
		var updated *ticket.Ticket
		repo.updateFn = func(ctx context.Context, t *ticket.Ticket) error {
			updated = t
			return nil
		}
		var recorded *ticket.StatusChange
		repo.appendHistoryFn = func(ctx context.Context, h ticket.StatusChange) error {
			recorded = &h
			return nil
		}
		svc := ticket.NewService(repo)

		// Closed back to Open is legal; the queue has no transition table.
		resp, err := svc.UpdateStatus(ctx, "T0001", ticket.UpdateTicketStatusRequest{Status: ticket.StatusOpen})

		assert.NoError(t, err)
		assert.Equal(t, ticket.StatusOpen, resp.Status)
		assert.Equal(t, "Ticket T0001 status updated to Open.", resp.Message)
		assert.NotNil(t, updated)
		assert.NotNil(t, recorded)
		assert.Equal(t, ticket.StatusClosed, recorded.FromStatus)
		assert.Equal(t, ticket.StatusOpen, recorded.ToStatus)
	})

	t.Run("success in progress status", func(t *testing.T) {
		repo := &fakeTicketRepository{}
		repo.findByIDFn = func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
			return &ticket.Ticket{TicketID: ticketID, EmpID: "E004", Status: ticket.StatusOpen}, nil
		}
		svc := ticket.NewService(repo)

		resp, err := svc.UpdateStatus(ctx, "T0001", ticket.UpdateTicketStatusRequest{Status: ticket.StatusInProgress})

		assert.NoError(t, err)
		assert.Equal(t, "In Progress", resp.Status)
	})

	t.Run("negative unknown ticket", func(t *testing.T) {
		svc := ticket.NewService(&fakeTicketRepository{})

		_, err := svc.UpdateStatus(ctx, "T0404", ticket.UpdateTicketStatusRequest{Status: ticket.StatusClosed})

		assert.ErrorIs(t, err, ticketerrors.ErrTicketNotFound)
	})

	t.Run("negative status outside the enumeration", func(t *testing.T) {
		svc := ticket.NewService(&fakeTicketRepository{})

		_, err := svc.UpdateStatus(ctx, "T0001", ticket.UpdateTicketStatusRequest{Status: "Archived"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Status is invalid")
	})
}

func TestTicketService_List(t *testing.T) {
	ctx := context.Background()

	repo := &fakeTicketRepository{}
	repo.findAllFn = func(ctx context.Context, empID, status string) ([]ticket.Ticket, error) {
		assert.Equal(t, "E004", empID)
		assert.Equal(t, "closed", status)
		return []ticket.Ticket{{TicketID: "T0001", EmpID: "E004", Status: ticket.StatusClosed}}, nil
	}
	svc := ticket.NewService(repo)

	resp, err := svc.List(ctx, "E004", "closed")

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "T0001", resp[0].TicketID)
}

func TestTicketService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeTicketRepository{}
		repo.findByIDFn = func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
			return &ticket.Ticket{TicketID: ticketID}, nil
		}
		repo.historyByTicketFn = func(ctx context.Context, ticketID string) ([]ticket.StatusChange, error) {
			return []ticket.StatusChange{
				{ID: "a", TicketID: ticketID, ToStatus: ticket.StatusOpen},
				{ID: "b", TicketID: ticketID, FromStatus: ticket.StatusOpen, ToStatus: ticket.StatusClosed},
			}, nil
		}
		svc := ticket.NewService(repo)

		entries, err := svc.History(ctx, "T0001")

		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, ticket.StatusClosed, entries[1].ToStatus)
	})

	t.Run("negative unknown ticket", func(t *testing.T) {
		svc := ticket.NewService(&fakeTicketRepository{})

		_, err := svc.History(ctx, "T0404")

		assert.ErrorIs(t, err, ticketerrors.ErrTicketNotFound)
	})
}

package ticket

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/viotsoft/Altiq-hr-AI/shared/apperror"
	ticketerrors "github.com/viotsoft/Altiq-hr-AI/ticket/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ticket_service.go -destination=mock/ticket_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTicketRequest) (TicketResponse, error)
	UpdateStatus(ctx context.Context, ticketID string, req UpdateTicketStatusRequest) (TicketResponse, error)
	List(ctx context.Context, empID, status string) ([]TicketResponse, error)
	History(ctx context.Context, ticketID string) ([]StatusChangeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("ticket.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ticket.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateTicketRequest) (TicketResponse, error) {
	s.logger.Debug("create ticket requested",
		zap.String("emp_id", req.EmpID),
		zap.String("item", req.Item),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("create ticket validation failed", zap.Error(err))
		return TicketResponse{}, err
	}

	now := time.Now().UTC()
	t := &Ticket{
		EmpID:     req.EmpID,
		Item:      req.Item,
		Reason:    req.Reason,
		Status:    StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create ticket persist failed", zap.Error(err))
		return TicketResponse{}, err
	}

	if err := s.repo.AppendHistory(ctx, StatusChange{
		ID:        uuid.NewString(),
		TicketID:  t.TicketID,
		ToStatus:  StatusOpen,
		ChangedAt: now,
	}); err != nil {
		s.logger.Error("create ticket history append failed",
			zap.String("ticket_id", t.TicketID),
			zap.Error(err),
		)
		return TicketResponse{}, err
	}

	s.logger.Info("create ticket success",
		zap.String("ticket_id", t.TicketID),
		zap.String("emp_id", t.EmpID),
	)
	resp := mapToResponse(*t)
	resp.Message = fmt.Sprintf("Ticket %s created for %s.", t.TicketID, t.EmpID)
	return resp, nil
}

func (s *service) UpdateStatus(ctx context.Context, ticketID string, req UpdateTicketStatusRequest) (TicketResponse, error) {
	s.logger.Debug("update ticket status requested",
		zap.String("ticket_id", ticketID),
		zap.String("status", req.Status),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("update ticket status validation failed", zap.Error(err))
		return TicketResponse{}, err
	}

	t, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return TicketResponse{}, ticketerrors.ErrTicketNotFound
		}
		s.logger.Error("update ticket status fetch failed", zap.Error(err))
		return TicketResponse{}, err
	}

	// No transition table: any status may follow any other.
	oldStatus := t.Status
	t.Status = req.Status
	t.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("update ticket status persist failed",
			zap.String("ticket_id", ticketID),
			zap.Error(err),
		)
		return TicketResponse{}, err
	}
	if err := s.repo.AppendHistory(ctx, StatusChange{
		ID:         uuid.NewString(),
		TicketID:   ticketID,
		FromStatus: oldStatus,
		ToStatus:   req.Status,
		ChangedAt:  t.UpdatedAt,
	}); err != nil {
		s.logger.Error("update ticket status history append failed",
			zap.String("ticket_id", ticketID),
			zap.Error(err),
		)
		return TicketResponse{}, err
	}

	s.logger.Info("update ticket status success",
		zap.String("ticket_id", ticketID),
		zap.String("from_status", oldStatus),
		zap.String("to_status", req.Status),
	)
	resp := mapToResponse(*t)
	resp.Message = fmt.Sprintf("Ticket %s status updated to %s.", ticketID, req.Status)
	return resp, nil
}

func (s *service) List(ctx context.Context, empID, status string) ([]TicketResponse, error) {
	s.logger.Debug("list tickets requested",
		zap.String("emp_id", empID),
		zap.String("status", status),
	)

	tickets, err := s.repo.FindAll(ctx, empID, status)
	if err != nil {
		s.logger.Error("list tickets failed", zap.Error(err))
		return nil, err
	}

	out := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		out[i] = mapToResponse(t)
	}
	return out, nil
}

func (s *service) History(ctx context.Context, ticketID string) ([]StatusChangeResponse, error) {
	s.logger.Debug("ticket history requested", zap.String("ticket_id", ticketID))

	if _, err := s.repo.FindByID(ctx, ticketID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ticketerrors.ErrTicketNotFound
		}
		return nil, err
	}

	entries, err := s.repo.HistoryByTicket(ctx, ticketID)
	if err != nil {
		s.logger.Error("ticket history fetch failed", zap.Error(err))
		return nil, err
	}

	out := make([]StatusChangeResponse, len(entries))
	for i, h := range entries {
		out[i] = StatusChangeResponse{
			ID:         h.ID,
			TicketID:   h.TicketID,
			FromStatus: h.FromStatus,
			ToStatus:   h.ToStatus,
			ChangedAt:  h.ChangedAt.Format(time.RFC3339),
		}
	}
	return out, nil
}

func mapToResponse(t Ticket) TicketResponse {
	return TicketResponse{
		TicketID:  t.TicketID,
		EmpID:     t.EmpID,
		Item:      t.Item,
		Reason:    t.Reason,
		Status:    t.Status,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

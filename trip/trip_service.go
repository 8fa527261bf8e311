package trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/viotsoft/Altiq-hr-AI/shared/apperror"
	triperrors "github.com/viotsoft/Altiq-hr-AI/trip/errors"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// defaultCancelReason is recorded when the caller cancels without giving one.
const defaultCancelReason = "Cancelled by employee"

//go:generate mockgen -source=trip_service.go -destination=mock/trip_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTripRequest) (TripResponse, error)
	Get(ctx context.Context, tripID string) (TripResponse, error)
	UpdateStatus(ctx context.Context, tripID string, req UpdateTripStatusRequest) (TripResponse, error)
	Cancel(ctx context.Context, tripID string, req CancelTripRequest) (TripResponse, error)
	List(ctx context.Context, filter TripFilter) ([]TripResponse, error)
	PendingApprovals(ctx context.Context, managerID string) ([]TripResponse, error)
	AddExpense(ctx context.Context, req AddExpenseRequest) (ExpenseResponse, error)
	Expenses(ctx context.Context, tripID string) ([]ExpenseResponse, error)
	Summary(ctx context.Context, tripID string) (TripSummaryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("trip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("trip.service")
	}
	return &service{repo: repo, logger: l}
}

// transitionAllowed is the single choke point for status moves. The ledger
// is deliberately permissive today; a strict transition table slots in here
// without touching any call site.
func transitionAllowed(current, target string) bool {
	return true
}

func isTerminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

func (s *service) Create(ctx context.Context, req CreateTripRequest) (TripResponse, error) {
	s.logger.Debug("create trip requested",
		zap.String("emp_id", req.EmpID),
		zap.String("destination", req.Destination),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("create trip validation failed", zap.Error(err))
		return TripResponse{}, err
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		s.logger.Warn("create trip start date unparseable", zap.String("start_date", req.StartDate))
		return TripResponse{}, triperrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		s.logger.Warn("create trip end date unparseable", zap.String("end_date", req.EndDate))
		return TripResponse{}, triperrors.ErrInvalidDateFormat
	}
	if !start.Before(end) {
		s.logger.Warn("create trip rejected, start not before end",
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return TripResponse{}, triperrors.ErrInvalidDateRange
	}

	now := time.Now().UTC()
	t := &Trip{
		EmpID:         req.EmpID,
		Destination:   req.Destination,
		Purpose:       req.Purpose,
		StartDate:     start,
		EndDate:       end,
		EstimatedCost: req.EstimatedCost,
		ManagerID:     req.ManagerID,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreateTrip(ctx, t); err != nil {
		s.logger.Error("create trip persist failed", zap.Error(err))
		return TripResponse{}, err
	}

	s.logger.Info("create trip success",
		zap.String("trip_id", t.TripID),
		zap.String("emp_id", t.EmpID),
	)
	resp := toTripResponse(t)
	resp.Message = fmt.Sprintf("Business trip %s created for %s to %s.", t.TripID, t.EmpID, t.Destination)
	return *resp, nil
}

func (s *service) Get(ctx context.Context, tripID string) (TripResponse, error) {
	t, err := s.repo.FindTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return TripResponse{}, triperrors.ErrTripNotFound
		}
		s.logger.Error("get trip fetch failed", zap.Error(err))
		return TripResponse{}, err
	}
	return *toTripResponse(t), nil
}

func (s *service) UpdateStatus(ctx context.Context, tripID string, req UpdateTripStatusRequest) (TripResponse, error) {
	s.logger.Debug("update trip status requested",
		zap.String("trip_id", tripID),
		zap.String("status", req.Status),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("update trip status validation failed", zap.Error(err))
		return TripResponse{}, err
	}

	t, err := s.repo.FindTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return TripResponse{}, triperrors.ErrTripNotFound
		}
		s.logger.Error("update trip status fetch failed", zap.Error(err))
		return TripResponse{}, err
	}

	if !transitionAllowed(t.Status, req.Status) {
		s.logger.Warn("update trip status rejected",
			zap.String("trip_id", tripID),
			zap.String("from", t.Status),
			zap.String("to", req.Status),
		)
		return TripResponse{}, triperrors.ErrInvalidStatusTransition
	}

	oldStatus := t.Status
	t.Status = req.Status
	t.UpdatedAt = time.Now().UTC()
	if (req.Status == StatusApproved || req.Status == StatusRejected) && req.ApprovedBy != nil {
		t.ApprovedBy = req.ApprovedBy
		at := t.UpdatedAt
		t.ApprovedAt = &at
	}

	if err := s.repo.UpdateTrip(ctx, t); err != nil {
		s.logger.Error("update trip status persist failed",
			zap.String("trip_id", tripID),
			zap.Error(err),
		)
		return TripResponse{}, err
	}

	s.logger.Info("update trip status success",
		zap.String("trip_id", tripID),
		zap.String("from", oldStatus),
		zap.String("to", req.Status),
	)
	resp := toTripResponse(t)
	resp.Message = fmt.Sprintf("Trip %s status updated from %s to %s.", tripID, oldStatus, req.Status)
	return *resp, nil
}

func (s *service) Cancel(ctx context.Context, tripID string, req CancelTripRequest) (TripResponse, error) {
	s.logger.Debug("cancel trip requested", zap.String("trip_id", tripID))

	t, err := s.repo.FindTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return TripResponse{}, triperrors.ErrTripNotFound
		}
		s.logger.Error("cancel trip fetch failed", zap.Error(err))
		return TripResponse{}, err
	}

	if isTerminal(t.Status) {
		s.logger.Warn("cancel trip rejected, trip already terminal",
			zap.String("trip_id", tripID),
			zap.String("status", t.Status),
		)
		return TripResponse{}, triperrors.ErrTripNotCancellable
	}

	reason := req.Reason
	if reason == "" {
		reason = defaultCancelReason
	}

	t.Status = StatusCancelled
	t.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateTrip(ctx, t); err != nil {
		s.logger.Error("cancel trip persist failed",
			zap.String("trip_id", tripID),
			zap.Error(err),
		)
		return TripResponse{}, err
	}

	s.logger.Info("cancel trip success",
		zap.String("trip_id", tripID),
		zap.String("reason", reason),
	)
	resp := toTripResponse(t)
	resp.Message = fmt.Sprintf("Trip %s cancelled. Reason: %s", tripID, reason)
	return *resp, nil
}

func (s *service) List(ctx context.Context, filter TripFilter) ([]TripResponse, error) {
	trips, err := s.repo.ListTrips(ctx, filter)
	if err != nil {
		s.logger.Error("list trips fetch failed", zap.Error(err))
		return nil, err
	}

	out := make([]TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *toTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *service) PendingApprovals(ctx context.Context, managerID string) ([]TripResponse, error) {
	trips, err := s.repo.PendingByManager(ctx, managerID)
	if err != nil {
		s.logger.Error("pending approvals fetch failed", zap.Error(err))
		return nil, err
	}

	out := make([]TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *toTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *service) AddExpense(ctx context.Context, req AddExpenseRequest) (ExpenseResponse, error) {
	s.logger.Debug("add expense requested",
		zap.String("trip_id", req.TripID),
		zap.String("expense_type", req.ExpenseType),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("add expense validation failed", zap.Error(err))
		return ExpenseResponse{}, err
	}

	when, err := time.Parse(dateLayout, req.ExpenseDate)
	if err != nil {
		s.logger.Warn("add expense date unparseable", zap.String("expense_date", req.ExpenseDate))
		return ExpenseResponse{}, triperrors.ErrInvalidDateFormat
	}

	ok, err := s.repo.TripExists(ctx, req.TripID)
	if err != nil {
		s.logger.Error("add expense trip lookup failed", zap.Error(err))
		return ExpenseResponse{}, err
	}
	if !ok {
		s.logger.Warn("add expense rejected, unknown trip", zap.String("trip_id", req.TripID))
		return ExpenseResponse{}, triperrors.ErrExpenseTripNotFound
	}

	e := &TripExpense{
		TripID:      req.TripID,
		ExpenseType: req.ExpenseType,
		Amount:      req.Amount,
		Description: req.Description,
		ExpenseDate: when,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		s.logger.Error("add expense persist failed", zap.Error(err))
		return ExpenseResponse{}, err
	}

	s.logger.Info("add expense success",
		zap.String("expense_id", e.ExpenseID),
		zap.String("trip_id", e.TripID),
	)
	resp := toExpenseResponse(e)
	resp.Message = fmt.Sprintf("Expense %s added to trip %s.", e.ExpenseID, e.TripID)
	return *resp, nil
}

// Expenses returns whatever has been recorded for the trip; an unknown trip
// simply yields an empty list.
func (s *service) Expenses(ctx context.Context, tripID string) ([]ExpenseResponse, error) {
	expenses, err := s.repo.ExpensesByTrip(ctx, tripID)
	if err != nil {
		s.logger.Error("list expenses fetch failed", zap.Error(err))
		return nil, err
	}

	out := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, *toExpenseResponse(&expenses[i]))
	}
	return out, nil
}

func (s *service) Summary(ctx context.Context, tripID string) (TripSummaryResponse, error) {
	t, err := s.repo.FindTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return TripSummaryResponse{}, triperrors.ErrTripNotFound
		}
		s.logger.Error("trip summary fetch failed", zap.Error(err))
		return TripSummaryResponse{}, err
	}

	expenses, err := s.repo.ExpensesByTrip(ctx, tripID)
	if err != nil {
		s.logger.Error("trip summary expenses fetch failed", zap.Error(err))
		return TripSummaryResponse{}, err
	}

	var total float64
	items := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		total += expenses[i].Amount
		items = append(items, *toExpenseResponse(&expenses[i]))
	}

	return TripSummaryResponse{
		Trip:          *toTripResponse(t),
		Expenses:      items,
		TotalExpenses: total,
		EstimatedCost: t.EstimatedCost,
		Variance:      total - t.EstimatedCost,
		ExpenseCount:  len(items),
	}, nil
}

package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/viotsoft/Altiq-hr-AI/config"
	leaveerrors "github.com/viotsoft/Altiq-hr-AI/leave/errors"
	"github.com/viotsoft/Altiq-hr-AI/shared/apperror"

	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Balance(ctx context.Context, empID string) (BalanceResponse, error)
	Apply(ctx context.Context, req ApplyLeaveRequest) (ApplyLeaveResponse, error)
	History(ctx context.Context, empID string) (HistoryResponse, error)
}

type service struct {
	repo   Repository
	cfg    config.Config
	logger *zap.Logger
}

func NewService(repo Repository, cfg config.Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, cfg: cfg, logger: l}
}

// Balance lazily materializes an account with the configured default balance
// on first reference. Apply and History deliberately do not share this
// behavior; an ID they have never seen is not found.
func (s *service) Balance(ctx context.Context, empID string) (BalanceResponse, error) {
	s.logger.Debug("leave balance requested", zap.String("emp_id", empID))

	acct, err := s.repo.Materialize(ctx, empID, s.cfg.DefaultLeaveBalance)
	if err != nil {
		s.logger.Error("leave balance materialize failed", zap.Error(err))
		return BalanceResponse{}, err
	}

	return BalanceResponse{
		EmpID:   acct.EmpID,
		Balance: acct.Balance,
		Message: fmt.Sprintf("%s has %d leave days remaining.", acct.EmpID, acct.Balance),
	}, nil
}

func (s *service) Apply(ctx context.Context, req ApplyLeaveRequest) (ApplyLeaveResponse, error) {
	s.logger.Debug("apply leave requested",
		zap.String("emp_id", req.EmpID),
		zap.Int("requested_days", len(req.LeaveDates)),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("apply leave validation failed", zap.Error(err))
		return ApplyLeaveResponse{}, err
	}
	dates, err := parseDates(req.LeaveDates)
	if err != nil {
		s.logger.Warn("apply leave bad dates", zap.Error(err))
		return ApplyLeaveResponse{}, err
	}

	acct, err := s.repo.Find(ctx, req.EmpID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ApplyLeaveResponse{}, leaveerrors.ErrLeaveAccountNotFound
		}
		s.logger.Error("apply leave fetch failed", zap.Error(err))
		return ApplyLeaveResponse{}, err
	}

	requested := len(dates)
	if acct.Balance < requested {
		s.logger.Warn("apply leave insufficient balance",
			zap.String("emp_id", req.EmpID),
			zap.Int("requested", requested),
			zap.Int("available", acct.Balance),
		)
		return ApplyLeaveResponse{
			EmpID:      req.EmpID,
			Granted:    false,
			ReasonCode: apperror.CodeInsufficientBalance,
			Requested:  requested,
			Remaining:  acct.Balance,
			Message: fmt.Sprintf("Insufficient leave balance: requested %d, available %d.",
				requested, acct.Balance),
		}, nil
	}

	requestID, err := s.repo.NextRequestID(ctx)
	if err != nil {
		s.logger.Error("apply leave request id failed", zap.Error(err))
		return ApplyLeaveResponse{}, err
	}

	// Same date applied twice debits twice; the ledger does not deduplicate.
	acct.Balance -= requested
	for _, d := range dates {
		acct.History = append(acct.History, LeaveHistoryItem{
			EmpID:     req.EmpID,
			LeaveDate: d,
			RequestID: requestID,
		})
	}

	if err := s.repo.Save(ctx, acct); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return ApplyLeaveResponse{}, err
	}

	s.logger.Info("apply leave success",
		zap.String("emp_id", req.EmpID),
		zap.Int64("request_id", requestID),
		zap.Int("days", requested),
		zap.Int("remaining", acct.Balance),
	)
	return ApplyLeaveResponse{
		EmpID:     req.EmpID,
		Granted:   true,
		Requested: requested,
		Remaining: acct.Balance,
		RequestID: requestID,
		Message: fmt.Sprintf("Leave applied for %d day(s). Remaining balance: %d",
			requested, acct.Balance),
	}, nil
}

func (s *service) History(ctx context.Context, empID string) (HistoryResponse, error) {
	s.logger.Debug("leave history requested", zap.String("emp_id", empID))

	acct, err := s.repo.Find(ctx, empID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return HistoryResponse{}, leaveerrors.ErrLeaveAccountNotFound
		}
		s.logger.Error("leave history fetch failed", zap.Error(err))
		return HistoryResponse{}, err
	}

	dates := make([]string, len(acct.History))
	for i, item := range acct.History {
		dates[i] = item.LeaveDate.Format("January 02, 2006")
	}

	return HistoryResponse{
		EmpID: empID,
		Dates: dates,
		Message: fmt.Sprintf("Leave history for %s: %s.",
			empID, strings.Join(dates, ", ")),
	}, nil
}

func parseDates(raw []string) ([]time.Time, error) {
	out := make([]time.Time, len(raw))
	for i, v := range raw {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, leaveerrors.ErrInvalidDateFormat
		}
		out[i] = t
	}
	return out, nil
}

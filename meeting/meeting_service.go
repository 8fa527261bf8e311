package meeting

import (
	"context"
	"fmt"
	"time"

	meetingerrors "github.com/viotsoft/Altiq-hr-AI/meeting/errors"
	"github.com/viotsoft/Altiq-hr-AI/shared/apperror"

	"go.uber.org/zap"
)

//go:generate mockgen -source=meeting_service.go -destination=mock/meeting_service_mock.go -package=mock
type Service interface {
	Schedule(ctx context.Context, req ScheduleMeetingRequest) (MeetingResponse, error)
	List(ctx context.Context, empID string) ([]MeetingResponse, error)
	Cancel(ctx context.Context, req CancelMeetingRequest) (CancelMeetingResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("meeting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("meeting.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Schedule(ctx context.Context, req ScheduleMeetingRequest) (MeetingResponse, error) {
	s.logger.Debug("schedule meeting requested",
		zap.String("emp_id", req.EmpID),
		zap.String("meeting_datetime", req.MeetingDT),
		zap.String("topic", req.Topic),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("schedule meeting validation failed", zap.Error(err))
		return MeetingResponse{}, err
	}
	at, err := parseDateTime(req.MeetingDT)
	if err != nil {
		s.logger.Warn("schedule meeting bad datetime",
			zap.String("meeting_datetime", req.MeetingDT),
			zap.Error(err),
		)
		return MeetingResponse{}, err
	}

	// Topic plays no part in the conflict check; two meetings at the exact
	// same instant collide regardless.
	taken, err := s.repo.ExistsAt(ctx, req.EmpID, at)
	if err != nil {
		s.logger.Error("schedule meeting conflict check failed", zap.Error(err))
		return MeetingResponse{}, err
	}
	if taken {
		s.logger.Warn("schedule meeting conflict",
			zap.String("emp_id", req.EmpID),
			zap.Time("meeting_datetime", at),
		)
		return MeetingResponse{}, meetingerrors.ErrMeetingConflict
	}

	m := &Meeting{
		EmpID:     req.EmpID,
		MeetingDT: at,
		Topic:     req.Topic,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, m); err != nil {
		s.logger.Error("schedule meeting persist failed", zap.Error(err))
		return MeetingResponse{}, err
	}

	s.logger.Info("schedule meeting success",
		zap.String("emp_id", req.EmpID),
		zap.Int64("meeting_id", m.MeetingID),
	)
	resp := mapToResponse(*m)
	resp.Message = fmt.Sprintf("Meeting scheduled for %s on %s about '%s'.",
		m.EmpID, resp.MeetingDT, m.Topic)
	return resp, nil
}

func (s *service) List(ctx context.Context, empID string) ([]MeetingResponse, error) {
	s.logger.Debug("list meetings requested", zap.String("emp_id", empID))

	meetings, err := s.repo.FindByEmployee(ctx, empID)
	if err != nil {
		s.logger.Error("list meetings failed", zap.Error(err))
		return nil, err
	}

	out := make([]MeetingResponse, len(meetings))
	for i, m := range meetings {
		out[i] = mapToResponse(m)
	}
	return out, nil
}

func (s *service) Cancel(ctx context.Context, req CancelMeetingRequest) (CancelMeetingResponse, error) {
	s.logger.Debug("cancel meeting requested",
		zap.String("emp_id", req.EmpID),
		zap.String("meeting_datetime", req.MeetingDT),
	)

	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("cancel meeting validation failed", zap.Error(err))
		return CancelMeetingResponse{}, err
	}
	at, err := parseDateTime(req.MeetingDT)
	if err != nil {
		return CancelMeetingResponse{}, err
	}

	removed, err := s.repo.RemoveMatching(ctx, req.EmpID, at, req.Topic)
	if err != nil {
		s.logger.Error("cancel meeting remove failed", zap.Error(err))
		return CancelMeetingResponse{}, err
	}
	if removed == 0 {
		s.logger.Warn("cancel meeting nothing matched",
			zap.String("emp_id", req.EmpID),
			zap.Time("meeting_datetime", at),
		)
		return CancelMeetingResponse{}, meetingerrors.ErrMeetingNotFound
	}

	s.logger.Info("cancel meeting success",
		zap.String("emp_id", req.EmpID),
		zap.Int("removed", removed),
	)
	msg := fmt.Sprintf("Canceled meeting for %s on %s", req.EmpID, formatDateTime(at))
	if req.Topic != nil {
		msg += fmt.Sprintf(" about %s", *req.Topic)
	}
	return CancelMeetingResponse{
		EmpID:     req.EmpID,
		MeetingDT: formatDateTime(at),
		Removed:   removed,
		Message:   msg + ".",
	}, nil
}

var datetimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

func parseDateTime(v string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, meetingerrors.ErrInvalidDateTime
}

func formatDateTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}

func mapToResponse(m Meeting) MeetingResponse {
	return MeetingResponse{
		MeetingID: m.MeetingID,
		EmpID:     m.EmpID,
		MeetingDT: formatDateTime(m.MeetingDT),
		Topic:     m.Topic,
	}
}

package leave_test

import (
	"context"
	"testing"

	"github.com/viotsoft/Altiq-hr-AI/config"
	"github.com/viotsoft/Altiq-hr-AI/leave"
	leaveerrors "github.com/viotsoft/Altiq-hr-AI/leave/errors"
	"github.com/viotsoft/Altiq-hr-AI/shared/apperror"

	"github.com/stretchr/testify/assert"
)

type fakeLeaveRepository struct {
	materializeFn   func(ctx context.Context, empID string, defaultBalance int) (*leave.LeaveAccount, error)
	findFn          func(ctx context.Context, empID string) (*leave.LeaveAccount, error)
	saveFn          func(ctx context.Context, acct *leave.LeaveAccount) error
	nextRequestIDFn func(ctx context.Context) (int64, error)
}

func (f *fakeLeaveRepository) Materialize(ctx context.Context, empID string, defaultBalance int) (*leave.LeaveAccount, error) {
	if f.materializeFn != nil {
		return f.materializeFn(ctx, empID, defaultBalance)
	}
	return &leave.LeaveAccount{EmpID: empID, Balance: defaultBalance}, nil
}

func (f *fakeLeaveRepository) Find(ctx context.Context, empID string) (*leave.LeaveAccount, error) {
	if f.findFn != nil {
		return f.findFn(ctx, empID)
	}
	return nil, leave.ErrAccountNotFound
}

func (f *fakeLeaveRepository) Save(ctx context.Context, acct *leave.LeaveAccount) error {
	if f.saveFn != nil {
		return f.saveFn(ctx, acct)
	}
	return nil
}

func (f *fakeLeaveRepository) NextRequestID(ctx context.Context) (int64, error) {
	if f.nextRequestIDFn != nil {
		return f.nextRequestIDFn(ctx)
	}
	return 1, nil
}

func TestLeaveService_Balance(t *testing.T) {
	ctx := context.Background()

	t.Run("lazily materializes with default balance", func(t *testing.T) {
		repo := &fakeLeaveRepository{}
		repo.materializeFn = func(ctx context.Context, empID string, defaultBalance int) (*leave.LeaveAccount, error) {
			assert.Equal(t, "E009", empID)
			assert.Equal(t, 20, defaultBalance)
			return &leave.LeaveAccount{EmpID: empID, Balance: defaultBalance}, nil
		}
		svc := leave.NewService(repo, config.Default())

		resp, err := svc.Balance(ctx, "E009")

		assert.NoError(t, err)
		assert.Equal(t, 20, resp.Balance)
		assert.Equal(t, "E009 has 20 leave days remaining.", resp.Message)
	})
}

func TestLeaveService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("success debits and appends history", func(t *testing.T) {
		repo := &fakeLeaveRepository{}
		repo.findFn = func(ctx context.Context, empID string) (*leave.LeaveAccount, error) {
			return &leave.LeaveAccount{EmpID: empID, Balance: 5}, nil
		}
		repo.nextRequestIDFn = func(ctx context.Context) (int64, error) { return 7, nil }
		var saved *leave.LeaveAccount
		repo.saveFn = func(ctx context.Context, acct *leave.LeaveAccount) error {
			saved = acct
			return nil
		}
		svc := leave.NewService(repo, config.Default())

		resp, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
			EmpID:      "E003",
			LeaveDates: []string{"2024-03-04", "2024-03-05"},
		})

		assert.NoError(t, err)
		assert.True(t, resp.Granted)
		assert.Equal(t, 2, resp.Requested)
		assert.Equal(t, 3, resp.Remaining)
		assert.EqualValues(t, 7, resp.RequestID)
		assert.Equal(t, "Leave applied for 2 day(s). Remaining balance: 3", resp.Message)

		assert.NotNil(t, saved)
		assert.Equal(t, 3, saved.Balance)
		assert.Len(t, saved.History, 2)
		assert.Equal(t, "2024-03-04", saved.History[0].LeaveDate.Format("2006-01-02"))
		assert.Equal(t, "2024-03-05", saved.History[1].LeaveDate.Format("2006-01-02"))
		assert.EqualValues(t, 7, saved.History[0].RequestID)
		assert.EqualValues(t, 7, saved.History[1].RequestID)
	})

	t.Run("insufficient balance declines without mutation", func(t *testing.T) {
		repo := &fakeLeaveRepository{}
		repo.findFn = func(ctx context.Context, empID string) (*leave.LeaveAccount, error) {
			return &leave.LeaveAccount{EmpID: empID, Balance: 1}, nil
		}
		repo.saveFn = func(ctx context.Context, acct *leave.LeaveAccount) error {
			t.Fatal("save must not be reached on a declined application")
			return nil
		}
		svc := leave.NewService(repo, config.Default())

		resp, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
			EmpID:      "E003",
			LeaveDates: []string{"2024-03-04", "2024-03-05"},
		})

		assert.NoError(t, err)
		assert.False(t, resp.Granted)
		assert.Equal(t, apperror.CodeInsufficientBalance, resp.ReasonCode)
		assert.Equal(t, 1, resp.Remaining)
		assert.Equal(t, "Insufficient leave balance: requested 2, available 1.", resp.Message)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		svc := leave.NewService(&fakeLeaveRepository{}, config.Default())

		_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
			EmpID:      "E404",
			LeaveDates: []string{"2024-03-04"},
		})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveAccountNotFound)
	})

	t.Run("negative malformed date", func(t *testing.T) {
		svc := leave.NewService(&fakeLeaveRepository{}, config.Default())

		_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{
			EmpID:      "E003",
			LeaveDates: []string{"04-03-2024"},
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("negative empty dates", func(t *testing.T) {
		svc := leave.NewService(&fakeLeaveRepository{}, config.Default())

		_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{EmpID: "E003"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Leave Dates is required")
	})
}

func TestLeaveService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("success formats chronological dates", func(t *testing.T) {
		repo := &fakeLeaveRepository{}
		repo.findFn = func(ctx context.Context, empID string) (*leave.LeaveAccount, error) {
			return &leave.LeaveAccount{
				EmpID:   empID,
				Balance: 17,
				History: []leave.LeaveHistoryItem{
					{HistoryID: 1, EmpID: empID, LeaveDate: date(2024, 2, 5), RequestID: 1},
					{HistoryID: 2, EmpID: empID, LeaveDate: date(2024, 3, 14), RequestID: 2},
				},
			}, nil
		}
		svc := leave.NewService(repo, config.Default())

		resp, err := svc.History(ctx, "E003")

		assert.NoError(t, err)
		assert.Equal(t, []string{"February 05, 2024", "March 14, 2024"}, resp.Dates)
		assert.Equal(t, "Leave history for E003: February 05, 2024, March 14, 2024.", resp.Message)
	})

	t.Run("negative unknown employee is strict, unlike Balance", func(t *testing.T) {
		svc := leave.NewService(&fakeLeaveRepository{}, config.Default())

		_, err := svc.History(ctx, "E404")

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveAccountNotFound)
	})
}

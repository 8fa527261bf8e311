package trip

import "time"

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

type Trip struct {
	TripID        string
	EmpID         string
	Destination   string
	Purpose       string
	StartDate     time.Time
	EndDate       time.Time
	EstimatedCost float64
	ManagerID     string
	Status        string
	ApprovedBy    *string
	ApprovedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TripExpense is immutable once created.
type TripExpense struct {
	ExpenseID   string
	TripID      string
	ExpenseType string
	Amount      float64
	Description string
	ExpenseDate time.Time
	CreatedAt   time.Time
}

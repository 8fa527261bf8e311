package trip

import "time"

type CreateTripRequest struct {
	EmpID         string  `json:"emp_id" validate:"required"`
	Destination   string  `json:"destination" validate:"required"`
	Purpose       string  `json:"purpose" validate:"required"`
	StartDate     string  `json:"start_date" validate:"required"`
	EndDate       string  `json:"end_date" validate:"required"`
	EstimatedCost float64 `json:"estimated_cost" validate:"gte=0"`
	ManagerID     string  `json:"manager_id" validate:"required"`
}

type UpdateTripStatusRequest struct {
	Status     string  `json:"status" validate:"required,oneof=Pending Approved Rejected Cancelled Completed"`
	ApprovedBy *string `json:"approved_by,omitempty" validate:"omitempty,min=1"`
}

type CancelTripRequest struct {
	Reason string `json:"reason,omitempty"`
}

type AddExpenseRequest struct {
	TripID      string  `json:"trip_id" validate:"required"`
	ExpenseType string  `json:"expense_type" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Description string  `json:"description,omitempty"`
	ExpenseDate string  `json:"expense_date" validate:"required"`
}

type TripFilter struct {
	EmpID     string `json:"emp_id,omitempty"`
	Status    string `json:"status,omitempty"`
	ManagerID string `json:"manager_id,omitempty"`
}

type TripResponse struct {
	TripID        string     `json:"trip_id"`
	EmpID         string     `json:"emp_id"`
	Destination   string     `json:"destination"`
	Purpose       string     `json:"purpose"`
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date"`
	EstimatedCost float64    `json:"estimated_cost"`
	ManagerID     string     `json:"manager_id"`
	Status        string     `json:"status"`
	ApprovedBy    *string    `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	Message       string     `json:"message,omitempty"`
}

type ExpenseResponse struct {
	ExpenseID   string    `json:"expense_id"`
	TripID      string    `json:"trip_id"`
	ExpenseType string    `json:"expense_type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	ExpenseDate string    `json:"expense_date"`
	CreatedAt   time.Time `json:"created_at"`
	Message     string    `json:"message,omitempty"`
}

type TripSummaryResponse struct {
	Trip          TripResponse      `json:"trip"`
	Expenses      []ExpenseResponse `json:"expenses"`
	TotalExpenses float64           `json:"total_expenses"`
	EstimatedCost float64           `json:"estimated_cost"`
	Variance      float64           `json:"variance"`
	ExpenseCount  int               `json:"expense_count"`
}

func toTripResponse(t *Trip) *TripResponse {
	return &TripResponse{
		TripID:        t.TripID,
		EmpID:         t.EmpID,
		Destination:   t.Destination,
		Purpose:       t.Purpose,
		StartDate:     t.StartDate.Format(dateLayout),
		EndDate:       t.EndDate.Format(dateLayout),
		EstimatedCost: t.EstimatedCost,
		ManagerID:     t.ManagerID,
		Status:        t.Status,
		ApprovedBy:    t.ApprovedBy,
		ApprovedAt:    t.ApprovedAt,
		CreatedAt:     t.CreatedAt,
	}
}

func toExpenseResponse(e *TripExpense) *ExpenseResponse {
	return &ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		TripID:      e.TripID,
		ExpenseType: e.ExpenseType,
		Amount:      e.Amount,
		Description: e.Description,
		ExpenseDate: e.ExpenseDate.Format(dateLayout),
		CreatedAt:   e.CreatedAt,
	}
}

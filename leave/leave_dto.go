package leave

type ApplyLeaveRequest struct {
	EmpID      string   `json:"emp_id" validate:"required"`
	LeaveDates []string `json:"leave_dates" validate:"required,min=1,dive,required"`
}

type BalanceResponse struct {
	EmpID   string `json:"emp_id"`
	Balance int    `json:"balance"`
	Message string `json:"message"`
}

// ApplyLeaveResponse reports the outcome of an application. An insufficient
// balance is a declined outcome (Granted false, ReasonCode set), not an error.
type ApplyLeaveResponse struct {
	EmpID      string `json:"emp_id"`
	Granted    bool   `json:"granted"`
	ReasonCode string `json:"reason_code,omitempty"`
	Requested  int    `json:"requested"`
	Remaining  int    `json:"remaining"`
	RequestID  int64  `json:"request_id,omitempty"`
	Message    string `json:"message"`
}

type HistoryResponse struct {
	EmpID   string   `json:"emp_id"`
	Dates   []string `json:"dates"`
	Message string   `json:"message"`
}

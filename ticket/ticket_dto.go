package ticket

type CreateTicketRequest struct {
	EmpID  string `json:"emp_id" validate:"required"`
	Item   string `json:"item" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='Open' 'In Progress' 'Closed' 'Rejected'"`
}

type TicketResponse struct {
	TicketID  string `json:"ticket_id"`
	EmpID     string `json:"emp_id"`
	Item      string `json:"item"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Message   string `json:"message,omitempty"`
}

type StatusChangeResponse struct {
	ID         string `json:"id"`
	TicketID   string `json:"ticket_id"`
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status"`
	ChangedAt  string `json:"changed_at"`
}

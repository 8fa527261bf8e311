package ticket

import "time"

const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusClosed     = "Closed"
	StatusRejected   = "Rejected"
)

type Ticket struct {
	TicketID  string
	EmpID     string
	Item      string
	Reason    string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusChange is an immutable audit trail entry. FromStatus is empty for
// the creation entry.
type StatusChange struct {
	ID         string
	TicketID   string
	FromStatus string
	ToStatus   string
	ChangedAt  time.Time
}

package leave

import "time"

type LeaveAccount struct {
	EmpID   string
	Balance int
	History []LeaveHistoryItem
}

// LeaveHistoryItem is one taken leave day. RequestID groups the days of a
// single multi-day application; HistoryID is assigned by the store.
type LeaveHistoryItem struct {
	HistoryID int64
	EmpID     string
	LeaveDate time.Time
	RequestID int64
}

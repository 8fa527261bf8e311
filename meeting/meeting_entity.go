package meeting

import "time"

type Meeting struct {
	MeetingID int64
	EmpID     string
	MeetingDT time.Time
	Topic     string
	CreatedAt time.Time
}

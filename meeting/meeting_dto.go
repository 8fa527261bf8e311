package meeting

type ScheduleMeetingRequest struct {
	EmpID     string `json:"emp_id" validate:"required"`
	MeetingDT string `json:"meeting_datetime" validate:"required"`
	Topic     string `json:"topic" validate:"required"`
}

type CancelMeetingRequest struct {
	EmpID     string  `json:"emp_id" validate:"required"`
	MeetingDT string  `json:"meeting_datetime" validate:"required"`
	Topic     *string `json:"topic"` // nil cancels regardless of topic
}

type MeetingResponse struct {
	MeetingID int64  `json:"meeting_id"`
	EmpID     string `json:"emp_id"`
	MeetingDT string `json:"meeting_datetime"`
	Topic     string `json:"topic"`
	Message   string `json:"message,omitempty"`
}

type CancelMeetingResponse struct {
	EmpID     string `json:"emp_id"`
	MeetingDT string `json:"meeting_datetime"`
	Removed   int    `json:"removed"`
	Message   string `json:"message"`
}

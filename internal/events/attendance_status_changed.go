package events

import "time"

const (
	AttendanceStatusChangedTopic = "workforce.attendance.status_changed.v1"
	AttendanceStatusChangedType  = "attendance.status_changed"
)

type AttendanceStatusChangedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	AttendanceID    string    `json:"attendance_id"`
	CompanyID       string    `json:"company_id"`
	EmployeeID      string    `json:"employee_id"`
	EmployeeShiftID *string   `json:"employee_shift_id,omitempty"`
	FromStatus      string    `json:"from_status"`
	ToStatus        string    `json:"to_status"`
	ActorID         string    `json:"actor_id"`
	OccurredAt      time.Time `json:"occurred_at"`
}

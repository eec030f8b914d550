package events

import "time"

const (
	PayrollStatusChangedTopic = "workforce.payroll.status_changed.v1"
	PayrollStatusChangedType  = "payroll.status_changed"
)

type PayrollStatusChangedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	PayrollID   string    `json:"payroll_id"`
	PayrollCode string    `json:"payroll_code"`
	CompanyID   string    `json:"company_id"`
	EmployeeID  string    `json:"employee_id"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	NetPay      string    `json:"net_pay"`
	ActorID     string    `json:"actor_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

package domain

// ReminderType classifies a reminder relative to the lease's next due date.
type ReminderType string

const (
	ReminderDueSoon ReminderType = "due_soon"
	ReminderOverdue ReminderType = "overdue"
)

// ReminderResult is the per-lease outcome of one reminder sweep. Sent is
// false either when no enabled channel was contactable (not an error) or
// when dispatch failed, in which case Error carries the failure.
type ReminderResult struct {
	LeaseID      string       `json:"leaseID"`
	TenantID     string       `json:"tenantID"`
	ReminderType ReminderType `json:"reminderType"`
	Channel      string       `json:"channel,omitempty"` // Channel that accepted the message
	Sent         bool         `json:"sent"`
	Error        string       `json:"error,omitempty"`
}

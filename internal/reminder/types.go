package reminder

import "time"

// Priority levels for reminders. The set is open: the store accepts any
// string and only supplies "medium" when none is given.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Reminder is a single persisted reminder row.
type Reminder struct {
	ID          int64      `json:"id"`
	Text        string     `json:"text"`
	DueDate     time.Time  `json:"due_date"`
	Priority    string     `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

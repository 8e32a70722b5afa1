package models

// Severity constants
const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Severity classifies a notification for presentation.
type Severity string

// Notification is a transient, fire-and-forget message for the user.
type Notification struct {
	Severity Severity `json:"severity"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
}

// IsError returns true for error-severity notifications.
func (n Notification) IsError() bool {
	return n.Severity == SeverityError
}

package domain

import "time"

// Contact statuses
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusResolved  = "resolved"
)

// ContactStatuses lists the allowed ContactSubmission statuses.
var ContactStatuses = []string{ContactStatusNew, ContactStatusContacted, ContactStatusResolved}

// ContactSubmission represents a contact form submission
type ContactSubmission struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Message string    `json:"message"`
	Date    Timestamp `json:"date"`
	Status  string    `json:"status"`
}

func (c ContactSubmission) RecordID() string      { return c.ID }
func (c ContactSubmission) RecordDate() time.Time { return c.Date.Time }

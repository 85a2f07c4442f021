package domain

import "time"

// NewsletterSubscription represents a newsletter signup. At most one active
// subscription exists per email.
type NewsletterSubscription struct {
	ID     string    `json:"id"`
	Email  string    `json:"email"`
	Name   string    `json:"name,omitempty"`
	Date   Timestamp `json:"date"`
	Active bool      `json:"active"`
}

func (n NewsletterSubscription) RecordID() string      { return n.ID }
func (n NewsletterSubscription) RecordDate() time.Time { return n.Date.Time }

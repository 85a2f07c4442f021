package domain

import "time"

// EventRegistration is a sign-up for one of the school's events.
type EventRegistration struct {
	ID                  string    `json:"id"`
	EventID             string    `json:"eventId"`
	EventTitle          string    `json:"eventTitle"`
	ParticipantName     string    `json:"participantName"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	NumberOfAttendees   int       `json:"numberOfAttendees"`
	SpecialRequirements string    `json:"specialRequirements,omitempty"`
	Date                Timestamp `json:"date"`
}

func (e EventRegistration) RecordID() string      { return e.ID }
func (e EventRegistration) RecordDate() time.Time { return e.Date.Time }

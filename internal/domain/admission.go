package domain

import "time"

// Admission statuses
const (
	AdmissionStatusNew       = "new"
	AdmissionStatusScheduled = "scheduled"
	AdmissionStatusAssessed  = "assessed"
	AdmissionStatusEnrolled  = "enrolled"
)

// AdmissionStatuses lists the allowed AdmissionInquiry statuses.
var AdmissionStatuses = []string{
	AdmissionStatusNew,
	AdmissionStatusScheduled,
	AdmissionStatusAssessed,
	AdmissionStatusEnrolled,
}

// AdmissionInquiry is a parent's inquiry about enrolling a child.
type AdmissionInquiry struct {
	ID             string    `json:"id"`
	ParentName     string    `json:"parentName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	ChildName      string    `json:"childName"`
	ChildAge       string    `json:"childAge"` // free-form age band, not a number
	ChildCondition string    `json:"childCondition"`
	PreviousSchool string    `json:"previousSchool,omitempty"`
	Message        string    `json:"message"`
	Date           Timestamp `json:"date"`
	Status         string    `json:"status"`
}

func (a AdmissionInquiry) RecordID() string      { return a.ID }
func (a AdmissionInquiry) RecordDate() time.Time { return a.Date.Time }

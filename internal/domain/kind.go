package domain

import (
	"fmt"
	"time"
)

// Kind identifies one of the form record collections.
type Kind string

const (
	KindContact           Kind = "contact"
	KindAdmission         Kind = "admission"
	KindEventRegistration Kind = "event_registration"
	KindNewsletter        Kind = "newsletter"
	KindReview            Kind = "review"
)

// Kinds lists every record kind in a stable order.
var Kinds = []Kind{
	KindContact,
	KindAdmission,
	KindEventRegistration,
	KindNewsletter,
	KindReview,
}

// ParseKind accepts a kind name as used on the command line.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown record kind %q", s)
}

// Record is implemented by every persisted form record.
type Record interface {
	RecordID() string
	RecordDate() time.Time
}

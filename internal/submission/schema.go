package submission

import (
	"time"

	"sankalp/internal/domain"
	apperrors "sankalp/pkg/errors"
)

// Messages are the human-readable texts reported for a kind.
type Messages struct {
	Submitted string // successful submit
	Listed    string // successful list
	Noun      string // "contact form", used in "Failed to process ..."
	ListNoun  string // "contacts", used in "Failed to fetch ..."
}

// Schema configures the pipeline for one record kind.
type Schema[T domain.Record] struct {
	Kind       domain.Kind
	Collection string
	IDPrefix   string
	Fields     []Field
	// Build assembles a record from sanitized values and applies the kind's
	// defaults (status, approval, activity).
	Build func(v Values, id string, at time.Time) T
	// Seed supplies the records written when the collection is first created.
	Seed func() []T
	// Visible filters the public read path. Nil shows every record.
	Visible func(T) bool
	// SortByDate orders the read path by date, newest first, instead of
	// relying on storage order.
	SortByDate bool
	// Check runs against the stored records before an insert.
	Check    func(existing []T, rec *T) error
	Messages Messages
}

var contactSchema = Schema[domain.ContactSubmission]{
	Kind:       domain.KindContact,
	Collection: "contacts.json",
	IDPrefix:   "contact",
	Fields: []Field{
		personName("name", "Name", capLongText),
		email(),
		phone(capLongText),
		minText("message", 10, capLongText, "Message must be at least 10 characters long"),
	},
	Build: func(v Values, id string, at time.Time) domain.ContactSubmission {
		return domain.ContactSubmission{
			ID:      id,
			Name:    v.String("name"),
			Email:   v.String("email"),
			Phone:   v.String("phone"),
			Message: v.String("message"),
			Date:    domain.NewTimestamp(at),
			Status:  domain.ContactStatusNew,
		}
	},
	Messages: Messages{
		Submitted: "Contact form submitted successfully",
		Listed:    "Contacts retrieved successfully",
		Noun:      "contact form",
		ListNoun:  "contacts",
	},
}

var admissionSchema = Schema[domain.AdmissionInquiry]{
	Kind:       domain.KindAdmission,
	Collection: "admissions.json",
	IDPrefix:   "admission",
	Fields: []Field{
		personName("parentName", "Parent name", capLongText),
		email(),
		phone(capLongText),
		personName("childName", "Child name", capLongText),
		required("childAge", capLongText, "Child age is required"),
		minText("childCondition", 10, capLongText, "Please provide details about the child's condition"),
		optional("previousSchool", "Previous school", capLongText),
		minText("message", 10, capLongText, "Message must be at least 10 characters long"),
	},
	Build: func(v Values, id string, at time.Time) domain.AdmissionInquiry {
		return domain.AdmissionInquiry{
			ID:             id,
			ParentName:     v.String("parentName"),
			Email:          v.String("email"),
			Phone:          v.String("phone"),
			ChildName:      v.String("childName"),
			ChildAge:       v.String("childAge"),
			ChildCondition: v.String("childCondition"),
			PreviousSchool: v.String("previousSchool"),
			Message:        v.String("message"),
			Date:           domain.NewTimestamp(at),
			Status:         domain.AdmissionStatusNew,
		}
	},
	Messages: Messages{
		Submitted: "Admission inquiry submitted successfully",
		Listed:    "Admission inquiries retrieved successfully",
		Noun:      "admission inquiry",
		ListNoun:  "admission inquiries",
	},
}

var eventSchema = Schema[domain.EventRegistration]{
	Kind:       domain.KindEventRegistration,
	Collection: "event-registrations.json",
	IDPrefix:   "event_reg",
	Fields: []Field{
		required("eventId", capText, "Event ID is required"),
		required("eventTitle", capText, "Event title is required"),
		personName("participantName", "Participant name", capText),
		email(),
		phone(capText),
		count("numberOfAttendees", 1, "Number of attendees must be at least 1"),
		optional("specialRequirements", "Special requirements", capText),
	},
	Build: func(v Values, id string, at time.Time) domain.EventRegistration {
		return domain.EventRegistration{
			ID:                  id,
			EventID:             v.String("eventId"),
			EventTitle:          v.String("eventTitle"),
			ParticipantName:     v.String("participantName"),
			Email:               v.String("email"),
			Phone:               v.String("phone"),
			NumberOfAttendees:   v.Int("numberOfAttendees"),
			SpecialRequirements: v.String("specialRequirements"),
			Date:                domain.NewTimestamp(at),
		}
	},
	Messages: Messages{
		Submitted: "Event registration submitted successfully",
		Listed:    "Event registrations retrieved successfully",
		Noun:      "event registration",
		ListNoun:  "event registrations",
	},
}

var newsletterSchema = Schema[domain.NewsletterSubscription]{
	Kind:       domain.KindNewsletter,
	Collection: "newsletter.json",
	IDPrefix:   "newsletter",
	Fields: []Field{
		email(),
		optional("name", "Name", capShort),
	},
	Build: func(v Values, id string, at time.Time) domain.NewsletterSubscription {
		return domain.NewsletterSubscription{
			ID:     id,
			Email:  v.String("email"),
			Name:   v.String("name"),
			Date:   domain.NewTimestamp(at),
			Active: true,
		}
	},
	Visible: func(s domain.NewsletterSubscription) bool { return s.Active },
	Check:   rejectActiveSubscription,
	Messages: Messages{
		Submitted: "Successfully subscribed to newsletter",
		Listed:    "Newsletter subscriptions retrieved successfully",
		Noun:      "newsletter subscription",
		ListNoun:  "newsletter subscriptions",
	},
}

var reviewSchema = Schema[domain.Review]{
	Kind:       domain.KindReview,
	Collection: "reviews.json",
	IDPrefix:   "review",
	Fields: []Field{
		personName("name", "Name", capText),
		between("rating", 1, 5, "Rating must be between 1 and 5"),
		minText("comment", 10, capText, "Comment must be at least 10 characters long").
			rejectLonger(capText, "Comment must be less than 500 characters"),
	},
	Build: func(v Values, id string, at time.Time) domain.Review {
		return domain.Review{
			ID:       id,
			Name:     v.String("name"),
			Rating:   v.Int("rating"),
			Comment:  v.String("comment"),
			Date:     domain.NewTimestamp(at),
			Approved: false,
		}
	},
	Seed:       domain.SeedReviews,
	Visible:    func(r domain.Review) bool { return r.Approved },
	SortByDate: true,
	Messages: Messages{
		Submitted: "Review submitted successfully and is pending approval",
		Listed:    "Reviews retrieved successfully",
		Noun:      "review",
		ListNoun:  "reviews",
	},
}

// rejectActiveSubscription enforces one active subscription per email.
func rejectActiveSubscription(existing []domain.NewsletterSubscription, rec *domain.NewsletterSubscription) error {
	for _, sub := range existing {
		if sub.Active && sub.Email == rec.Email {
			return &apperrors.AppError{
				Code:    apperrors.ErrCodeDuplicate,
				Message: "Email already subscribed",
				Details: []string{"This email is already subscribed to our newsletter"},
			}
		}
	}
	return nil
}

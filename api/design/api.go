// Package design describes the public HTTP API in the goa DSL.
package design

import (
	. "goa.design/goa/v3/dsl"
	"goa.design/goa/v3/expr"

	"sankalp/internal/submission"
)

var _ = API("sankalp", func() {
	Title("Sankalp Special School API")
	Description("Form intake API for the Sankalp Special School website")
	Version("1.0.0")
	Server("api", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

// Failure envelopes returned by the form endpoints
var (
	ValidationFailure = failure("ValidationFailure", "Validation failed",
		"Name must be at least 2 characters long, Invalid email format")
	InternalFailure = failure("InternalFailure", "Internal server error",
		"Failed to process contact form")
)

func failure(name, message, detail string) expr.UserType {
	return Type(name, func() {
		Attribute("success", Boolean, "Always false", func() {
			Example(false)
		})
		Attribute("message", String, "Summary", func() {
			Example(message)
		})
		Attribute("error", String, "Every problem found, joined with \", \"", func() {
			Example(detail)
		})
		Required("success", "message", "error")
	})
}

// Health check
var _ = Service("health", func() {
	Description("Health check service")
	Method("check", func() {
		Result(HealthResult)
		HTTP(func() {
			GET("/health")
			Response(StatusOK)
		})
	})
})

var HealthResult = ResultType("HealthResult", func() {
	Attribute("status", String, "Service status", func() {
		Enum("healthy", "unhealthy")
		Example("healthy")
	})
	Attribute("service", String, "Service name", func() {
		Example("Sankalp Special School API")
	})
	Required("status", "service")
})

// formService declares the submit and list pair every collection exposes.
// Types are declared up front since Type only runs at the top level.
func formService(name, typeName, path, description string, payload, record expr.UserType) *expr.ServiceExpr {
	submitted := envelope(typeName+"SubmitEnvelope", record)
	listed := envelope(typeName+"ListEnvelope", ArrayOf(record))

	return Service(name, func() {
		Description(description)
		Error("validation_failed", ValidationFailure, "The submission broke one or more field rules")
		Error("internal", InternalFailure, "The collection could not be read or written")

		Method("submit", func() {
			Payload(payload)
			Result(submitted)
			Error("validation_failed")
			Error("internal")
			HTTP(func() {
				POST(path)
				Response(StatusCreated)
				Response("validation_failed", StatusBadRequest)
				Response("internal", StatusInternalServerError)
			})
		})

		Method("list", func() {
			Result(listed)
			Error("internal")
			HTTP(func() {
				GET(path)
				Response(StatusOK)
				Response("internal", StatusInternalServerError)
			})
		})
	})
}

func envelope(name string, data any) expr.UserType {
	return Type(name, func() {
		Attribute("success", Boolean, "Always true")
		Attribute("data", data)
		Attribute("message", String, "Confirmation text")
		Required("success", "data", "message")
	})
}

var _ = formService("contact", "Contact", "/api/contact", "Contact form submissions", ContactPayload, ContactSubmission)

var ContactPayload = Type("ContactPayload", func() {
	Attribute("name", String, "Full name", func() {
		MinLength(2)
		Example("Meera Rao")
	})
	Attribute("email", String, "Email address", func() {
		Pattern(submission.EmailPattern)
		Example("meera@example.com")
	})
	Attribute("phone", String, "Phone number", func() {
		Pattern(submission.PhonePattern)
		Example("+91 98765 43210")
	})
	Attribute("message", String, "Message", func() {
		MinLength(10)
	})
	Required("name", "email", "phone", "message")
})

var ContactSubmission = Type("ContactSubmission", func() {
	Attribute("id", String, "Record id", func() {
		Example("contact_1718000000000_k3j9x0a1b")
	})
	Attribute("name", String)
	Attribute("email", String)
	Attribute("phone", String)
	Attribute("message", String)
	Attribute("date", String, func() {
		Format(FormatDateTime)
	})
	Attribute("status", String, func() {
		Enum("new", "contacted", "resolved")
	})
	Required("id", "name", "email", "phone", "message", "date", "status")
})

var _ = formService("admissions", "Admission", "/api/admissions", "Admission inquiries", AdmissionPayload, AdmissionInquiry)

var AdmissionPayload = Type("AdmissionPayload", func() {
	Attribute("parentName", String, func() {
		MinLength(2)
	})
	Attribute("email", String, func() {
		Pattern(submission.EmailPattern)
	})
	Attribute("phone", String, func() {
		Pattern(submission.PhonePattern)
	})
	Attribute("childName", String, func() {
		MinLength(2)
	})
	Attribute("childAge", String, "Age band, free text")
	Attribute("childCondition", String, func() {
		MinLength(10)
	})
	Attribute("previousSchool", String)
	Attribute("message", String, func() {
		MinLength(10)
	})
	Required("parentName", "email", "phone", "childName", "childAge", "childCondition", "message")
})

var AdmissionInquiry = Type("AdmissionInquiry", func() {
	Attribute("id", String)
	Attribute("parentName", String)
	Attribute("email", String)
	Attribute("phone", String)
	Attribute("childName", String)
	Attribute("childAge", String)
	Attribute("childCondition", String)
	Attribute("previousSchool", String)
	Attribute("message", String)
	Attribute("date", String, func() {
		Format(FormatDateTime)
	})
	Attribute("status", String, func() {
		Enum("new", "scheduled", "assessed", "enrolled")
	})
	Required("id", "parentName", "email", "phone", "childName", "childAge", "childCondition", "message", "date", "status")
})

var _ = formService("events", "Event", "/api/events/register", "Event registrations", EventPayload, EventRegistration)

var EventPayload = Type("EventPayload", func() {
	Attribute("eventId", String)
	Attribute("eventTitle", String)
	Attribute("participantName", String, func() {
		MinLength(2)
	})
	Attribute("email", String, func() {
		Pattern(submission.EmailPattern)
	})
	Attribute("phone", String, func() {
		Pattern(submission.PhonePattern)
	})
	Attribute("numberOfAttendees", Int, func() {
		Minimum(1)
	})
	Attribute("specialRequirements", String)
	Required("eventId", "eventTitle", "participantName", "email", "phone", "numberOfAttendees")
})

var EventRegistration = Type("EventRegistration", func() {
	Attribute("id", String)
	Attribute("eventId", String)
	Attribute("eventTitle", String)
	Attribute("participantName", String)
	Attribute("email", String)
	Attribute("phone", String)
	Attribute("numberOfAttendees", Int)
	Attribute("specialRequirements", String)
	Attribute("date", String, func() {
		Format(FormatDateTime)
	})
	Required("id", "eventId", "eventTitle", "participantName", "email", "phone", "numberOfAttendees", "date")
})

var _ = formService("newsletter", "Newsletter", "/api/newsletter", "Newsletter subscriptions", NewsletterPayload, NewsletterSubscription)

var NewsletterPayload = Type("NewsletterPayload", func() {
	Attribute("email", String, func() {
		Pattern(submission.EmailPattern)
	})
	Attribute("name", String)
	Required("email")
})

var NewsletterSubscription = Type("NewsletterSubscription", func() {
	Attribute("id", String)
	Attribute("email", String)
	Attribute("name", String)
	Attribute("date", String, func() {
		Format(FormatDateTime)
	})
	Attribute("active", Boolean)
	Required("id", "email", "date", "active")
})

var _ = formService("reviews", "Review", "/api/reviews", "Parent reviews, listed once approved", ReviewPayload, Review)

var ReviewPayload = Type("ReviewPayload", func() {
	Attribute("name", String, func() {
		MinLength(2)
	})
	Attribute("rating", Int, func() {
		Minimum(1)
		Maximum(5)
	})
	Attribute("comment", String, func() {
		MinLength(10)
		MaxLength(500)
	})
	Required("name", "rating", "comment")
})

var Review = Type("Review", func() {
	Attribute("id", String)
	Attribute("name", String)
	Attribute("rating", Int)
	Attribute("comment", String)
	Attribute("date", String, func() {
		Format(FormatDateTime)
	})
	Attribute("approved", Boolean)
	Required("id", "name", "rating", "comment", "date", "approved")
})

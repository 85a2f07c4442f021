package submission

import (
	"context"
	"fmt"
	"time"

	"sankalp/internal/domain"
	"sankalp/internal/store"
	apperrors "sankalp/pkg/errors"
)

// Registry holds one pipeline per record kind.
type Registry struct {
	Contacts   *Pipeline[domain.ContactSubmission]
	Admissions *Pipeline[domain.AdmissionInquiry]
	Events     *Pipeline[domain.EventRegistration]
	Newsletter *Pipeline[domain.NewsletterSubscription]
	Reviews    *Pipeline[domain.Review]

	byKind map[domain.Kind]runner
}

type options struct {
	now   func() time.Time
	token func() string
}

// Option customizes a Registry.
type Option func(*options)

// WithClock replaces time.Now for record dates and ids.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithTokenSource replaces the random id suffix generator.
func WithTokenSource(token func() string) Option {
	return func(o *options) { o.token = token }
}

// NewRegistry wires a pipeline for every kind onto collections in s.
func NewRegistry(s *store.Store, opts ...Option) *Registry {
	o := options{now: time.Now, token: randomToken}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		Contacts:   newPipeline(s, contactSchema, o),
		Admissions: newPipeline(s, admissionSchema, o),
		Events:     newPipeline(s, eventSchema, o),
		Newsletter: newPipeline(s, newsletterSchema, o),
		Reviews:    newPipeline(s, reviewSchema, o),
	}
	r.byKind = map[domain.Kind]runner{
		domain.KindContact:           r.Contacts,
		domain.KindAdmission:         r.Admissions,
		domain.KindEventRegistration: r.Events,
		domain.KindNewsletter:        r.Newsletter,
		domain.KindReview:            r.Reviews,
	}
	return r
}

func (r *Registry) runner(kind domain.Kind) (runner, error) {
	run, ok := r.byKind[kind]
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, fmt.Sprintf("unknown record kind %q", kind))
	}
	return run, nil
}

// Submit runs the pipeline for kind on untrusted input.
func (r *Registry) Submit(ctx context.Context, kind domain.Kind, raw map[string]any) (domain.Record, error) {
	run, err := r.runner(kind)
	if err != nil {
		return nil, err
	}
	return run.submit(ctx, raw)
}

// List returns the publicly visible records of kind.
func (r *Registry) List(ctx context.Context, kind domain.Kind) ([]domain.Record, error) {
	run, err := r.runner(kind)
	if err != nil {
		return nil, err
	}
	return run.list(ctx)
}

// ListAll returns every record of kind in storage order, hidden ones included.
func (r *Registry) ListAll(ctx context.Context, kind domain.Kind) ([]domain.Record, error) {
	run, err := r.runner(kind)
	if err != nil {
		return nil, err
	}
	return run.all(ctx)
}

// Messages returns the response texts for kind.
func (r *Registry) Messages(kind domain.Kind) Messages {
	run, err := r.runner(kind)
	if err != nil {
		return Messages{}
	}
	return run.messages()
}

package submission

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"sankalp/internal/domain"
	apperrors "sankalp/pkg/errors"
)

// ApproveReview makes a review visible on the public read path.
func (r *Registry) ApproveReview(ctx context.Context, id string) error {
	found := false
	_, err := r.Reviews.coll.Update(ctx, func(rev *domain.Review) bool {
		if rev.ID != id {
			return false
		}
		found = true
		changed := !rev.Approved
		rev.Approved = true
		return changed
	})
	if err != nil {
		return err
	}
	if !found {
		return apperrors.New(apperrors.ErrCodeNotFound, fmt.Sprintf("review %q not found", id))
	}
	return nil
}

// Unsubscribe deactivates every active subscription for email and returns
// how many were changed.
func (r *Registry) Unsubscribe(ctx context.Context, email string) (int, error) {
	n, err := r.Newsletter.coll.Update(ctx, func(sub *domain.NewsletterSubscription) bool {
		if !sub.Active || sub.Email != email {
			return false
		}
		sub.Active = false
		return true
	})
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, apperrors.New(apperrors.ErrCodeNotFound, fmt.Sprintf("no active subscription for %q", email))
	}
	return n, nil
}

// SetStatus moves a contact submission or admission inquiry to status.
func (r *Registry) SetStatus(ctx context.Context, kind domain.Kind, id, status string) error {
	var (
		allowed []string
		update  func(ctx context.Context) (bool, error)
	)
	switch kind {
	case domain.KindContact:
		allowed = domain.ContactStatuses
		update = func(ctx context.Context) (bool, error) {
			found := false
			_, err := r.Contacts.coll.Update(ctx, func(c *domain.ContactSubmission) bool {
				if c.ID != id {
					return false
				}
				found = true
				return setIfDifferent(&c.Status, status)
			})
			return found, err
		}
	case domain.KindAdmission:
		allowed = domain.AdmissionStatuses
		update = func(ctx context.Context) (bool, error) {
			found := false
			_, err := r.Admissions.coll.Update(ctx, func(a *domain.AdmissionInquiry) bool {
				if a.ID != id {
					return false
				}
				found = true
				return setIfDifferent(&a.Status, status)
			})
			return found, err
		}
	default:
		return apperrors.Validation([]string{fmt.Sprintf("%s records have no status", kind)})
	}

	if !slices.Contains(allowed, status) {
		return apperrors.Validation([]string{
			fmt.Sprintf("Status must be one of %s", strings.Join(allowed, ", ")),
		})
	}

	found, err := update(ctx)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.New(apperrors.ErrCodeNotFound, fmt.Sprintf("%s %q not found", kind, id))
	}
	return nil
}

func setIfDifferent(field *string, value string) bool {
	if *field == value {
		return false
	}
	*field = value
	return true
}

package submission

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"sankalp/internal/domain"
	"sankalp/internal/store"
	apperrors "sankalp/pkg/errors"
)

const dataDir = "/data"

func newRegistry(t *testing.T, fsys afero.Fs, opts ...Option) *Registry {
	t.Helper()
	s, err := store.Open(fsys, dataDir, zaptest.NewLogger(t))
	require.NoError(t, err)
	return NewRegistry(s, opts...)
}

func validContact() map[string]any {
	return map[string]any{
		"name":    "Al",
		"email":   "a@b.com",
		"phone":   "9876543210",
		"message": "Please call me back soon",
	}
}

func TestSubmitContactStampsRecord(t *testing.T) {
	ctx := context.Background()
	r := newRegistry(t, afero.NewMemMapFs())

	started := time.Now().UTC().Truncate(time.Millisecond)
	rec, err := r.Contacts.Submit(ctx, validContact())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^contact_\d{13}_[0-9a-f]{9}$`), rec.ID)
	assert.Equal(t, domain.ContactStatusNew, rec.Status)
	assert.False(t, rec.Date.Before(started))
	assert.Equal(t, time.UTC, rec.Date.Location())

	_, err = time.Parse(time.RFC3339, rec.Date.Format(time.RFC3339Nano))
	assert.NoError(t, err)
}

func TestSubmitSanitizesStrings(t *testing.T) {
	r := newRegistry(t, afero.NewMemMapFs())
	raw := validContact()
	raw["name"] = "  <b>Meera</b>  "
	raw["message"] = "<script>call</script> me " + strings.Repeat("m", 1200)

	rec, err := r.Contacts.Submit(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, "bMeera/b", rec.Name)
	assert.False(t, strings.ContainsAny(rec.Message, "<>"))
	assert.Len(t, []rune(rec.Message), capLongText)
}

func TestSubmitValidationWritesNothing(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()
	r := newRegistry(t, fsys)

	_, err := r.Contacts.Submit(ctx, map[string]any{"name": "Al"})
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	assert.Len(t, appErr.Details, 3)

	exists, err := afero.Exists(fsys, filepath.Join(dataDir, "contacts.json"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSubmitThenListRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newRegistry(t, afero.NewMemMapFs())

	cases := []struct {
		kind domain.Kind
		raw  map[string]any
	}{
		{domain.KindContact, validContact()},
		{domain.KindAdmission, map[string]any{
			"parentName":     "Sunita Rao",
			"email":          "sunita@example.com",
			"phone":          "9876543210",
			"childName":      "Arjun",
			"childAge":       "6-8 years",
			"childCondition": "Autism spectrum, mild speech delay",
			"message":        "Looking for admission this term",
		}},
		{domain.KindEventRegistration, map[string]any{
			"eventId":           "annual-day",
			"eventTitle":        "Annual Day",
			"participantName":   "Ravi",
			"email":             "ravi@example.com",
			"phone":             "9876543210",
			"numberOfAttendees": float64(3),
		}},
		{domain.KindNewsletter, map[string]any{"email": "news@example.com"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			for i := 0; i < 2; i++ {
				rec, err := r.Submit(ctx, tc.kind, tc.raw)
				if tc.kind == domain.KindNewsletter && i == 1 {
					require.True(t, apperrors.IsDuplicate(err))
					continue
				}
				require.NoError(t, err)

				listed, err := r.List(ctx, tc.kind)
				require.NoError(t, err)
				require.NotEmpty(t, listed)
				assert.Equal(t, rec.RecordID(), listed[0].RecordID())
			}
		})
	}
}

func TestListIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := newRegistry(t, afero.NewMemMapFs())
	_, err := r.Contacts.Submit(ctx, validContact())
	require.NoError(t, err)

	for _, kind := range domain.Kinds {
		first, err := r.List(ctx, kind)
		require.NoError(t, err)
		second, err := r.List(ctx, kind)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(first, second), kind)
		assert.NotNil(t, first, kind)
	}
}

func TestIDsAreUniqueEvenWhenTokensCollide(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tokens := []string{"aaaaaaaaa", "aaaaaaaaa", "bbbbbbbbb"}
	next := 0
	r := newRegistry(t, afero.NewMemMapFs(),
		WithClock(func() time.Time { return fixed }),
		WithTokenSource(func() string {
			tok := tokens[next%len(tokens)]
			next++
			return tok
		}),
	)

	first, err := r.Contacts.Submit(ctx, validContact())
	require.NoError(t, err)
	second, err := r.Contacts.Submit(ctx, validContact())
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("contact_%d_aaaaaaaaa", fixed.UnixMilli()), first.ID)
	assert.Equal(t, fmt.Sprintf("contact_%d_bbbbbbbbb", fixed.UnixMilli()), second.ID)
}

func TestIDAllocationGivesUpOnRepeatingTokens(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	calls := 0
	r := newRegistry(t, afero.NewMemMapFs(),
		WithClock(func() time.Time { return fixed }),
		WithTokenSource(func() string {
			calls++
			return "aaaaaaaaa"
		}),
	)

	_, err := r.Contacts.Submit(ctx, validContact())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := r.Contacts.Submit(ctx, validContact())
		done <- err
	}()
	select {
	case err = <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("submit with a repeating token source did not return")
	}
	assert.True(t, apperrors.IsStorage(err), "%v", err)
	assert.Equal(t, 2+maxIDRetries, calls)

	listCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	records, err := r.Contacts.List(listCtx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestIDAllocationStopsOnCancelledContext(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	calls := 0
	r := newRegistry(t, afero.NewMemMapFs(),
		WithClock(func() time.Time { return fixed }),
		WithTokenSource(func() string {
			calls++
			if calls == 3 {
				cancel()
			}
			return "aaaaaaaaa"
		}),
	)

	_, err := r.Contacts.Submit(ctx, validContact())
	require.NoError(t, err)

	_, err = r.Contacts.Submit(ctx, validContact())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, calls)
}

func TestReviewsListApprovedNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := newRegistry(t, afero.NewMemMapFs())

	pending, err := r.Reviews.Submit(ctx, map[string]any{
		"name":    "Kavya",
		"rating":  float64(4),
		"comment": "Wonderful teachers and therapists",
	})
	require.NoError(t, err)
	assert.False(t, pending.Approved)
	assert.Equal(t, 4, pending.Rating)

	all, err := r.ListAll(ctx, domain.KindReview)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, pending.ID, all[0].RecordID())

	listed, err := r.Reviews.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for _, rev := range listed {
		assert.True(t, rev.Approved)
	}
	assert.Equal(t, []string{"review_3", "review_2", "review_1"}, []string{listed[0].ID, listed[1].ID, listed[2].ID})

	require.NoError(t, r.ApproveReview(ctx, pending.ID))
	listed, err = r.Reviews.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 4)
	assert.Equal(t, pending.ID, listed[0].ID)
	for i := 1; i < len(listed); i++ {
		assert.False(t, listed[i].Date.After(listed[i-1].Date.Time))
	}
}

func TestNewsletterDuplicateThenResubscribe(t *testing.T) {
	ctx := context.Background()
	r := newRegistry(t, afero.NewMemMapFs())
	raw := map[string]any{"email": "parent@example.com", "name": "Parent"}

	first, err := r.Newsletter.Submit(ctx, raw)
	require.NoError(t, err)
	assert.True(t, first.Active)

	_, err = r.Newsletter.Submit(ctx, raw)
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeDuplicate, appErr.Code)
	assert.Equal(t, "Email already subscribed", appErr.Message)

	n, err := r.Unsubscribe(ctx, "parent@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	listed, err := r.Newsletter.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	again, err := r.Newsletter.Submit(ctx, raw)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, again.ID)

	all, err := r.Newsletter.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestNewsletterDuplicateComparesSanitizedEmail(t *testing.T) {
	ctx := context.Background()
	r := newRegistry(t, afero.NewMemMapFs())

	_, err := r.Newsletter.Submit(ctx, map[string]any{"email": "parent@example.com"})
	require.NoError(t, err)
	_, err = r.Newsletter.Submit(ctx, map[string]any{"email": "<parent@example.com>"})
	assert.True(t, apperrors.IsDuplicate(err))

	// No case folding: a differently cased address is a separate subscriber.
	_, err = r.Newsletter.Submit(ctx, map[string]any{"email": "Parent@example.com"})
	assert.NoError(t, err)
}

func TestStorageFailureIsReported(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll(dataDir, 0o755))
	r := newRegistry(t, afero.NewReadOnlyFs(base))

	_, err := r.Contacts.Submit(context.Background(), validContact())
	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))

	_, err = r.List(context.Background(), domain.KindReview)
	assert.True(t, apperrors.IsStorage(err))
}

func TestUnknownKind(t *testing.T) {
	r := newRegistry(t, afero.NewMemMapFs())

	_, err := r.Submit(context.Background(), domain.Kind("donation"), map[string]any{})
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, Messages{}, r.Messages(domain.Kind("donation")))
	assert.Equal(t, "Contacts retrieved successfully", r.Messages(domain.KindContact).Listed)
}

// Package submission validates, sanitizes and stores form records. A single
// generic Pipeline serves every record kind; the per-kind differences live in
// the Schema table.
package submission

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"sankalp/internal/domain"
	"sankalp/internal/store"
	apperrors "sankalp/pkg/errors"
)

const (
	tokenLength = 9
	// maxIDRetries bounds how often a colliding id is regenerated while the
	// collection lock is held.
	maxIDRetries = 5
)

// Pipeline runs submit and list for one record kind.
type Pipeline[T domain.Record] struct {
	schema Schema[T]
	coll   *store.Collection[T]
	now    func() time.Time
	token  func() string
}

func newPipeline[T domain.Record](s *store.Store, schema Schema[T], o options) *Pipeline[T] {
	return &Pipeline[T]{
		schema: schema,
		coll:   store.NewCollection(s, schema.Collection, schema.Seed),
		now:    o.now,
		token:  o.token,
	}
}

// Submit validates raw, sanitizes it, stamps an id and date and prepends the
// resulting record to the collection.
func (p *Pipeline[T]) Submit(ctx context.Context, raw map[string]any) (T, error) {
	var zero T
	if problems := validate(p.schema.Fields, raw); len(problems) > 0 {
		return zero, apperrors.Validation(problems)
	}

	values := sanitize(p.schema.Fields, raw)
	at := p.now().UTC().Truncate(time.Millisecond)
	rec := p.schema.Build(values, p.newID(at), at)

	return p.coll.Prepend(ctx, rec, func(existing []T, rec *T) error {
		for retries := 0; idTaken(existing, (*rec).RecordID()); retries++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if retries == maxIDRetries {
				return apperrors.Storage(fmt.Errorf("submission: could not allocate unique %s id", p.schema.IDPrefix))
			}
			*rec = p.schema.Build(values, p.newID(at), at)
		}
		if p.schema.Check != nil {
			return p.schema.Check(existing, rec)
		}
		return nil
	})
}

// List returns the publicly visible records.
func (p *Pipeline[T]) List(ctx context.Context) ([]T, error) {
	records, err := p.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	if p.schema.Visible != nil {
		records = slices.DeleteFunc(records, func(r T) bool { return !p.schema.Visible(r) })
	}
	if p.schema.SortByDate {
		slices.SortStableFunc(records, func(a, b T) int {
			return b.RecordDate().Compare(a.RecordDate())
		})
	}
	return records, nil
}

// All returns every stored record in storage order.
func (p *Pipeline[T]) All(ctx context.Context) ([]T, error) {
	return p.coll.Load(ctx)
}

// newID formats "{prefix}_{epochMillis}_{token}".
func (p *Pipeline[T]) newID(at time.Time) string {
	return fmt.Sprintf("%s_%d_%s", p.schema.IDPrefix, at.UnixMilli(), p.token())
}

func idTaken[T domain.Record](records []T, id string) bool {
	for _, r := range records {
		if r.RecordID() == id {
			return true
		}
	}
	return false
}

func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:tokenLength]
}

// runner erases the record type so the registry can dispatch on Kind.
type runner interface {
	submit(ctx context.Context, raw map[string]any) (domain.Record, error)
	list(ctx context.Context) ([]domain.Record, error)
	all(ctx context.Context) ([]domain.Record, error)
	messages() Messages
}

func (p *Pipeline[T]) submit(ctx context.Context, raw map[string]any) (domain.Record, error) {
	rec, err := p.Submit(ctx, raw)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (p *Pipeline[T]) list(ctx context.Context) ([]domain.Record, error) {
	records, err := p.List(ctx)
	if err != nil {
		return nil, err
	}
	return erase(records), nil
}

func (p *Pipeline[T]) all(ctx context.Context) ([]domain.Record, error) {
	records, err := p.All(ctx)
	if err != nil {
		return nil, err
	}
	return erase(records), nil
}

func (p *Pipeline[T]) messages() Messages {
	return p.schema.Messages
}

func erase[T domain.Record](records []T) []domain.Record {
	out := make([]domain.Record, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}

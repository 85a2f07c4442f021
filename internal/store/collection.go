package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"sankalp/internal/domain"
	"sankalp/internal/metrics"
	apperrors "sankalp/pkg/errors"
)

// Collection is a JSON array of records stored newest-first in a single file.
type Collection[T domain.Record] struct {
	store *Store
	name  string
	seed  func() []T

	mu sync.Mutex
}

// NewCollection binds a collection file inside s. seed, when non-nil,
// supplies the records written when the file is first created.
func NewCollection[T domain.Record](s *Store, name string, seed func() []T) *Collection[T] {
	return &Collection[T]{store: s, name: name, seed: seed}
}

func (c *Collection[T]) path() string {
	return filepath.Join(c.store.dir, c.name)
}

// Load returns every record in storage order, creating the file if needed.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Prepend inserts rec at the head of the collection. check runs under the
// collection lock against the current contents and may adjust rec; an error
// from check aborts the write and is returned unchanged.
func (c *Collection[T]) Prepend(ctx context.Context, rec T, check func(existing []T, rec *T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	records, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	if check != nil {
		if err := check(records, &rec); err != nil {
			return zero, err
		}
	}

	next := make([]T, 0, len(records)+1)
	next = append(next, rec)
	next = append(next, records...)
	if err := c.write(ctx, next); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update applies fn to every record and rewrites the file if fn reported a
// change for at least one of them. It returns the number of changed records.
func (c *Collection[T]) Update(ctx context.Context, fn func(rec *T) bool) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	changed := 0
	for i := range records {
		if fn(&records[i]) {
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := c.write(ctx, records); err != nil {
		return 0, err
	}
	return changed, nil
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := afero.ReadFile(c.store.fs, c.path())
	if errors.Is(err, fs.ErrNotExist) {
		return c.create(ctx)
	}
	if err != nil {
		metrics.RecordStorageOp(c.name, "read", time.Since(start), err)
		return nil, apperrors.Storage(fmt.Errorf("store: read %s: %w", c.name, err))
	}

	records := []T{}
	if len(bytes.TrimSpace(data)) > 0 {
		err = json.Unmarshal(data, &records)
	}
	metrics.RecordStorageOp(c.name, "read", time.Since(start), err)
	if err != nil {
		return nil, apperrors.Storage(fmt.Errorf("store: decode %s: %w", c.name, err))
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *Collection[T]) create(ctx context.Context) ([]T, error) {
	records := []T{}
	if c.seed != nil {
		records = append(records, c.seed()...)
	}
	if err := c.write(ctx, records); err != nil {
		return nil, err
	}
	c.store.logger.Info("collection created",
		zap.String("collection", c.name),
		zap.Int("seeded", len(records)),
	)
	return records, nil
}

// write replaces the file through a temp file and rename so readers never
// observe a partially written array.
func (c *Collection[T]) write(ctx context.Context, records []T) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	defer func() {
		metrics.RecordStorageOp(c.name, "write", time.Since(start), err)
	}()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return apperrors.Storage(fmt.Errorf("store: encode %s: %w", c.name, err))
	}

	fsys := c.store.fs
	if err := fsys.MkdirAll(c.store.dir, dirPerm); err != nil {
		return apperrors.Storage(fmt.Errorf("store: create data dir: %w", err))
	}
	tmp, err := afero.TempFile(fsys, c.store.dir, c.name+".*.tmp")
	if err != nil {
		return apperrors.Storage(fmt.Errorf("store: write %s: %w", c.name, err))
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = fsys.Chmod(tmpName, filePerm)
	}
	if werr == nil {
		werr = fsys.Rename(tmpName, c.path())
	}
	if werr != nil {
		_ = fsys.Remove(tmpName)
		return apperrors.Storage(fmt.Errorf("store: write %s: %w", c.name, werr))
	}
	return nil
}

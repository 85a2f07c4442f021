// Package store persists form records as one JSON array file per collection.
//
// There is no in-memory cache: every operation re-reads its file, so edits
// made on disk are visible to the next call. Each collection serializes its
// own load-modify-write cycles with a mutex; writers in other processes are
// not coordinated.
package store

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	apperrors "sankalp/pkg/errors"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Store owns the data directory holding the collection files.
type Store struct {
	fs     afero.Fs
	dir    string
	logger *zap.Logger
}

// Open prepares dir on fs, creating it when absent.
func Open(fs afero.Fs, dir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{fs: fs, dir: dir, logger: logger.Named("store")}

	info, err := fs.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return nil, fmt.Errorf("store: data dir %s is not a directory", dir)
	case err == nil:
	case os.IsNotExist(err):
		if err := fs.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("store: create data dir %s: %w", dir, err)
		}
		s.logger.Info("data directory created", zap.String("dir", dir))
	default:
		return nil, fmt.Errorf("store: stat data dir %s: %w", dir, err)
	}
	return s, nil
}

// OpenOS opens dir on the host filesystem.
func OpenOS(dir string, logger *zap.Logger) (*Store, error) {
	return Open(afero.NewOsFs(), dir, logger)
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// HealthCheck reports whether the data directory is still reachable.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := s.fs.Stat(s.dir)
	if err != nil {
		return apperrors.Storage(fmt.Errorf("store: stat data dir: %w", err))
	}
	if !info.IsDir() {
		return apperrors.Storage(fmt.Errorf("store: %s is not a directory", s.dir))
	}
	return nil
}

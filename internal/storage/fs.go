package storage

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FSStore serves documents from a local directory. Storage paths are treated
// as keys relative to the root; anything that escapes the root is rejected
// before touching the filesystem.
type FSStore struct {
	root   string
	logger *slog.Logger
}

func NewFSStore(root string, logger *slog.Logger) (*FSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage root %q: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage root %q is not a directory", abs)
	}
	return &FSStore{root: abs, logger: logger}, nil
}

func (s *FSStore) Fetch(ctx context.Context, storagePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full, err := s.resolve(storagePath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("storage object missing", "path", storagePath)
			return nil, fmt.Errorf("%w: %s", ErrNotFound, storagePath)
		}
		return nil, fmt.Errorf("read %q: %w", storagePath, err)
	}
	return data, nil
}

func (s *FSStore) resolve(storagePath string) (string, error) {
	if storagePath == "" {
		return "", fmt.Errorf("%w: empty path", ErrNotFound)
	}
	if !fs.ValidPath(filepath.ToSlash(storagePath)) {
		return "", fmt.Errorf("invalid storage path %q", storagePath)
	}
	full := filepath.Join(s.root, filepath.FromSlash(storagePath))
	if full != s.root && !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("storage path %q escapes root", storagePath)
	}
	return full, nil
}

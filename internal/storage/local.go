package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalBackend stores objects as plain files under a directory that the HTTP
// layer serves verbatim (gin r.Static). This is the default backend.
type LocalBackend struct {
	dir          string
	publicPrefix string
}

// NewLocalBackend ensures dir exists and returns a backend whose URLs are
// publicPrefix + "/" + key (e.g. "/uploads/photo-123.jpg").
func NewLocalBackend(dir, publicPrefix string) (*LocalBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalBackend{dir: dir, publicPrefix: publicPrefix}, nil
}

func (l *LocalBackend) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (err error) {
	f, err := os.OpenFile(filepath.Join(l.dir, key), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open upload file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close upload file: %w", cerr)
		}
	}()
	if _, err = io.Copy(f, r); err != nil {
		return fmt.Errorf("write upload file: %w", err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("sync upload file: %w", err)
	}
	return nil
}

func (l *LocalBackend) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(l.dir, key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (l *LocalBackend) URL(key string) string {
	return l.publicPrefix + "/" + key
}

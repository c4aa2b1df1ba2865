package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/monapdx/Escort-Template/pkg/logger"
	"github.com/monapdx/Escort-Template/pkg/metrics"
)

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrPhotoNotFound   = errors.New("photo not found")
)

// FileRemover deletes a stored photo binary by its storage key. Satisfied by
// the storage backends; may be nil when binary cleanup is not wanted (tests).
type FileRemover interface {
	Delete(ctx context.Context, key string) error
}

// Store owns the on-disk content document. Every operation follows the same
// protocol under one store-wide mutex: read the latest persisted document,
// apply the change in memory, rewrite the whole file. Concurrent mutations
// therefore serialize instead of clobbering each other.
type Store struct {
	mu    sync.Mutex
	path  string
	files FileRemover
}

// NewStore creates the data directory if needed. The document file itself is
// written lazily on first load.
func NewStore(path string, files FileRemover) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	return &Store{path: path, files: files}, nil
}

// Load returns the current document, bootstrapping storage with the default
// document when none exists. Unparsable persisted bytes reset storage to the
// defaults: that is deliberate disaster recovery, and it loses admin-entered
// content, so it is surfaced as a warning plus a metric rather than an error.
func (s *Store) Load() (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() (Document, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read content file: %w", err)
		}
		doc := DefaultDocument()
		if err := s.persistLocked(doc); err != nil {
			return nil, err
		}
		logger.Infof("content: initialized %s with the default document", s.path)
		return doc, nil
	}

	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil || doc == nil {
		logger.Warnf("content: %s is unparsable, resetting to defaults (previous content is lost): %v", s.path, err)
		metrics.StoreResets.Inc()
		doc = DefaultDocument()
		if perr := s.persistLocked(doc); perr != nil {
			return nil, perr
		}
	}
	return doc, nil
}

// persistLocked rewrites the whole document file. The handle is flushed and
// closed on every exit path.
func (s *Store) persistLocked(doc Document) (err error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode content document: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open content file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close content file: %w", cerr)
		}
	}()
	if _, err = f.Write(b); err != nil {
		return fmt.Errorf("write content file: %w", err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("sync content file: %w", err)
	}
	return nil
}

// GetSection returns one section's raw value. ErrSectionNotFound when absent.
func (s *Store) GetSection(name string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.loadLocked()
	if err != nil {
		return nil, err
	}
	v, ok := doc[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, name)
	}
	return v, nil
}

// ReplaceSection overwrites an existing section wholesale. Sections cannot be
// created this way: an unknown name is ErrSectionNotFound, same as reads.
func (s *Store) ReplaceSection(name string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.loadLocked()
	if err != nil {
		return err
	}
	if _, ok := doc[name]; !ok {
		return fmt.Errorf("%w: %s", ErrSectionNotFound, name)
	}
	doc[name] = value
	if err := s.persistLocked(doc); err != nil {
		return err
	}
	metrics.ContentMutations.WithLabelValues("replace_section").Inc()
	return nil
}

// ListPhotos returns the photos section in stored (position) order, or an
// empty slice when the section is absent.
func (s *Store) ListPhotos() ([]Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.loadLocked()
	if err != nil {
		return nil, err
	}
	return decodePhotos(doc), nil
}

// AddPhoto appends a gallery entry and re-sorts the whole sequence ascending
// by position (stable, so equal positions keep insertion order).
func (s *Store) AddPhoto(id, url, label string, position int) (Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.loadLocked()
	if err != nil {
		return Photo{}, err
	}
	photos := decodePhotos(doc)
	p := Photo{ID: id, URL: url, Label: label, Position: position}
	photos = append(photos, p)
	sort.SliceStable(photos, func(i, j int) bool { return photos[i].Position < photos[j].Position })
	if err := s.setPhotosLocked(doc, photos); err != nil {
		return Photo{}, err
	}
	metrics.ContentMutations.WithLabelValues("add_photo").Inc()
	return p, nil
}

// RemovePhoto drops the entry and asks the binary backend to delete the
// stored file. The document change is authoritative: a failed binary delete
// is logged and swallowed, never surfaced.
func (s *Store) RemovePhoto(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.loadLocked()
	if err != nil {
		return err
	}
	photos := decodePhotos(doc)
	idx := -1
	for i, p := range photos {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrPhotoNotFound, id)
	}
	if s.files != nil {
		if err := s.files.Delete(ctx, id); err != nil {
			logger.Warnf("content: could not delete stored file for photo %s: %v", id, err)
		}
	}
	photos = append(photos[:idx], photos[idx+1:]...)
	if err := s.setPhotosLocked(doc, photos); err != nil {
		return err
	}
	metrics.ContentMutations.WithLabelValues("remove_photo").Inc()
	return nil
}

func (s *Store) setPhotosLocked(doc Document, photos []Photo) error {
	b, err := json.Marshal(photos)
	if err != nil {
		return fmt.Errorf("encode photos: %w", err)
	}
	doc["photos"] = b
	return s.persistLocked(doc)
}

// decodePhotos reads the photos section leniently. A missing section yields
// an empty gallery; so does a section that is not an array, since the content
// API allows replacing it with arbitrary JSON.
func decodePhotos(doc Document) []Photo {
	raw, ok := doc["photos"]
	if !ok {
		return []Photo{}
	}
	var photos []Photo
	if err := json.Unmarshal(raw, &photos); err != nil {
		logger.Warnf("content: photos section is not a valid photo array, treating as empty: %v", err)
		return []Photo{}
	}
	if photos == nil {
		return []Photo{}
	}
	return photos
}

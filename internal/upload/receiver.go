package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/monapdx/Escort-Template/internal/storage"
	"github.com/monapdx/Escort-Template/pkg/metrics"
)

var ErrPayloadTooLarge = errors.New("payload too large")

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Stored identifies a persisted upload. ID is the generated storage filename;
// URL is where the binary is served from.
type Stored struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Receiver accepts an uploaded binary, names it, and hands it to the storage
// backend. The whole payload is buffered so that an over-limit upload is
// rejected before anything reaches storage: no partial file is ever retained.
type Receiver struct {
	backend  storage.Backend
	maxBytes int64
}

func NewReceiver(backend storage.Backend, maxBytes int64) *Receiver {
	return &Receiver{backend: backend, maxBytes: maxBytes}
}

// Receive streams src to storage under a generated collision-resistant name
// derived from originalName. Returns ErrPayloadTooLarge past the size cap.
func (r *Receiver) Receive(ctx context.Context, src io.Reader, originalName, contentType string) (Stored, error) {
	buf, err := io.ReadAll(io.LimitReader(src, r.maxBytes+1))
	if err != nil {
		return Stored{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(buf)) > r.maxBytes {
		return Stored{}, ErrPayloadTooLarge
	}

	id := generateID(originalName)
	if err := r.backend.Put(ctx, id, bytes.NewReader(buf), int64(len(buf)), contentType); err != nil {
		return Stored{}, fmt.Errorf("store upload: %w", err)
	}
	metrics.UploadsReceived.Inc()
	return Stored{ID: id, URL: r.backend.URL(id)}, nil
}

// generateID sanitizes the original base name and appends a millisecond
// timestamp plus a uuid fragment, so same-name (and same-millisecond) uploads
// do not collide. The original extension is preserved.
func generateID(originalName string) string {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	base = unsafeChars.ReplaceAllString(base, "-")
	if strings.Trim(base, "-") == "" {
		base = "photo"
	}
	if ext != "" {
		ext = "." + unsafeChars.ReplaceAllString(strings.ToLower(ext[1:]), "")
	}
	token := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s-%d-%s%s", base, time.Now().UnixMilli(), token, ext)
}

package upload

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/monapdx/Escort-Template/internal/storage"
)

func newTestReceiver(t *testing.T, maxBytes int64) (*Receiver, string) {
	t.Helper()
	dir := t.TempDir()
	backend, err := storage.NewLocalBackend(dir, "/uploads")
	require.NoError(t, err)
	return NewReceiver(backend, maxBytes), dir
}

func TestReceiveStoresFile(t *testing.T) {
	r, dir := newTestReceiver(t, 1<<20)

	got, err := r.Receive(context.Background(), strings.NewReader("image-bytes"), "My Photo (1).JPG", "image/jpeg")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(got.ID, "My-Photo-"), "sanitized base expected, got %q", got.ID)
	require.NotContains(t, got.ID, " ")
	require.NotContains(t, got.ID, "(")
	require.True(t, strings.HasSuffix(got.ID, ".jpg"), "extension should be preserved, got %q", got.ID)
	require.Equal(t, "/uploads/"+got.ID, got.URL)

	data, err := os.ReadFile(filepath.Join(dir, got.ID))
	require.NoError(t, err)
	require.Equal(t, "image-bytes", string(data))
}

func TestReceiveGeneratesUniqueNames(t *testing.T) {
	r, _ := newTestReceiver(t, 1<<20)
	ctx := context.Background()

	a, err := r.Receive(ctx, strings.NewReader("a"), "same.jpg", "image/jpeg")
	require.NoError(t, err)
	b, err := r.Receive(ctx, strings.NewReader("b"), "same.jpg", "image/jpeg")
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
}

func TestReceiveRejectsOversizedPayload(t *testing.T) {
	r, dir := newTestReceiver(t, 8)

	_, err := r.Receive(context.Background(), strings.NewReader("way more than eight bytes"), "big.jpg", "image/jpeg")
	require.ErrorIs(t, err, ErrPayloadTooLarge)

	// no partial file retained
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestReceiveHandlesNamelessUpload(t *testing.T) {
	r, _ := newTestReceiver(t, 1<<20)

	got, err := r.Receive(context.Background(), strings.NewReader("x"), "", "")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got.ID, "photo-"), "fallback base expected, got %q", got.ID)
}

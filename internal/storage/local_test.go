package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalBackendPutDeleteURL(t *testing.T) {
	dir := t.TempDir()
	b, err := NewLocalBackend(dir, "/uploads")
	require.NoError(t, err)

	ctx := context.Background()
	err = b.Put(ctx, "pic-1.jpg", strings.NewReader("jpegbytes"), 9, "image/jpeg")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "pic-1.jpg"))
	require.NoError(t, err)
	require.Equal(t, "jpegbytes", string(data))

	require.Equal(t, "/uploads/pic-1.jpg", b.URL("pic-1.jpg"))

	require.NoError(t, b.Delete(ctx, "pic-1.jpg"))
	_, err = os.Stat(filepath.Join(dir, "pic-1.jpg"))
	require.True(t, os.IsNotExist(err))

	// deleting a missing object is not an error
	require.NoError(t, b.Delete(ctx, "pic-1.jpg"))
}

func TestNewLocalBackendCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalBackend(dir, "/uploads")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

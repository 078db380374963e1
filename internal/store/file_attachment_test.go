package store

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes/internal/logger"
)

func TestAttachmentFileStorage_SaveOpen(t *testing.T) {
	ctx := context.Background()
	fs := NewMemoryAttachmentFileStorage(logger.Nop())

	written, err := fs.Save(ctx, "attachments/a.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), written)

	exists, err := fs.Exists(ctx, "attachments/a.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	r, err := fs.Open(ctx, "attachments/a.txt")
	require.NoError(t, err)
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
}

func TestAttachmentFileStorage_Missing(t *testing.T) {
	ctx := context.Background()
	fs := NewMemoryAttachmentFileStorage(logger.Nop())

	_, err := fs.Open(ctx, "attachments/missing.png")
	assert.ErrorIs(t, err, ErrAttachmentNotFound)

	exists, err := fs.Exists(ctx, "attachments/missing.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAttachmentFileStorage_OnDisk(t *testing.T) {
	ctx := context.Background()
	fs, err := NewAttachmentFileStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	_, err = fs.Save(ctx, "attachments/b.bin", strings.NewReader("bytes"))
	require.NoError(t, err)

	r, err := fs.Open(ctx, "attachments/b.bin")
	require.NoError(t, err)
	r.Close()
}

func TestAttachmentFileStorage_RejectsEscapingPaths(t *testing.T) {
	ctx := context.Background()
	fs := NewMemoryAttachmentFileStorage(logger.Nop())

	for _, path := range []string{"", "/etc/passwd", "../secret", "attachments/../../x", ".."} {
		t.Run(path, func(t *testing.T) {
			_, err := fs.Open(ctx, path)
			assert.ErrorIs(t, err, ErrInvalidAttachmentPath)
		})
	}
}

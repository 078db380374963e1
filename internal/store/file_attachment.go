package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-notes/internal/logger"
)

// ErrInvalidAttachmentPath is returned for paths escaping the storage root.
var ErrInvalidAttachmentPath = errors.New("invalid attachment path")

// aferoFileStorage stores attachment files in an afero filesystem rooted at
// the configured attachments directory.
type aferoFileStorage struct {
	fs     afero.Fs
	logger *logger.Logger
}

// NewAttachmentFileStorage returns file storage rooted at dir on the OS
// filesystem, creating dir when missing.
func NewAttachmentFileStorage(dir string, logger *logger.Logger) (AttachmentFileStorage, error) {
	if err := afero.NewOsFs().MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create attachments dir: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating attachment file storage")
	return newAferoFileStorage(afero.NewBasePathFs(afero.NewOsFs(), dir), logger), nil
}

// NewMemoryAttachmentFileStorage returns file storage backed by memory.
func NewMemoryAttachmentFileStorage(logger *logger.Logger) AttachmentFileStorage {
	return newAferoFileStorage(afero.NewMemMapFs(), logger)
}

func newAferoFileStorage(fs afero.Fs, logger *logger.Logger) *aferoFileStorage {
	return &aferoFileStorage{fs: fs, logger: logger}
}

// Save writes r to path, replacing any existing file, and returns the number
// of bytes written.
func (s *aferoFileStorage) Save(ctx context.Context, path string, r io.Reader) (int64, error) {
	log := logger.FromContext(ctx)

	clean, err := cleanAttachmentPath(path)
	if err != nil {
		return 0, err
	}

	if err = s.fs.MkdirAll(filepath.Dir(clean), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := s.fs.Create(clean)
	if err != nil {
		log.Err(err).Str("func", "aferoFileStorage.Save").Str("path", clean).Msg("failed to create file")
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, r)
	if err != nil {
		log.Err(err).Str("func", "aferoFileStorage.Save").Str("path", clean).Msg("failed to write file")
		return 0, fmt.Errorf("failed to save file: %w", err)
	}

	return written, nil
}

// Open returns a reader for the file at path. A missing file yields
// [ErrAttachmentNotFound].
func (s *aferoFileStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	clean, err := cleanAttachmentPath(path)
	if err != nil {
		return nil, err
	}

	file, err := s.fs.Open(clean)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrAttachmentNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "aferoFileStorage.Open").
			Str("path", clean).
			Msg("failed to open file")
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

func (s *aferoFileStorage) Exists(_ context.Context, path string) (bool, error) {
	clean, err := cleanAttachmentPath(path)
	if err != nil {
		return false, err
	}

	return afero.Exists(s.fs, clean)
}

// cleanAttachmentPath normalises a stored relative path and rejects absolute
// paths and parent references.
func cleanAttachmentPath(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAttachmentPath, path)
	}

	clean := filepath.Clean(path)
	if clean == "." || clean == ".." || len(clean) > 2 && clean[:3] == ".."+string(filepath.Separator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAttachmentPath, path)
	}

	return clean, nil
}

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

var attachmentRowColumns = []string{
	"id", "note_id", "filename", "original_filename", "mime_type",
	"file_size", "file_path", "created_at", "updated_at",
}

func TestCreateAttachment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttachmentRepository(db, logger.Nop())

	now := time.Now().UTC()
	a := models.NoteAttachment{
		NoteID: 11, Filename: "u.png", OriginalFilename: "photo.png", MimeType: "image/png",
		FileSize: 42, FilePath: "attachments/u.png", CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO note_attachments").
		WithArgs(int64(11), "u.png", "photo.png", "image/png", int64(42), "attachments/u.png", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	created, err := repo.CreateAttachment(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
}

func TestGetAttachment(t *testing.T) {
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAttachmentRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT (.+) FROM note_attachments WHERE id =").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(attachmentRowColumns).
				AddRow(5, 11, "u.png", "photo.png", "image/png", 42, "attachments/u.png", now, now))

		a, err := repo.GetAttachment(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(11), a.NoteID)
		assert.True(t, a.IsImage())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAttachmentRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetAttachment(context.Background(), 5)
		assert.ErrorIs(t, err, ErrAttachmentNotFound)
	})
}

func TestListAttachments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttachmentRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM note_attachments WHERE note_id = (.+) ORDER BY id ASC").
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(attachmentRowColumns).
			AddRow(5, 11, "u.png", "photo.png", "image/png", 42, "attachments/u.png", now, now).
			AddRow(6, 11, "v.pdf", "doc.pdf", "application/pdf", 7, "attachments/v.pdf", now, now))

	list, err := repo.ListAttachments(context.Background(), 11)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[1].IsImage())
}

package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-notes/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type FolderRepository interface {
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	GetFolder(ctx context.Context, id int64) (models.Folder, error)
	ListFolders(ctx context.Context, userID int64) ([]models.Folder, error)
	CountFolders(ctx context.Context, userID int64) (int64, error)
	UpdateFolder(ctx context.Context, update models.UpdateFolderRequest, updatedAt time.Time) (models.Folder, error)
	DeleteFolder(ctx context.Context, id, userID int64) error
}

type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, id int64) (models.Note, error)
	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	CountNotes(ctx context.Context, filter models.NoteFilter) (int64, error)
	ListRecentNotes(ctx context.Context, userID int64, limit int) ([]models.Note, error)
	UpdateNote(ctx context.Context, update models.UpdateNoteRequest, updatedAt time.Time) (models.Note, error)
	SoftDeleteNote(ctx context.Context, id, userID int64, deletedAt time.Time) error
}

type AttachmentRepository interface {
	CreateAttachment(ctx context.Context, attachment models.NoteAttachment) (models.NoteAttachment, error)
	GetAttachment(ctx context.Context, id int64) (models.NoteAttachment, error)
	ListAttachments(ctx context.Context, noteID int64) ([]models.NoteAttachment, error)
}

// AttachmentFileStorage keeps attachment bytes outside the database. Paths
// are relative to the storage root, e.g. "attachments/<uuid>.jpg".
type AttachmentFileStorage interface {
	Save(ctx context.Context, path string, r io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Exists(ctx context.Context, path string) (bool, error)
}

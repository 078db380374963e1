package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-notes/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// FolderService manages the requester's folders. Every single-folder
// operation checks ownership first.
type FolderService interface {
	ListFolders(ctx context.Context, userID int64) ([]models.Folder, error)
	CreateFolder(ctx context.Context, request models.CreateFolderRequest) (models.Folder, error)
	GetFolder(ctx context.Context, id, userID int64) (models.Folder, error)
	GetFolderView(ctx context.Context, id, userID int64) (models.FolderView, error)
	UpdateFolder(ctx context.Context, request models.UpdateFolderRequest) (models.Folder, error)
	DeleteFolder(ctx context.Context, id, userID int64) error
}

// NoteService manages the requester's notes. Every single-note operation
// checks ownership first.
type NoteService interface {
	ListNotes(ctx context.Context, filter models.NoteFilter) (models.Page[models.Note], error)
	CreateNote(ctx context.Context, request models.CreateNoteRequest) (models.Note, error)
	GetNote(ctx context.Context, id, userID int64) (models.Note, error)
	UpdateNote(ctx context.Context, request models.UpdateNoteRequest) (models.Note, error)
	SoftDeleteNote(ctx context.Context, id, userID int64) error
}

type HomeService interface {
	Home(ctx context.Context, request models.HomeRequest) (models.HomeView, error)
}

type AttachmentService interface {
	// OpenAttachment returns the attachment metadata and its bytes. The
	// caller closes the reader.
	OpenAttachment(ctx context.Context, noteID, attachmentID, userID int64) (models.NoteAttachment, io.ReadCloser, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthStatus
}

// FolderServiceWrapper defines middleware composition for FolderService.
// Implementations wrap an existing FolderService to add behavior such as
// validating.
type FolderServiceWrapper interface {
	Wrap(FolderService) FolderService
}

// NoteServiceWrapper defines middleware composition for NoteService.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed Go client for the go-notes HTTP API.
//
// [NotesClient] hides the page envelope, bearer token handling and redirect
// responses of the server. Non-2xx statuses are mapped by mapHTTPError to the
// sentinel errors in errors.go so callers can use [errors.Is]. A 422 response
// is returned as [validators.FieldErrors].
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-notes/models"
)

// NotesClient talks to a go-notes server on behalf of a single user.
type NotesClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Home fetches the dashboard. A guest receives [ErrGuest].
	Home(ctx context.Context, filters models.Filters) (models.HomeView, error)

	ListNotes(ctx context.Context, query NotesQuery) (NotesIndex, error)
	GetNote(ctx context.Context, id int64) (models.Note, error)

	// CreateNote returns the id of the new note taken from the redirect.
	CreateNote(ctx context.Context, request models.CreateNoteRequest) (int64, error)
	UpdateNote(ctx context.Context, request models.UpdateNoteRequest) (models.Note, error)
	DeleteNote(ctx context.Context, id int64) error

	ListFolders(ctx context.Context) ([]models.Folder, error)
	GetFolder(ctx context.Context, id int64) (models.FolderView, error)
	CreateFolder(ctx context.Context, request models.CreateFolderRequest) (int64, error)
	UpdateFolder(ctx context.Context, request models.UpdateFolderRequest) error
	DeleteFolder(ctx context.Context, id int64) error

	// DownloadAttachment streams an attachment body. The caller closes it.
	DownloadAttachment(ctx context.Context, noteID, attachmentID int64) (Attachment, error)

	Version(ctx context.Context) (string, error)
	Health(ctx context.Context) (models.HealthStatus, error)
}

// NotesQuery selects a page of the notes index.
type NotesQuery struct {
	Filters models.Filters
	Page    int
	PerPage int
}

// NotesIndex is the decoded notes index page.
type NotesIndex struct {
	Notes   models.Page[models.Note] `json:"notes"`
	Folders []models.Folder          `json:"folders"`
	Filters models.Filters           `json:"filters"`
}

// Attachment is a downloaded attachment.
type Attachment struct {
	Filename    string
	ContentType string
	Body        io.ReadCloser
}

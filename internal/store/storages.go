package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
)

// Storages groups every repository over one database connection together
// with the attachment file storage.
type Storages struct {
	DB                   *DB
	UserRepository       UserRepository
	FolderRepository     FolderRepository
	NoteRepository       NoteRepository
	AttachmentRepository AttachmentRepository
	AttachmentFiles      AttachmentFileStorage
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	files, err := NewAttachmentFileStorage(cfg.Files.AttachmentsDir, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return newStorages(db, files, log), nil
}

func newStorages(db *DB, files AttachmentFileStorage, log *logger.Logger) *Storages {
	return &Storages{
		DB:                   db,
		UserRepository:       NewUserRepository(db, log),
		FolderRepository:     NewFolderRepository(db, log),
		NoteRepository:       NewNoteRepository(db, log),
		AttachmentRepository: NewAttachmentRepository(db, log),
		AttachmentFiles:      files,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}

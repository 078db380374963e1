package service

import (
	"fmt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
)

type Services struct {
	AuthService       AuthService
	FolderService     FolderService
	NoteService       NoteService
	HomeService       HomeService
	AttachmentService AttachmentService
	AppInfoService    AppInfoService
}

// NewServices builds every service over storages. Folder and note services
// are wrapped with their validation decorators.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	folderService := NewFolderValidationService().Wrap(
		NewFolderService(storages.FolderRepository, storages.NoteRepository, logger),
	)
	noteService := NewNoteValidationService().Wrap(
		NewNoteService(storages.NoteRepository, storages.FolderRepository, storages.AttachmentRepository, cfg.Listing, logger),
	)

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		FolderService:     folderService,
		NoteService:       noteService,
		HomeService:       NewHomeService(storages.NoteRepository, storages.FolderRepository, cfg.Listing, logger),
		AttachmentService: NewAttachmentService(storages.NoteRepository, storages.AttachmentRepository, storages.AttachmentFiles, logger),
		AppInfoService:    appInfoService,
	}, nil
}

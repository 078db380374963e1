package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

type folderService struct {
	folderRepository store.FolderRepository
	noteRepository   store.NoteRepository

	now func() time.Time

	logger *logger.Logger
}

func NewFolderService(folderRepository store.FolderRepository, noteRepository store.NoteRepository, logger *logger.Logger) FolderService {
	return &folderService{
		folderRepository: folderRepository,
		noteRepository:   noteRepository,
		now:              time.Now,
		logger:           logger,
	}
}

func (s *folderService) ListFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	folders, err := s.folderRepository.ListFolders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing folders: %w", err)
	}

	return folders, nil
}

// CreateFolder stores a new folder for request.UserID. An empty color
// becomes [models.DefaultFolderColor] and a missing sort order becomes 0.
func (s *folderService) CreateFolder(ctx context.Context, request models.CreateFolderRequest) (models.Folder, error) {
	now := s.now().UTC()
	folder := models.Folder{
		UserID:    request.UserID,
		Name:      request.Name,
		Color:     request.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if folder.Color == "" {
		folder.Color = models.DefaultFolderColor
	}
	if request.SortOrder != nil {
		folder.SortOrder = *request.SortOrder
	}

	created, err := s.folderRepository.CreateFolder(ctx, folder)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "folderService.CreateFolder").
			Int64("user_id", request.UserID).
			Msg("error creating folder")
		return models.Folder{}, fmt.Errorf("error creating folder: %w", err)
	}

	return created, nil
}

// GetFolder returns the folder when userID owns it.
func (s *folderService) GetFolder(ctx context.Context, id, userID int64) (models.Folder, error) {
	folder, err := s.folderRepository.GetFolder(ctx, id)
	if err != nil {
		return models.Folder{}, err
	}

	if err = authorize(folder, userID); err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "folderService.GetFolder").
			Int64("folder_id", id).
			Int64("user_id", userID).
			Msg("access to foreign folder denied")
		return models.Folder{}, err
	}

	return folder, nil
}

// GetFolderView returns the folder with its active notes, pinned first.
func (s *folderService) GetFolderView(ctx context.Context, id, userID int64) (models.FolderView, error) {
	folder, err := s.GetFolder(ctx, id, userID)
	if err != nil {
		return models.FolderView{}, err
	}

	notes, err := s.noteRepository.ListNotes(ctx, models.NoteFilter{UserID: userID, FolderID: &folder.ID})
	if err != nil {
		return models.FolderView{}, fmt.Errorf("error listing folder notes: %w", err)
	}

	return models.FolderView{Folder: folder, Notes: notes}, nil
}

// UpdateFolder applies a partial update. An empty patch returns the folder
// unchanged.
func (s *folderService) UpdateFolder(ctx context.Context, request models.UpdateFolderRequest) (models.Folder, error) {
	folder, err := s.GetFolder(ctx, request.ID, request.UserID)
	if err != nil {
		return models.Folder{}, err
	}

	if request.IsEmpty() {
		return folder, nil
	}

	updated, err := s.folderRepository.UpdateFolder(ctx, request, s.now().UTC())
	if err != nil {
		return models.Folder{}, fmt.Errorf("error updating folder: %w", err)
	}

	return updated, nil
}

// DeleteFolder removes the folder. Its notes are kept without a folder.
func (s *folderService) DeleteFolder(ctx context.Context, id, userID int64) error {
	if _, err := s.GetFolder(ctx, id, userID); err != nil {
		return err
	}

	if err := s.folderRepository.DeleteFolder(ctx, id, userID); err != nil {
		return fmt.Errorf("error deleting folder: %w", err)
	}

	return nil
}

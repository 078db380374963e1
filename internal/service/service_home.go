package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

// homeService assembles the home page from independent reads.
type homeService struct {
	noteRepository   store.NoteRepository
	folderRepository store.FolderRepository

	homeLimit   int
	recentLimit int

	logger *logger.Logger
}

func NewHomeService(noteRepository store.NoteRepository, folderRepository store.FolderRepository, cfg config.Listing, logger *logger.Logger) HomeService {
	return &homeService{
		noteRepository:   noteRepository,
		folderRepository: folderRepository,
		homeLimit:        cfg.HomeLimit,
		recentLimit:      cfg.RecentLimit,
		logger:           logger,
	}
}

func (s *homeService) Home(ctx context.Context, request models.HomeRequest) (models.HomeView, error) {
	notes, err := s.noteRepository.ListNotes(ctx, models.NoteFilter{
		UserID:   request.UserID,
		Search:   request.Search,
		FolderID: request.FolderID,
		Page:     1,
		PerPage:  s.homeLimit,
	})
	if err != nil {
		return models.HomeView{}, fmt.Errorf("error listing home notes: %w", err)
	}

	folders, err := s.folderRepository.ListFolders(ctx, request.UserID)
	if err != nil {
		return models.HomeView{}, fmt.Errorf("error listing home folders: %w", err)
	}

	recent, err := s.noteRepository.ListRecentNotes(ctx, request.UserID, s.recentLimit)
	if err != nil {
		return models.HomeView{}, fmt.Errorf("error listing recent notes: %w", err)
	}

	stats, err := s.stats(ctx, request.UserID)
	if err != nil {
		return models.HomeView{}, err
	}

	return models.HomeView{
		Notes:       notes,
		Folders:     folders,
		RecentNotes: recent,
		Filters:     models.Filters{Search: request.Search, Folder: request.FolderID},
		Stats:       stats,
	}, nil
}

// stats ignores the request filters.
func (s *homeService) stats(ctx context.Context, userID int64) (models.Stats, error) {
	var (
		stats models.Stats
		err   error
	)

	if stats.TotalNotes, err = s.noteRepository.CountNotes(ctx, models.NoteFilter{UserID: userID}); err != nil {
		return models.Stats{}, fmt.Errorf("error counting notes: %w", err)
	}
	if stats.TotalFolders, err = s.folderRepository.CountFolders(ctx, userID); err != nil {
		return models.Stats{}, fmt.Errorf("error counting folders: %w", err)
	}
	if stats.PinnedNotes, err = s.noteRepository.CountNotes(ctx, models.NoteFilter{UserID: userID, PinnedOnly: true}); err != nil {
		return models.Stats{}, fmt.Errorf("error counting pinned notes: %w", err)
	}

	return stats, nil
}

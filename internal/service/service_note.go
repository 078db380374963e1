package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

type noteService struct {
	noteRepository       store.NoteRepository
	folderRepository     store.FolderRepository
	attachmentRepository store.AttachmentRepository

	perPage int
	now     func() time.Time

	logger *logger.Logger
}

func NewNoteService(
	noteRepository store.NoteRepository,
	folderRepository store.FolderRepository,
	attachmentRepository store.AttachmentRepository,
	cfg config.Listing,
	logger *logger.Logger,
) NoteService {
	return &noteService{
		noteRepository:       noteRepository,
		folderRepository:     folderRepository,
		attachmentRepository: attachmentRepository,
		perPage:              cfg.PerPage,
		now:                  time.Now,
		logger:               logger,
	}
}

// ListNotes returns one page of the owner's active notes. Page defaults to
// 1 and PerPage to the configured size, capped at [config.MaxPerPage]. A page
// past the last one is empty.
func (s *noteService) ListNotes(ctx context.Context, filter models.NoteFilter) (models.Page[models.Note], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = s.perPage
	}
	if filter.PerPage > config.MaxPerPage {
		filter.PerPage = config.MaxPerPage
	}

	total, err := s.noteRepository.CountNotes(ctx, filter)
	if err != nil {
		return models.Page[models.Note]{}, fmt.Errorf("error counting notes: %w", err)
	}
	if int64(filter.Offset()) >= total {
		return models.NewPage[models.Note](nil, filter.Page, filter.PerPage, total), nil
	}

	notes, err := s.noteRepository.ListNotes(ctx, filter)
	if err != nil {
		return models.Page[models.Note]{}, fmt.Errorf("error listing notes: %w", err)
	}

	return models.NewPage(notes, filter.Page, filter.PerPage, total), nil
}

// CreateNote stores a new note for request.UserID. A folder that is missing
// or owned by someone else is reported on the folder_id field.
func (s *noteService) CreateNote(ctx context.Context, request models.CreateNoteRequest) (models.Note, error) {
	if request.Content == nil {
		return models.Note{}, validators.NewFieldError(validators.FieldContent, fmt.Sprintf(validators.MsgRequired, validators.FieldContent))
	}

	folder, err := s.ownedFolder(ctx, request.FolderID, request.UserID)
	if err != nil {
		return models.Note{}, err
	}

	now := s.now().UTC()
	note := models.Note{
		UserID:    request.UserID,
		Title:     request.Title,
		Content:   *request.Content,
		FolderID:  request.FolderID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if request.IsPinned != nil {
		note.IsPinned = *request.IsPinned
	}

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "noteService.CreateNote").
			Int64("user_id", request.UserID).
			Msg("error creating note")
		return models.Note{}, folderViolation(fmt.Errorf("error creating note: %w", err))
	}

	created.Folder = folder
	created.Attachments = []models.NoteAttachment{}

	return created, nil
}

// GetNote returns the note with its folder and attachments when userID owns
// it. Deleted notes are still returned to their owner.
func (s *noteService) GetNote(ctx context.Context, id, userID int64) (models.Note, error) {
	note, err := s.authorizedNote(ctx, id, userID)
	if err != nil {
		return models.Note{}, err
	}

	attachments, err := s.attachmentRepository.ListAttachments(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("error listing note attachments: %w", err)
	}
	note.Attachments = attachments

	return note, nil
}

// UpdateNote applies a partial update and returns the reloaded note.
func (s *noteService) UpdateNote(ctx context.Context, request models.UpdateNoteRequest) (models.Note, error) {
	if _, err := s.authorizedNote(ctx, request.ID, request.UserID); err != nil {
		return models.Note{}, err
	}

	if request.FolderID.Set {
		if _, err := s.ownedFolder(ctx, request.FolderID.Value, request.UserID); err != nil {
			return models.Note{}, err
		}
	}

	if !request.IsEmpty() {
		if _, err := s.noteRepository.UpdateNote(ctx, request, s.now().UTC()); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "noteService.UpdateNote").
				Int64("note_id", request.ID).
				Msg("error updating note")
			return models.Note{}, folderViolation(fmt.Errorf("error updating note: %w", err))
		}
	}

	return s.GetNote(ctx, request.ID, request.UserID)
}

// SoftDeleteNote hides the note from every listing. Deleting twice keeps the
// first deletion time.
func (s *noteService) SoftDeleteNote(ctx context.Context, id, userID int64) error {
	if _, err := s.authorizedNote(ctx, id, userID); err != nil {
		return err
	}

	if err := s.noteRepository.SoftDeleteNote(ctx, id, userID, s.now().UTC()); err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}

	return nil
}

func (s *noteService) authorizedNote(ctx context.Context, id, userID int64) (models.Note, error) {
	note, err := s.noteRepository.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, err
	}

	if err = authorize(note, userID); err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "noteService.authorizedNote").
			Int64("note_id", id).
			Int64("user_id", userID).
			Msg("access to foreign note denied")
		return models.Note{}, err
	}

	return note, nil
}

// ownedFolder loads the folder a note is being placed in. A nil id means no
// folder. Missing and foreign folders are both a validation error.
func (s *noteService) ownedFolder(ctx context.Context, folderID *int64, userID int64) (*models.Folder, error) {
	if folderID == nil {
		return nil, nil
	}

	folder, err := s.folderRepository.GetFolder(ctx, *folderID)
	if errors.Is(err, store.ErrFolderNotFound) {
		return nil, validators.NewFieldError(validators.FieldFolderID, validators.MsgInvalidFolder)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading folder: %w", err)
	}

	if authorize(folder, userID) != nil {
		return nil, validators.NewFieldError(validators.FieldFolderID, validators.MsgInvalidFolder)
	}

	return &folder, nil
}

// folderViolation turns a foreign key violation, which can only come from
// folder_id, into the folder validation error.
func folderViolation(err error) error {
	if errors.Is(err, store.ErrForeignKeyViolation) {
		return validators.NewFieldError(validators.FieldFolderID, validators.MsgInvalidFolder)
	}
	return err
}

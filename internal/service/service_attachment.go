package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

type attachmentService struct {
	noteRepository       store.NoteRepository
	attachmentRepository store.AttachmentRepository
	files                store.AttachmentFileStorage

	logger *logger.Logger
}

func NewAttachmentService(
	noteRepository store.NoteRepository,
	attachmentRepository store.AttachmentRepository,
	files store.AttachmentFileStorage,
	logger *logger.Logger,
) AttachmentService {
	return &attachmentService{
		noteRepository:       noteRepository,
		attachmentRepository: attachmentRepository,
		files:                files,
		logger:               logger,
	}
}

// OpenAttachment checks note ownership, then that the attachment belongs to
// the note, and only then opens the file.
func (s *attachmentService) OpenAttachment(ctx context.Context, noteID, attachmentID, userID int64) (models.NoteAttachment, io.ReadCloser, error) {
	note, err := s.noteRepository.GetNote(ctx, noteID)
	if err != nil {
		return models.NoteAttachment{}, nil, err
	}
	if err = authorize(note, userID); err != nil {
		return models.NoteAttachment{}, nil, err
	}

	attachment, err := s.attachmentRepository.GetAttachment(ctx, attachmentID)
	if err != nil {
		return models.NoteAttachment{}, nil, err
	}
	if attachment.NoteID != noteID {
		return models.NoteAttachment{}, nil, store.ErrAttachmentNotFound
	}

	file, err := s.files.Open(ctx, attachment.FilePath)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "attachmentService.OpenAttachment").
			Int64("attachment_id", attachmentID).
			Str("path", attachment.FilePath).
			Msg("error opening attachment file")
		return models.NoteAttachment{}, nil, fmt.Errorf("error opening attachment file: %w", err)
	}

	return attachment, file, nil
}

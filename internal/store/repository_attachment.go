package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// attachmentRepository reads and records note attachment metadata. The file
// bytes live in [AttachmentFileStorage].
type attachmentRepository struct {
	*DB
	logger *logger.Logger
}

func NewAttachmentRepository(db *DB, logger *logger.Logger) AttachmentRepository {
	logger.Debug().Msg("creating attachment repository")
	return &attachmentRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *attachmentRepository) CreateAttachment(ctx context.Context, attachment models.NoteAttachment) (models.NoteAttachment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAttachmentQuery(r.builder, attachment)
	if err != nil {
		return models.NoteAttachment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&attachment.ID); err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.CreateAttachment").
			Int64("note_id", attachment.NoteID).
			Msg("failed to insert attachment")
		return models.NoteAttachment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	return attachment, nil
}

func (r *attachmentRepository) GetAttachment(ctx context.Context, id int64) (models.NoteAttachment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAttachmentQuery(r.builder, id)
	if err != nil {
		return models.NoteAttachment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	attachment, err := scanAttachment(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.NoteAttachment{}, ErrAttachmentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.GetAttachment").
			Int64("attachment_id", id).
			Msg("failed to get attachment")
		return models.NoteAttachment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return attachment, nil
}

// ListAttachments returns the note's attachments in upload order.
func (r *attachmentRepository) ListAttachments(ctx context.Context, noteID int64) ([]models.NoteAttachment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAttachmentsQuery(r.builder, noteID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.ListAttachments").
			Int64("note_id", noteID).
			Msg("failed to execute query for listing attachments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	attachments := make([]models.NoteAttachment, 0, 4)
	for rows.Next() {
		attachment, scanErr := scanAttachment(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "attachmentRepository.ListAttachments").
				Int64("note_id", noteID).
				Msg("failed to scan attachment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		attachments = append(attachments, attachment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return attachments, nil
}

func scanAttachment(row rowScanner) (models.NoteAttachment, error) {
	var a models.NoteAttachment
	err := row.Scan(
		&a.ID,
		&a.NoteID,
		&a.Filename,
		&a.OriginalFilename,
		&a.MimeType,
		&a.FileSize,
		&a.FilePath,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	return a, err
}

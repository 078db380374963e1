package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// noteRepository executes note CRUD and listings against the "notes" table.
// Listings never return soft-deleted notes; GetNote does.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote inserts note and returns it with the server-assigned id.
// A folder_id that does not exist yields [ErrForeignKeyViolation].
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(r.builder, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&note.ID); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	return note, nil
}

// GetNote returns the note with its folder, deleted or not.
func (r *noteRepository) GetNote(ctx context.Context, id int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(r.builder, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Int64("note_id", id).
			Msg("failed to get note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// ListNotes returns one page of the owner's active notes matching filter,
// pinned first and then most recently updated.
func (r *noteRepository) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	query, args, err := buildListNotesQuery(r.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNotes(ctx, "noteRepository.ListNotes", filter.UserID, query, args)
}

func (r *noteRepository) CountNotes(ctx context.Context, filter models.NoteFilter) (int64, error) {
	query, args, err := buildCountNotesQuery(r.builder, filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.count(ctx, "noteRepository.CountNotes", query, args)
}

// ListRecentNotes returns up to limit active notes by recency alone.
func (r *noteRepository) ListRecentNotes(ctx context.Context, userID int64, limit int) ([]models.Note, error) {
	query, args, err := buildListRecentNotesQuery(r.builder, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNotes(ctx, "noteRepository.ListRecentNotes", userID, query, args)
}

// UpdateNote applies the fields present in update to the note owned by
// update.UserID and returns the stored result with its folder.
func (r *noteRepository) UpdateNote(ctx context.Context, update models.UpdateNoteRequest, updatedAt time.Time) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(r.builder, update, updatedAt)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Int64("note_id", update.ID).
			Int64("user_id", update.UserID).
			Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.Note{}, ErrNoteNotFound
	}

	return r.GetNote(ctx, update.ID)
}

// SoftDeleteNote marks the note deleted. Deleting an already deleted note is
// a no-op that keeps the original deleted_at.
func (r *noteRepository) SoftDeleteNote(ctx context.Context, id, userID int64, deletedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSoftDeleteNoteQuery(r.builder, id, userID, deletedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.SoftDeleteNote").
			Int64("note_id", id).
			Int64("user_id", userID).
			Msg("failed to soft delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *noteRepository) queryNotes(ctx context.Context, funcName string, userID int64, query string, args []any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("user_id", userID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Int64("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// scanNote reads a row selected with noteColumns. The folder is attached
// only when the join found one.
func scanNote(row rowScanner) (models.Note, error) {
	var (
		note        models.Note
		folderName  sql.NullString
		folderColor sql.NullString
	)

	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.FolderID,
		&note.IsPinned,
		&note.IsDeleted,
		&note.DeletedAt,
		&note.CreatedAt,
		&note.UpdatedAt,
		&folderName,
		&folderColor,
	)
	if err != nil {
		return models.Note{}, err
	}

	if note.FolderID != nil && folderName.Valid {
		note.Folder = &models.Folder{
			ID:     *note.FolderID,
			UserID: note.UserID,
			Name:   folderName.String,
			Color:  folderColor.String,
		}
	}

	return note, nil
}

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

// folderRepository executes folder CRUD against the "folders" table.
type folderRepository struct {
	*DB
	logger *logger.Logger
}

func NewFolderRepository(db *DB, logger *logger.Logger) FolderRepository {
	logger.Debug().Msg("creating folder repository")
	return &folderRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *folderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateFolderQuery(r.builder, folder)
	if err != nil {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&folder.ID); err != nil {
		log.Err(err).
			Str("func", "folderRepository.CreateFolder").
			Int64("user_id", folder.UserID).
			Msg("failed to insert folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	return folder, nil
}

func (r *folderRepository) GetFolder(ctx context.Context, id int64) (models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetFolderQuery(r.builder, id)
	if err != nil {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	folder, err := scanFolder(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, ErrFolderNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.GetFolder").
			Int64("folder_id", id).
			Msg("failed to get folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return folder, nil
}

// ListFolders returns the owner's folders ordered by sort_order then name,
// each carrying the count of its active notes.
func (r *folderRepository) ListFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFoldersQuery(r.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.ListFolders").
			Int64("user_id", userID).
			Msg("failed to execute query for listing folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	folders := make([]models.Folder, 0, 16)
	for rows.Next() {
		var folder models.Folder
		scanErr := rows.Scan(
			&folder.ID,
			&folder.UserID,
			&folder.Name,
			&folder.Color,
			&folder.SortOrder,
			&folder.CreatedAt,
			&folder.UpdatedAt,
			&folder.NotesCount,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "folderRepository.ListFolders").
				Int64("user_id", userID).
				Msg("failed to scan folder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		folders = append(folders, folder)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "folderRepository.ListFolders").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return folders, nil
}

func (r *folderRepository) CountFolders(ctx context.Context, userID int64) (int64, error) {
	query, args, err := buildCountFoldersQuery(r.builder, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.count(ctx, "folderRepository.CountFolders", query, args)
}

// UpdateFolder applies the non-nil fields of update to the folder owned by
// update.UserID and returns the stored result. [ErrFolderNotFound] is
// returned when no such folder exists.
func (r *folderRepository) UpdateFolder(ctx context.Context, update models.UpdateFolderRequest, updatedAt time.Time) (models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateFolderQuery(r.builder, update, updatedAt)
	if err != nil {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	folder, err := scanFolder(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, ErrFolderNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.UpdateFolder").
			Int64("folder_id", update.ID).
			Int64("user_id", update.UserID).
			Msg("failed to update folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return folder, nil
}

// DeleteFolder removes the folder and detaches its notes in one transaction.
// The notes themselves are kept, deleted or not.
func (r *folderRepository) DeleteFolder(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	detachQuery, detachArgs, err := buildDetachFolderNotesQuery(r.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteQuery, deleteArgs, err := buildDeleteFolderQuery(r.builder, id, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withTx(ctx, func(tx *sql.Tx) error {
		if _, execErr := tx.ExecContext(ctx, detachQuery, detachArgs...); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		result, execErr := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			return ErrFolderNotFound
		}

		return nil
	})
	if err != nil && !errors.Is(err, ErrFolderNotFound) {
		log.Err(err).
			Str("func", "folderRepository.DeleteFolder").
			Int64("folder_id", id).
			Int64("user_id", userID).
			Msg("failed to delete folder")
	}

	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFolder(row rowScanner) (models.Folder, error) {
	var folder models.Folder
	err := row.Scan(
		&folder.ID,
		&folder.UserID,
		&folder.Name,
		&folder.Color,
		&folder.SortOrder,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)

	return folder, err
}

// count runs a single-value COUNT query.
func (db *DB) count(ctx context.Context, funcName, query string, args []any) (int64, error) {
	var total int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to count rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

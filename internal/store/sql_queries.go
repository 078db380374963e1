package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes/models"
)

var (
	userColumns = []string{"id", "email", "name", "password", "created_at"}

	folderColumns = []string{"id", "user_id", "name", "color", "sort_order", "created_at", "updated_at"}

	// noteColumns select a note together with its folder's display fields;
	// the folder columns are NULL for notes outside any folder.
	noteColumns = []string{
		"n.id", "n.user_id", "n.title", "n.content", "n.folder_id",
		"n.is_pinned", "n.is_deleted", "n.deleted_at", "n.created_at", "n.updated_at",
		"f.name", "f.color",
	}

	attachmentColumns = []string{
		"id", "note_id", "filename", "original_filename", "mime_type",
		"file_size", "file_path", "created_at", "updated_at",
	}

	notesOrder  = []string{"n.is_pinned DESC", "n.updated_at DESC", "n.id DESC"}
	recentOrder = []string{"n.updated_at DESC", "n.id DESC"}
)

// likeEscaper escapes LIKE metacharacters so that a search term matches
// literally. The backslash is declared as ESCAPE character in the predicate.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchPattern builds the lower-cased "%term%" pattern for a search term.
func searchPattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.Insert("users").
		Columns("email", "name", "password", "created_at", "updated_at").
		Values(user.Email, user.Name, user.Password, user.CreatedAt, user.CreatedAt).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildFindUserByEmailQuery(sb sq.StatementBuilderType, email string) (string, []any, error) {
	return sb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

// ── folders ───────────────────────────────────────────────────────────────────

func buildCreateFolderQuery(sb sq.StatementBuilderType, folder models.Folder) (string, []any, error) {
	return sb.Insert("folders").
		Columns("user_id", "name", "color", "sort_order", "created_at", "updated_at").
		Values(folder.UserID, folder.Name, folder.Color, folder.SortOrder, folder.CreatedAt, folder.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildGetFolderQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return sb.Select(folderColumns...).
		From("folders").
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildListFoldersQuery selects the owner's folders with the number of their
// active notes, ordered for display.
func buildListFoldersQuery(sb sq.StatementBuilderType, userID int64) (string, []any, error) {
	columns := make([]string, 0, len(folderColumns)+1)
	for _, c := range folderColumns {
		columns = append(columns, "f."+c)
	}
	columns = append(columns, "COUNT(n.id) AS notes_count")

	return sb.Select(columns...).
		From("folders f").
		LeftJoin("notes n ON n.folder_id = f.id AND n.user_id = f.user_id AND n.is_deleted = ?", false).
		Where(sq.Eq{"f.user_id": userID}).
		GroupBy(columns[:len(columns)-1]...).
		OrderBy("f.sort_order ASC", "f.name ASC", "f.id ASC").
		ToSql()
}

func buildCountFoldersQuery(sb sq.StatementBuilderType, userID int64) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From("folders").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateFolderQuery sets only the non-nil fields of update and always
// bumps updated_at.
func buildUpdateFolderQuery(sb sq.StatementBuilderType, update models.UpdateFolderRequest, updatedAt time.Time) (string, []any, error) {
	query := sb.Update("folders").Set("updated_at", updatedAt)

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.Color != nil {
		query = query.Set("color", *update.Color)
	}
	if update.SortOrder != nil {
		query = query.Set("sort_order", *update.SortOrder)
	}

	return query.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING " + strings.Join(folderColumns, ", ")).
		ToSql()
}

// buildDetachFolderNotesQuery clears folder_id of every note in the folder,
// deleted ones included.
func buildDetachFolderNotesQuery(sb sq.StatementBuilderType, folderID int64) (string, []any, error) {
	return sb.Update("notes").
		Set("folder_id", nil).
		Where(sq.Eq{"folder_id": folderID}).
		ToSql()
}

func buildDeleteFolderQuery(sb sq.StatementBuilderType, id, userID int64) (string, []any, error) {
	return sb.Delete("folders").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// ── notes ─────────────────────────────────────────────────────────────────────

func buildCreateNoteQuery(sb sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return sb.Insert("notes").
		Columns("title", "content", "user_id", "folder_id", "is_pinned", "is_deleted", "created_at", "updated_at").
		Values(note.Title, note.Content, note.UserID, note.FolderID, note.IsPinned, false, note.CreatedAt, note.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func selectNotes(sb sq.StatementBuilderType) sq.SelectBuilder {
	return sb.Select(noteColumns...).
		From("notes n").
		LeftJoin("folders f ON f.id = n.folder_id")
}

func buildGetNoteQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return selectNotes(sb).
		Where(sq.Eq{"n.id": id}).
		ToSql()
}

// noteFilterPredicate is the WHERE clause shared by note listings and counts:
// the owner's active notes, optionally narrowed by search term, folder and
// pin state.
func noteFilterPredicate(filter models.NoteFilter) sq.And {
	predicate := sq.And{
		sq.Eq{"n.user_id": filter.UserID},
		sq.Eq{"n.is_deleted": false},
	}

	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		predicate = append(predicate, sq.Or{
			sq.Expr(`LOWER(COALESCE(n.title, '')) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(n.content) LIKE ? ESCAPE '\'`, pattern),
		})
	}

	if filter.FolderID != nil {
		predicate = append(predicate, sq.Eq{"n.folder_id": *filter.FolderID})
	}

	if filter.PinnedOnly {
		predicate = append(predicate, sq.Eq{"n.is_pinned": true})
	}

	return predicate
}

// buildListNotesQuery selects one page of filtered notes, pinned first and
// then by recency. A non-positive PerPage selects every matching note.
func buildListNotesQuery(sb sq.StatementBuilderType, filter models.NoteFilter) (string, []any, error) {
	query := selectNotes(sb).
		Where(noteFilterPredicate(filter)).
		OrderBy(notesOrder...)

	if filter.PerPage > 0 {
		query = query.Limit(uint64(filter.PerPage)).Offset(uint64(filter.Offset()))
	}

	return query.ToSql()
}

func buildCountNotesQuery(sb sq.StatementBuilderType, filter models.NoteFilter) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From("notes n").
		Where(noteFilterPredicate(filter)).
		ToSql()
}

func buildListRecentNotesQuery(sb sq.StatementBuilderType, userID int64, limit int) (string, []any, error) {
	if limit < 1 {
		return "", nil, fmt.Errorf("%w: limit must be positive, got %d", ErrBuildingSQLQuery, limit)
	}

	return selectNotes(sb).
		Where(noteFilterPredicate(models.NoteFilter{UserID: userID})).
		OrderBy(recentOrder...).
		Limit(uint64(limit)).
		ToSql()
}

// buildUpdateNoteQuery sets only the fields present in update and always
// bumps updated_at. An explicit null title clears it and an explicit null
// folder detaches the note.
func buildUpdateNoteQuery(sb sq.StatementBuilderType, update models.UpdateNoteRequest, updatedAt time.Time) (string, []any, error) {
	query := sb.Update("notes").Set("updated_at", updatedAt)

	if update.Title.Set {
		query = query.Set("title", update.Title.Value)
	}
	if update.Content != nil {
		query = query.Set("content", *update.Content)
	}
	if update.FolderID.Set {
		query = query.Set("folder_id", update.FolderID.Value)
	}
	if update.IsPinned != nil {
		query = query.Set("is_pinned", *update.IsPinned)
	}

	return query.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		ToSql()
}

// buildSoftDeleteNoteQuery flags the note as deleted. Already deleted notes
// are left untouched so that deleted_at keeps the first deletion time.
func buildSoftDeleteNoteQuery(sb sq.StatementBuilderType, id, userID int64, deletedAt time.Time) (string, []any, error) {
	return sb.Update("notes").
		Set("is_deleted", true).
		Set("deleted_at", deletedAt).
		Where(sq.Eq{"id": id, "user_id": userID, "is_deleted": false}).
		ToSql()
}

// ── attachments ───────────────────────────────────────────────────────────────

func buildCreateAttachmentQuery(sb sq.StatementBuilderType, a models.NoteAttachment) (string, []any, error) {
	return sb.Insert("note_attachments").
		Columns("note_id", "filename", "original_filename", "mime_type", "file_size", "file_path", "created_at", "updated_at").
		Values(a.NoteID, a.Filename, a.OriginalFilename, a.MimeType, a.FileSize, a.FilePath, a.CreatedAt, a.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildGetAttachmentQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return sb.Select(attachmentColumns...).
		From("note_attachments").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListAttachmentsQuery(sb sq.StatementBuilderType, noteID int64) (string, []any, error) {
	return sb.Select(attachmentColumns...).
		From("note_attachments").
		Where(sq.Eq{"note_id": noteID}).
		OrderBy("id ASC").
		ToSql()
}

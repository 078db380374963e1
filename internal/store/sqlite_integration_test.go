package store

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	ctx := context.Background()
	db, err := NewConnect(ctx, config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "notes.db"),
	}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	return newStorages(db, NewMemoryAttachmentFileStorage(logger.Nop()), logger.Nop())
}

type sqliteFixture struct {
	s      *Storages
	userID int64
	base   time.Time
}

func newSQLiteFixture(t *testing.T) *sqliteFixture {
	s := newSQLiteStorages(t)
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	user, err := s.UserRepository.CreateUser(context.Background(), models.User{
		Email: "test@example.com", Name: "Test", Password: "hash", CreatedAt: base,
	})
	require.NoError(t, err)

	return &sqliteFixture{s: s, userID: user.UserID, base: base}
}

func (f *sqliteFixture) folder(t *testing.T, name string, sortOrder int) models.Folder {
	folder, err := f.s.FolderRepository.CreateFolder(context.Background(), models.Folder{
		UserID: f.userID, Name: name, Color: models.DefaultFolderColor, SortOrder: sortOrder,
		CreatedAt: f.base, UpdatedAt: f.base,
	})
	require.NoError(t, err)
	return folder
}

func (f *sqliteFixture) note(t *testing.T, title, content string, folderID *int64, pinned bool, minute int) models.Note {
	at := f.base.Add(time.Duration(minute) * time.Minute)
	var titlePtr *string
	if title != "" {
		titlePtr = &title
	}

	note, err := f.s.NoteRepository.CreateNote(context.Background(), models.Note{
		UserID: f.userID, Title: titlePtr, Content: content, FolderID: folderID, IsPinned: pinned,
		CreatedAt: at, UpdatedAt: at,
	})
	require.NoError(t, err)
	return note
}

func noteIDs(notes []models.Note) []int64 {
	ids := make([]int64, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestSQLite_UserEmailIsUnique(t *testing.T) {
	f := newSQLiteFixture(t)

	_, err := f.s.UserRepository.CreateUser(context.Background(), models.User{
		Email: "test@example.com", Name: "Other", Password: "hash", CreatedAt: f.base,
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := f.s.UserRepository.FindUserByEmail(context.Background(), "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, f.userID, found.UserID)
}

func TestSQLite_NoteOrderingAndPagination(t *testing.T) {
	ctx := context.Background()
	f := newSQLiteFixture(t)

	oldPinned := f.note(t, "Old pinned", "a", nil, true, 1)
	newest := f.note(t, "Newest", "b", nil, false, 30)
	middle := f.note(t, "Middle", "c", nil, false, 20)
	deleted := f.note(t, "Deleted", "d", nil, false, 40)
	require.NoError(t, f.s.NoteRepository.SoftDeleteNote(ctx, deleted.ID, f.userID, f.base.Add(time.Hour)))

	all, err := f.s.NoteRepository.ListNotes(ctx, models.NoteFilter{UserID: f.userID, Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.Equal(t, []int64{oldPinned.ID, newest.ID, middle.ID}, noteIDs(all))

	page2, err := f.s.NoteRepository.ListNotes(ctx, models.NoteFilter{UserID: f.userID, Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{middle.ID}, noteIDs(page2))

	beyond, err := f.s.NoteRepository.ListNotes(ctx, models.NoteFilter{UserID: f.userID, Page: math.MaxInt / 10, PerPage: 20})
	require.NoError(t, err)
	assert.Empty(t, beyond)

	total, err := f.s.NoteRepository.CountNotes(ctx, models.NoteFilter{UserID: f.userID, Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	recent, err := f.s.NoteRepository.ListRecentNotes(ctx, f.userID, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{newest.ID, middle.ID}, noteIDs(recent))
}

func TestSQLite_Search(t *testing.T) {
	ctx := context.Background()
	f := newSQLiteFixture(t)

	byTitle := f.note(t, "Meeting NOTES", "x", nil, false, 1)
	byContent := f.note(t, "", "agenda for the meeting", nil, false, 2)
	f.note(t, "Groceries", "milk", nil, false, 3)
	percent := f.note(t, "Progress", "done 100% today", nil, false, 4)
	f.note(t, "Other", "done 1000 today", nil, false, 5)

	found, err := f.s.NoteRepository.ListNotes(ctx, models.NoteFilter{UserID: f.userID, Search: "meeting"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{byTitle.ID, byContent.ID}, noteIDs(found))

	found, err = f.s.NoteRepository.ListNotes(ctx, models.NoteFilter{UserID: f.userID, Search: "100%"})
	require.NoError(t, err)
	assert.Equal(t, []int64{percent.ID}, noteIDs(found))
}

func TestSQLite_SearchFoldsNonASCII(t *testing.T) {
	ctx := context.Background()
	f := newSQLiteFixture(t)

	summer := f.note(t, "ÉTÉ Plans", "x", nil, false, 1)
	city := f.note(t, "", "Trip to ZÜRICH", nil, false, 2)
	f.note(t, "Winter", "snow", nil, false, 3)

	for _, term := range []string{"été", "ÉTÉ", "Été plans"} {
		found, err := f.s.NoteRepository.ListNotes(ctx, models.NoteFilter{UserID: f.userID, Search: term})
		require.NoError(t, err)
		assert.Equal(t, []int64{summer.ID}, noteIDs(found), term)
	}

	found, err := f.s.NoteRepository.ListNotes(ctx, models.NoteFilter{UserID: f.userID, Search: "zürich"})
	require.NoError(t, err)
	assert.Equal(t, []int64{city.ID}, noteIDs(found))
}

func TestSQLite_SearchKeepsSurroundingSpaces(t *testing.T) {
	ctx := context.Background()
	f := newSQLiteFixture(t)

	spaced := f.note(t, "", "agenda for the meeting", nil, false, 1)
	f.note(t, "", "premeeting checklist", nil, false, 2)

	found, err := f.s.NoteRepository.ListNotes(ctx, models.NoteFilter{UserID: f.userID, Search: " meeting"})
	require.NoError(t, err)
	assert.Equal(t, []int64{spaced.ID}, noteIDs(found))
}

func TestSQLite_FolderCountsAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newSQLiteFixture(t)

	work := f.folder(t, "Work", 2)
	ideas := f.folder(t, "Ideas", 1)
	inWork := f.note(t, "Plan", "x", &work.ID, false, 1)
	gone := f.note(t, "Old", "y", &work.ID, false, 2)
	require.NoError(t, f.s.NoteRepository.SoftDeleteNote(ctx, gone.ID, f.userID, f.base))

	folders, err := f.s.FolderRepository.ListFolders(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, ideas.ID, folders[0].ID)
	assert.Zero(t, folders[0].NotesCount)
	assert.Equal(t, int64(1), folders[1].NotesCount)

	inFolder, err := f.s.NoteRepository.ListNotes(ctx, models.NoteFilter{UserID: f.userID, FolderID: &work.ID})
	require.NoError(t, err)
	require.Len(t, inFolder, 1)
	require.NotNil(t, inFolder[0].Folder)
	assert.Equal(t, "Work", inFolder[0].Folder.Name)

	assert.ErrorIs(t, f.s.FolderRepository.DeleteFolder(ctx, work.ID, f.userID+1), ErrFolderNotFound)
	still, err := f.s.NoteRepository.GetNote(ctx, inWork.ID)
	require.NoError(t, err)
	assert.Equal(t, &work.ID, still.FolderID)

	require.NoError(t, f.s.FolderRepository.DeleteFolder(ctx, work.ID, f.userID))

	_, err = f.s.FolderRepository.GetFolder(ctx, work.ID)
	assert.ErrorIs(t, err, ErrFolderNotFound)

	for _, id := range []int64{inWork.ID, gone.ID} {
		note, getErr := f.s.NoteRepository.GetNote(ctx, id)
		require.NoError(t, getErr)
		assert.Nil(t, note.FolderID)
		assert.Nil(t, note.Folder)
	}

	count, err := f.s.FolderRepository.CountFolders(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSQLite_UpdateNote(t *testing.T) {
	ctx := context.Background()
	f := newSQLiteFixture(t)

	work := f.folder(t, "Work", 1)
	note := f.note(t, "Plan", "x", &work.ID, false, 1)
	later := f.base.Add(time.Hour)

	updated, err := f.s.NoteRepository.UpdateNote(ctx, models.UpdateNoteRequest{
		ID: note.ID, UserID: f.userID, IsPinned: ptr(true), FolderID: models.OptionalInt64{Set: true},
	}, later)
	require.NoError(t, err)
	assert.True(t, updated.IsPinned)
	assert.Nil(t, updated.FolderID)
	assert.Equal(t, "Plan", updated.DisplayTitle())
	assert.True(t, updated.UpdatedAt.Equal(later))

	_, err = f.s.NoteRepository.UpdateNote(ctx, models.UpdateNoteRequest{
		ID: note.ID, UserID: f.userID, FolderID: models.OptionalInt64{Set: true, Value: ptr(int64(999))},
	}, later)
	assert.ErrorIs(t, err, ErrForeignKeyViolation)

	_, err = f.s.NoteRepository.UpdateNote(ctx, models.UpdateNoteRequest{
		ID: note.ID, UserID: f.userID + 1, Title: models.Some("stolen"),
	}, later)
	assert.ErrorIs(t, err, ErrNoteNotFound)

	cleared, err := f.s.NoteRepository.UpdateNote(ctx, models.UpdateNoteRequest{
		ID: note.ID, UserID: f.userID, Title: models.Null[string](),
	}, later)
	require.NoError(t, err)
	assert.Nil(t, cleared.Title)
	assert.Equal(t, models.UntitledNote, cleared.DisplayTitle())
}

func TestSQLite_SoftDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newSQLiteFixture(t)

	note := f.note(t, "Plan", "x", nil, false, 1)
	first := f.base.Add(time.Hour)

	require.NoError(t, f.s.NoteRepository.SoftDeleteNote(ctx, note.ID, f.userID, first))
	require.NoError(t, f.s.NoteRepository.SoftDeleteNote(ctx, note.ID, f.userID, first.Add(time.Hour)))

	got, err := f.s.NoteRepository.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
	require.NotNil(t, got.DeletedAt)
	assert.True(t, got.DeletedAt.Equal(first))
}

func TestSQLite_Attachments(t *testing.T) {
	ctx := context.Background()
	f := newSQLiteFixture(t)

	note := f.note(t, "Plan", "x", nil, false, 1)
	for _, name := range []string{"a.png", "b.pdf"} {
		_, err := f.s.AttachmentRepository.CreateAttachment(ctx, models.NoteAttachment{
			NoteID: note.ID, Filename: name, OriginalFilename: name, MimeType: "application/octet-stream",
			FileSize: 1, FilePath: models.AttachmentsPrefix + "/" + name, CreatedAt: f.base, UpdatedAt: f.base,
		})
		require.NoError(t, err)
	}

	list, err := f.s.AttachmentRepository.ListAttachments(ctx, note.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a.png", list[0].Filename)

	got, err := f.s.AttachmentRepository.GetAttachment(ctx, list[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "b.pdf", got.OriginalFilename)

	_, err = f.s.AttachmentRepository.CreateAttachment(ctx, models.NoteAttachment{NoteID: 999, Filename: "x", CreatedAt: f.base, UpdatedAt: f.base})
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
}

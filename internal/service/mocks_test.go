package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/MKhiriev/go-notes/models"
)

var errStorage = errors.New("storage error")

func ptr[T any](v T) *T { return &v }

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, email string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, email)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.FolderRepository
// ─────────────────────────────────────────────

type mockFolderRepository struct {
	createFn func(ctx context.Context, folder models.Folder) (models.Folder, error)
	getFn    func(ctx context.Context, id int64) (models.Folder, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Folder, error)
	countFn  func(ctx context.Context, userID int64) (int64, error)
	updateFn func(ctx context.Context, update models.UpdateFolderRequest, updatedAt time.Time) (models.Folder, error)
	deleteFn func(ctx context.Context, id, userID int64) error
}

func (m *mockFolderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	if m.createFn != nil {
		return m.createFn(ctx, folder)
	}
	return folder, nil
}

func (m *mockFolderRepository) GetFolder(ctx context.Context, id int64) (models.Folder, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Folder{}, nil
}

func (m *mockFolderRepository) ListFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return []models.Folder{}, nil
}

func (m *mockFolderRepository) CountFolders(ctx context.Context, userID int64) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockFolderRepository) UpdateFolder(ctx context.Context, update models.UpdateFolderRequest, updatedAt time.Time) (models.Folder, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update, updatedAt)
	}
	return models.Folder{}, nil
}

func (m *mockFolderRepository) DeleteFolder(ctx context.Context, id, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.NoteRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	createFn     func(ctx context.Context, note models.Note) (models.Note, error)
	getFn        func(ctx context.Context, id int64) (models.Note, error)
	listFn       func(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	countFn      func(ctx context.Context, filter models.NoteFilter) (int64, error)
	recentFn     func(ctx context.Context, userID int64, limit int) ([]models.Note, error)
	updateFn     func(ctx context.Context, update models.UpdateNoteRequest, updatedAt time.Time) (models.Note, error)
	softDeleteFn func(ctx context.Context, id, userID int64, deletedAt time.Time) error
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) GetNote(ctx context.Context, id int64) (models.Note, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []models.Note{}, nil
}

func (m *mockNoteRepository) CountNotes(ctx context.Context, filter models.NoteFilter) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, filter)
	}
	return 0, nil
}

func (m *mockNoteRepository) ListRecentNotes(ctx context.Context, userID int64, limit int) ([]models.Note, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx, userID, limit)
	}
	return []models.Note{}, nil
}

func (m *mockNoteRepository) UpdateNote(ctx context.Context, update models.UpdateNoteRequest, updatedAt time.Time) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update, updatedAt)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) SoftDeleteNote(ctx context.Context, id, userID int64, deletedAt time.Time) error {
	if m.softDeleteFn != nil {
		return m.softDeleteFn(ctx, id, userID, deletedAt)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.AttachmentRepository, store.AttachmentFileStorage
// ─────────────────────────────────────────────

type mockAttachmentRepository struct {
	getFn  func(ctx context.Context, id int64) (models.NoteAttachment, error)
	listFn func(ctx context.Context, noteID int64) ([]models.NoteAttachment, error)
}

func (m *mockAttachmentRepository) CreateAttachment(ctx context.Context, a models.NoteAttachment) (models.NoteAttachment, error) {
	return a, nil
}

func (m *mockAttachmentRepository) GetAttachment(ctx context.Context, id int64) (models.NoteAttachment, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.NoteAttachment{}, nil
}

func (m *mockAttachmentRepository) ListAttachments(ctx context.Context, noteID int64) ([]models.NoteAttachment, error) {
	if m.listFn != nil {
		return m.listFn(ctx, noteID)
	}
	return []models.NoteAttachment{}, nil
}

type mockFileStorage struct {
	openFn func(ctx context.Context, path string) (io.ReadCloser, error)
}

func (m *mockFileStorage) Save(ctx context.Context, path string, r io.Reader) (int64, error) {
	return io.Copy(io.Discard, r)
}

func (m *mockFileStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if m.openFn != nil {
		return m.openFn(ctx, path)
	}
	return io.NopCloser(nil), nil
}

func (m *mockFileStorage) Exists(ctx context.Context, path string) (bool, error) {
	return true, nil
}

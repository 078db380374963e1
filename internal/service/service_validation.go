package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

// FolderValidationService validates folder payloads before delegating to the
// wrapped FolderService. Reads pass straight through.
type FolderValidationService struct {
	inner     FolderService
	validator validators.Validator
}

func NewFolderValidationService() FolderServiceWrapper {
	return &FolderValidationService{
		validator: validators.NewFolderValidator(),
	}
}

func (v *FolderValidationService) ListFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	return v.inner.ListFolders(ctx, userID)
}

func (v *FolderValidationService) CreateFolder(ctx context.Context, request models.CreateFolderRequest) (models.Folder, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Folder{}, fmt.Errorf("error during folder validation before saving: %w", err)
	}

	return v.inner.CreateFolder(ctx, request)
}

func (v *FolderValidationService) GetFolder(ctx context.Context, id, userID int64) (models.Folder, error) {
	return v.inner.GetFolder(ctx, id, userID)
}

func (v *FolderValidationService) GetFolderView(ctx context.Context, id, userID int64) (models.FolderView, error) {
	return v.inner.GetFolderView(ctx, id, userID)
}

func (v *FolderValidationService) UpdateFolder(ctx context.Context, request models.UpdateFolderRequest) (models.Folder, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Folder{}, fmt.Errorf("error during folder validation before updating: %w", err)
	}

	return v.inner.UpdateFolder(ctx, request)
}

func (v *FolderValidationService) DeleteFolder(ctx context.Context, id, userID int64) error {
	return v.inner.DeleteFolder(ctx, id, userID)
}

func (v *FolderValidationService) Wrap(wrapped FolderService) FolderService {
	v.inner = wrapped
	return v
}

// NoteValidationService validates note payloads before delegating to the
// wrapped NoteService.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) ListNotes(ctx context.Context, filter models.NoteFilter) (models.Page[models.Note], error) {
	return v.inner.ListNotes(ctx, filter)
}

func (v *NoteValidationService) CreateNote(ctx context.Context, request models.CreateNoteRequest) (models.Note, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Note{}, fmt.Errorf("error during note validation before saving: %w", err)
	}

	return v.inner.CreateNote(ctx, request)
}

func (v *NoteValidationService) GetNote(ctx context.Context, id, userID int64) (models.Note, error) {
	return v.inner.GetNote(ctx, id, userID)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, request models.UpdateNoteRequest) (models.Note, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Note{}, fmt.Errorf("error during note validation before updating: %w", err)
	}

	return v.inner.UpdateNote(ctx, request)
}

func (v *NoteValidationService) SoftDeleteNote(ctx context.Context, id, userID int64) error {
	return v.inner.SoftDeleteNote(ctx, id, userID)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}

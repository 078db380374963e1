package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/models"
)

// NoteValidator validates note create and update requests. Content is
// required on create but may be empty; HTML is stored as given.
type NoteValidator struct{}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateNoteRequest:
		return v.validateCreate(value, fields...)
	case *models.CreateNoteRequest:
		return v.validateCreate(*value, fields...)

	case models.UpdateNoteRequest:
		return v.validateUpdate(value, fields...)
	case *models.UpdateNoteRequest:
		return v.validateUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateCreate(request models.CreateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldFolderID}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title != nil {
				checkLength(errs, FieldTitle, *request.Title, MaxStringLength)
			}
		case FieldContent:
			if request.Content == nil {
				errs.Add(FieldContent, fmt.Sprintf(MsgRequired, FieldContent))
			}
		case FieldFolderID:
			if request.FolderID != nil && *request.FolderID <= 0 {
				errs.Add(FieldFolderID, MsgInvalidFolder)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

func (v *NoteValidator) validateUpdate(request models.UpdateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldFolderID}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title.Value != nil {
				checkLength(errs, FieldTitle, *request.Title.Value, MaxStringLength)
			}
		case FieldContent:
			// any present value, empty included
		case FieldFolderID:
			if request.FolderID.Value != nil && *request.FolderID.Value <= 0 {
				errs.Add(FieldFolderID, MsgInvalidFolder)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

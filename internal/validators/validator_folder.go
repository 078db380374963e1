package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/models"
)

// FolderValidator validates folder create and update requests.
type FolderValidator struct{}

func NewFolderValidator() Validator {
	return &FolderValidator{}
}

// Validate accepts CreateFolderRequest and UpdateFolderRequest, by value or
// pointer. All failing fields are reported at once.
func (v *FolderValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateFolderRequest:
		return v.validateCreate(value, fields...)
	case *models.CreateFolderRequest:
		return v.validateCreate(*value, fields...)

	case models.UpdateFolderRequest:
		return v.validateUpdate(value, fields...)
	case *models.UpdateFolderRequest:
		return v.validateUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FolderValidator) validateCreate(request models.CreateFolderRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldColor, FieldSortOrder}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldName:
			checkRequiredString(errs, FieldName, request.Name, MaxStringLength)
		case FieldColor:
			// empty means the default color
			if request.Color != "" && !IsValidColor(request.Color) {
				errs.Add(FieldColor, MsgInvalidColor)
			}
		case FieldSortOrder:
			if request.SortOrder != nil && *request.SortOrder < 0 {
				errs.Add(FieldSortOrder, fmt.Sprintf(MsgNegative, "sort order"))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

func (v *FolderValidator) validateUpdate(request models.UpdateFolderRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldColor, FieldSortOrder}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldName:
			if request.Name != nil {
				checkRequiredString(errs, FieldName, *request.Name, MaxStringLength)
			}
		case FieldColor:
			if request.Color != nil && !IsValidColor(*request.Color) {
				errs.Add(FieldColor, MsgInvalidColor)
			}
		case FieldSortOrder:
			if request.SortOrder != nil && *request.SortOrder < 0 {
				errs.Add(FieldSortOrder, fmt.Sprintf(MsgNegative, "sort order"))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every [FieldErrors] value.
	ErrValidation = errors.New("validation failed")
)

// Messages reported per field.
const (
	MsgRequired      = "The %s field is required."
	MsgTooLong       = "The %s may not be greater than %d characters."
	MsgInvalidColor  = "The color must be one of the palette colors or a #RRGGBB hex code."
	MsgInvalidFolder = "The selected folder is invalid."
	MsgNegative      = "The %s must be at least 0."
)

// FieldErrors maps a request field to its first failed rule message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}

	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// Add records msg for field unless the field already failed.
func (e FieldErrors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Err returns e as an error, or nil when no field failed.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// NewFieldError is a FieldErrors with a single entry.
func NewFieldError(field, msg string) FieldErrors {
	return FieldErrors{field: msg}
}

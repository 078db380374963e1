package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes/models"
)

// Field names as they appear in request bodies and in [FieldErrors].
const (
	FieldName      = "name"
	FieldColor     = "color"
	FieldSortOrder = "sort_order"
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldFolderID  = "folder_id"
	FieldIsPinned  = "is_pinned"
)

// MaxStringLength bounds folder names and note titles.
const MaxStringLength = 255

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsValidColor reports whether color is a palette color or a #RRGGBB code.
func IsValidColor(color string) bool {
	for _, c := range models.FolderPalette {
		if strings.EqualFold(c, color) {
			return true
		}
	}

	return hexColor.MatchString(color)
}

func checkRequiredString(errs FieldErrors, field, value string, max int) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, fmt.Sprintf(MsgRequired, field))
		return
	}
	checkLength(errs, field, value, max)
}

func checkLength(errs FieldErrors, field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		errs.Add(field, fmt.Sprintf(MsgTooLong, field, max))
	}
}

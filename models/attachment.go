package models

import (
	"mime"
	"strconv"
	"strings"
	"time"
)

// AttachmentsPrefix is the storage-relative directory attachment files live in.
const AttachmentsPrefix = "attachments"

// NoteAttachment is a file attached to a note. Its lifetime is bound to the
// note's row.
type NoteAttachment struct {
	ID               int64     `json:"id"`
	NoteID           int64     `json:"note_id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	MimeType         string    `json:"mime_type"`
	FileSize         int64     `json:"file_size"`
	FilePath         string    `json:"file_path"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the NoteAttachment model.
func (a NoteAttachment) TableName() string {
	return "note_attachments"
}

// IsImage reports whether the attachment can be shown inline. SVG is
// excluded since it can carry script.
func (a NoteAttachment) IsImage() bool {
	mediaType, _, err := mime.ParseMediaType(a.MimeType)
	if err != nil {
		return false
	}

	return strings.HasPrefix(mediaType, "image/") && mediaType != "image/svg+xml"
}

// URL returns the download path of the attachment.
func (a NoteAttachment) URL() string {
	return "/notes/" + strconv.FormatInt(a.NoteID, 10) + "/attachments/" + strconv.FormatInt(a.ID, 10)
}

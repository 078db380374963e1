package models

import (
	"encoding/json"
	"math"
	"time"
)

// UntitledNote is displayed in place of an empty note title.
const UntitledNote = "Untitled"

// Note is a user's rich-text note. Deleted notes stay in storage with
// IsDeleted set and are hidden from every listing.
type Note struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"user_id"`
	Title    *string `json:"title"`
	Content  string  `json:"content"`
	FolderID *int64  `json:"folder_id"`

	IsPinned  bool       `json:"is_pinned"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Folder is loaded with the note when FolderID is set.
	Folder *Folder `json:"folder,omitempty"`

	// Attachments is loaded on single-note fetches.
	Attachments []NoteAttachment `json:"attachments,omitempty"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// OwnerID implements the ownership check used by the service layer.
func (n Note) OwnerID() int64 {
	return n.UserID
}

// DisplayTitle returns the title, or UntitledNote when it is absent or empty.
func (n Note) DisplayTitle() string {
	if n.Title == nil || *n.Title == "" {
		return UntitledNote
	}

	return *n.Title
}

// CreateNoteRequest carries the fields accepted when creating a note.
// Content is a pointer so that an absent field can be told apart from an
// empty one.
type CreateNoteRequest struct {
	UserID   int64   `json:"-"`
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content"`
	FolderID *int64  `json:"folder_id,omitempty"`
	IsPinned *bool   `json:"is_pinned,omitempty"`
}

// UpdateNoteRequest is a partial update: nil fields are left untouched.
// Title and FolderID distinguish "absent" from an explicit null, which clears
// the title or detaches the note from its folder.
type UpdateNoteRequest struct {
	ID       int64          `json:"-"`
	UserID   int64          `json:"-"`
	Title    OptionalString `json:"title,omitzero"`
	Content  *string        `json:"content,omitempty"`
	FolderID OptionalInt64  `json:"folder_id,omitzero"`
	IsPinned *bool          `json:"is_pinned,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (r UpdateNoteRequest) IsEmpty() bool {
	return !r.Title.Set && r.Content == nil && !r.FolderID.Set && r.IsPinned == nil
}

// Optional is a nullable value that remembers whether it was present in the
// decoded JSON at all.
type Optional[T any] struct {
	Set   bool
	Value *T
}

type (
	OptionalInt64  = Optional[int64]
	OptionalString = Optional[string]
)

// Some returns a present, non-null value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a present, explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only invoked when the key is present, which is what Set
// records. A JSON null leaves Value nil.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v

	return nil
}

// IsZero reports whether the value was absent, so omitzero drops it while an
// explicit null is still sent.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

// MarshalJSON writes the value or null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}

	return json.Marshal(*o.Value)
}

// NoteFilter selects the owner's active notes for a listing.
type NoteFilter struct {
	UserID     int64
	Search     string
	FolderID   *int64
	PinnedOnly bool
	Page       int
	PerPage    int
}

// Offset returns the number of rows skipped before the current page. It
// saturates at math.MaxInt instead of overflowing.
func (f NoteFilter) Offset() int {
	if f.Page < 1 || f.PerPage < 1 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.PerPage {
		return math.MaxInt
	}

	return (f.Page - 1) * f.PerPage
}

// Filters is echoed back to the client with every filtered listing.
type Filters struct {
	Search string `json:"search"`
	Folder *int64 `json:"folder"`
}

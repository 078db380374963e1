package models

import "time"

// DefaultFolderColor is assigned to folders created without a color.
const DefaultFolderColor = "#007AFF"

// FolderPalette lists the colors offered by the folder forms.
var FolderPalette = []string{
	"#007AFF", // Blue
	"#34C759", // Green
	"#FF9500", // Orange
	"#FF3B30", // Red
	"#AF52DE", // Purple
	"#FF2D92", // Pink
	"#A2845E", // Brown
	"#8E8E93", // Gray
}

// Folder is a named, colored grouping of a user's notes.
type Folder struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`

	// NotesCount is the number of the owner's active notes in the folder.
	// Derived on listings, never stored.
	NotesCount int64 `json:"notes_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Folder model.
func (f Folder) TableName() string {
	return "folders"
}

// OwnerID implements the ownership check used by the service layer.
func (f Folder) OwnerID() int64 {
	return f.UserID
}

// CreateFolderRequest carries the fields accepted when creating a folder.
type CreateFolderRequest struct {
	UserID    int64  `json:"-"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	SortOrder *int   `json:"sort_order,omitempty"`
}

// UpdateFolderRequest is a partial update: nil fields are left untouched.
type UpdateFolderRequest struct {
	ID        int64   `json:"-"`
	UserID    int64   `json:"-"`
	Name      *string `json:"name,omitempty"`
	Color     *string `json:"color,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (r UpdateFolderRequest) IsEmpty() bool {
	return r.Name == nil && r.Color == nil && r.SortOrder == nil
}

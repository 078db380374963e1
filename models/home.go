package models

// HomeRequest carries the filters of the home page.
type HomeRequest struct {
	UserID   int64
	Search   string
	FolderID *int64
}

// Stats summarizes the owner's active data.
type Stats struct {
	TotalNotes   int64 `json:"total_notes"`
	TotalFolders int64 `json:"total_folders"`
	PinnedNotes  int64 `json:"pinned_notes"`
}

// HomeView aggregates everything shown on the authenticated home page.
type HomeView struct {
	Notes       []Note   `json:"notes"`
	Folders     []Folder `json:"folders"`
	RecentNotes []Note   `json:"recent_notes"`
	Filters     Filters  `json:"filters"`
	Stats       Stats    `json:"stats"`
}

// FolderView is a folder together with its active notes.
type FolderView struct {
	Folder Folder `json:"folder"`
	Notes  []Note `json:"notes"`
}

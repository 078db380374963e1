package models

// Page is one page of an ordered listing together with the metadata needed
// to navigate it.
type Page[T any] struct {
	Data        []T   `json:"data"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// NewPage computes LastPage from total and perPage. An empty listing still
// has one (empty) page.
func NewPage[T any](data []T, page, perPage int, total int64) Page[T] {
	if data == nil {
		data = []T{}
	}

	lastPage := 1
	if perPage > 0 && total > 0 {
		lastPage = int((total + int64(perPage) - 1) / int64(perPage))
	}

	return Page[T]{
		Data:        data,
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
}

// View is a rendered page: the client-side component name and its props.
type View struct {
	Component string `json:"component"`
	Props     any    `json:"props"`
	URL       string `json:"url"`
}

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

// Page component names.
const (
	pageWelcome       = "welcome"
	pageHome          = "home"
	pageNotesIndex    = "notes/index"
	pageNotesCreate   = "notes/create"
	pageNotesShow     = "notes/show"
	pageNotesEdit     = "notes/edit"
	pageFoldersIndex  = "folders/index"
	pageFoldersCreate = "folders/create"
	pageFoldersShow   = "folders/show"
	pageFoldersEdit   = "folders/edit"
)

// render writes the page payload for component with status 200.
func render(w http.ResponseWriter, r *http.Request, component string, props any) {
	view := models.View{
		Component: component,
		Props:     props,
		URL:       r.URL.RequestURI(),
	}

	if _, err := utils.WriteJSON(w, view, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("component", component).Msg("error rendering page")
	}
}

// redirect answers with 303 See Other so that the client follows up with GET.
func redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func notePath(id int64) string {
	return "/notes/" + strconv.FormatInt(id, 10)
}

func folderPath(id int64) string {
	return "/folders/" + strconv.FormatInt(id, 10)
}

// pathID parses a positive integer route parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidPathParam
	}
	return id, nil
}

// routeTarget resolves the requester and the {id} route parameter, writing
// the error response itself when either is missing.
func routeTarget(w http.ResponseWriter, r *http.Request) (userID, id int64, ok bool) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, err)
		return 0, 0, false
	}

	id, err = pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return 0, 0, false
	}

	return userID, id, true
}

// queryID parses an optional positive id from the query string. Anything
// else is treated as absent.
func queryID(r *http.Request, name string) *int64 {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return nil
	}
	return &id
}

// queryInt parses an optional integer; invalid values yield 0.
func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return n
}

// filtersFromQuery reads the search and folder filters shared by the home
// page and the notes index. The search term is used as sent, spaces included.
func filtersFromQuery(r *http.Request) models.Filters {
	return models.Filters{
		Search: r.URL.Query().Get("search"),
		Folder: queryID(r, "folder"),
	}
}

// decode reads a JSON body into dst.
func decode(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

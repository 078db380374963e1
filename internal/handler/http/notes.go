package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes/models"
)

type notesIndexProps struct {
	Notes   models.Page[models.Note] `json:"notes"`
	Folders []models.Folder          `json:"folders"`
	Filters models.Filters           `json:"filters"`
}

type noteFormProps struct {
	Folders        []models.Folder `json:"folders"`
	SelectedFolder *int64          `json:"selected_folder"`
}

type noteProps struct {
	Note    models.Note     `json:"note"`
	Folders []models.Folder `json:"folders"`
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	filters := filtersFromQuery(r)

	notes, err := h.services.NoteService.ListNotes(ctx, models.NoteFilter{
		UserID:   userID,
		Search:   filters.Search,
		FolderID: filters.Folder,
		Page:     queryInt(r, "page"),
		PerPage:  queryInt(r, "per_page"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	folders, err := h.services.FolderService.ListFolders(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render(w, r, pageNotesIndex, notesIndexProps{Notes: notes, Folders: folders, Filters: filters})
}

// createNotePage renders the note form, preselecting the folder from the
// folder_id query parameter.
func (h *Handler) createNotePage(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	folders, err := h.services.FolderService.ListFolders(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render(w, r, pageNotesCreate, noteFormProps{Folders: folders, SelectedFolder: queryID(r, "folder_id")})
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CreateNoteRequest
	if err = decode(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	request.UserID = userID

	note, err := h.services.NoteService.CreateNote(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	redirect(w, r, notePath(note.ID))
}

func (h *Handler) showNote(w http.ResponseWriter, r *http.Request) {
	h.renderNote(w, r, pageNotesShow)
}

func (h *Handler) editNotePage(w http.ResponseWriter, r *http.Request) {
	h.renderNote(w, r, pageNotesEdit)
}

func (h *Handler) renderNote(w http.ResponseWriter, r *http.Request, component string) {
	userID, id, ok := routeTarget(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.renderNoteWithFolders(w, r, component, note, userID)
}

func (h *Handler) renderNoteWithFolders(w http.ResponseWriter, r *http.Request, component string, note models.Note, userID int64) {
	folders, err := h.services.FolderService.ListFolders(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render(w, r, component, noteProps{Note: note, Folders: folders})
}

// updateNote answers with the updated note page instead of a redirect.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := routeTarget(w, r)
	if !ok {
		return
	}

	var request models.UpdateNoteRequest
	if err := decode(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	request.ID = id
	request.UserID = userID

	note, err := h.services.NoteService.UpdateNote(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.renderNoteWithFolders(w, r, pageNotesShow, note, userID)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := routeTarget(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.SoftDeleteNote(r.Context(), id, userID); err != nil {
		writeError(w, r, err)
		return
	}

	redirect(w, r, "/notes")
}

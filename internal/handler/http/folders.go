package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes/models"
)

type foldersIndexProps struct {
	Folders []models.Folder `json:"folders"`
}

type folderFormProps struct {
	Palette      []string `json:"palette"`
	DefaultColor string   `json:"default_color"`
}

type folderProps struct {
	Folder  models.Folder `json:"folder"`
	Palette []string      `json:"palette"`
}

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
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

	render(w, r, pageFoldersIndex, foldersIndexProps{Folders: folders})
}

func (h *Handler) createFolderPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, pageFoldersCreate, folderFormProps{Palette: models.FolderPalette, DefaultColor: models.DefaultFolderColor})
}

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CreateFolderRequest
	if err = decode(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	request.UserID = userID

	folder, err := h.services.FolderService.CreateFolder(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	redirect(w, r, folderPath(folder.ID))
}

// showFolder renders the folder together with its active notes.
func (h *Handler) showFolder(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := routeTarget(w, r)
	if !ok {
		return
	}

	view, err := h.services.FolderService.GetFolderView(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render(w, r, pageFoldersShow, view)
}

func (h *Handler) editFolderPage(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := routeTarget(w, r)
	if !ok {
		return
	}

	folder, err := h.services.FolderService.GetFolder(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render(w, r, pageFoldersEdit, folderProps{Folder: folder, Palette: models.FolderPalette})
}

func (h *Handler) updateFolder(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := routeTarget(w, r)
	if !ok {
		return
	}

	var request models.UpdateFolderRequest
	if err := decode(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	request.ID = id
	request.UserID = userID

	if _, err := h.services.FolderService.UpdateFolder(r.Context(), request); err != nil {
		writeError(w, r, err)
		return
	}

	redirect(w, r, folderPath(id))
}

// deleteFolder leaves the folder's notes in place, detached.
func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := routeTarget(w, r)
	if !ok {
		return
	}

	if err := h.services.FolderService.DeleteFolder(r.Context(), id, userID); err != nil {
		writeError(w, r, err)
		return
	}

	redirect(w, r, "/notes")
}

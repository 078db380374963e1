package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

// home renders the welcome page for guests and the notes overview for
// authenticated users.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		render(w, r, pageWelcome, struct{}{})
		return
	}

	filters := filtersFromQuery(r)
	view, err := h.services.HomeService.Home(r.Context(), models.HomeRequest{
		UserID:   userID,
		Search:   filters.Search,
		FolderID: filters.Folder,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	render(w, r, pageHome, view)
}

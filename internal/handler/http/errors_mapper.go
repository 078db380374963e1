package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/internal/validators"
)

// errorStatuses is checked in order. Store errors are wrapped together with
// generic statement errors, so the specific ones have to come first.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidPathParam, http.StatusNotFound},
	{ErrNoRequester, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrFolderNotFound, http.StatusNotFound},
	{store.ErrNoteNotFound, http.StatusNotFound},
	{store.ErrAttachmentNotFound, http.StatusNotFound},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// validationErrors is the 422 body.
type validationErrors struct {
	Errors validators.FieldErrors `json:"errors"`
}

// writeError answers with the status mapped from err. Field errors are sent
// back per field, every other error gets a generic body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var fieldErrors validators.FieldErrors
	if errors.As(err, &fieldErrors) {
		log.Debug().Err(err).Msg("validation failed")
		utils.WriteJSON(w, validationErrors{Errors: fieldErrors}, http.StatusUnprocessableEntity)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, http.StatusText(status), status)
}

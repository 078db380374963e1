package http

import (
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/logger"
)

// downloadAttachment streams an attachment of a note owned by the requester
// with its stored MIME type. The response is sandboxed so that a served
// document cannot run script on this origin.
func (h *Handler) downloadAttachment(w http.ResponseWriter, r *http.Request) {
	userID, noteID, ok := routeTarget(w, r)
	if !ok {
		return
	}

	attachmentID, err := pathID(r, "attachmentID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	attachment, file, err := h.services.AttachmentService.OpenAttachment(r.Context(), noteID, attachmentID, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer file.Close()

	contentType := attachment.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	disposition := "attachment"
	if attachment.IsImage() {
		disposition = "inline"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; sandbox")
	w.Header().Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": attachment.OriginalFilename}))
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, file); err != nil {
		logger.FromRequest(r).Err(err).Int64("attachment_id", attachmentID).Msg("error streaming attachment")
	}
}

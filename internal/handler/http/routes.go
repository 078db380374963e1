package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health-check", h.healthCheck)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// welcome page for guests, home page for users
	router.With(h.optionalAuth).Get("/", h.home)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/notes", h.listNotes)
		r.Get("/notes/create", h.createNotePage)
		r.Post("/notes", h.createNote)
		r.Get("/notes/{id}", h.showNote)
		r.Get("/notes/{id}/edit", h.editNotePage)
		r.Put("/notes/{id}", h.updateNote)
		r.Delete("/notes/{id}", h.deleteNote)
		r.Get("/notes/{id}/attachments/{attachmentID}", h.downloadAttachment)

		r.Get("/folders", h.listFolders)
		r.Get("/folders/create", h.createFolderPage)
		r.Post("/folders", h.createFolder)
		r.Get("/folders/{id}", h.showFolder)
		r.Get("/folders/{id}/edit", h.editFolderPage)
		r.Put("/folders/{id}", h.updateFolder)
		r.Delete("/folders/{id}", h.deleteFolder)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
)

// auth is an HTTP middleware that enforces bearer JWT authentication.
//
// It extracts the token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and stores the user id in the request
// context under [utils.UserIDCtxKey]. The request logger gains a "user_id"
// field. Requests without a valid token are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteMessage(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		r, err := h.authenticate(r, authHeader)
		if err != nil {
			log.Warn().Err(err).Msg("error occurred during parsing token")
			utils.WriteMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// optionalAuth authenticates the request when a valid token is present and
// lets it through as a guest otherwise.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		authenticated, err := h.authenticate(r, authHeader)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("ignoring invalid token on guest route")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, authenticated)
	})
}

func (h *Handler) authenticate(r *http.Request, authHeader string) (*http.Request, error) {
	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return r, ErrInvalidAuthorizationHeader
	}

	ctx := r.Context()
	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return r, err
	}

	ctx = utils.WithUserID(ctx, token.UserID)
	ctx = logger.FromContext(ctx).WithUserID(token.UserID).WithContext(ctx)

	return r.WithContext(ctx), nil
}

// requesterID returns the authenticated user id set by auth.
func requesterID(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrNoRequester
	}
	return userID, nil
}

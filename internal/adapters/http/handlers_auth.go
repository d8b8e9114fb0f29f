package http

import (
	"net/http"

	"github.com/oceansouq/platform-core/internal/application"
	"github.com/oceansouq/platform-core/internal/domain"
)

// registerKind builds the registration handler for one provider kind.
// Each vertical mounts the same flow under its own path.
func (h *Handler) registerKind(kind domain.ProviderKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req application.RegisterRequest
		if err := decodeBody(r, &req); err != nil {
			writeMappedError(r.Context(), w, "register", err)
			return
		}

		res, err := h.service.Register(r.Context(), kind, req)
		if err != nil {
			writeMappedError(r.Context(), w, "register", err)
			return
		}
		writeJSON(w, http.StatusCreated, res)
	}
}

// login builds the login handler for one audience surface.
func (h *Handler) login(audience domain.Audience) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req application.LoginRequest
		if err := decodeBody(r, &req); err != nil {
			writeMappedError(r.Context(), w, "login", err)
			return
		}

		res, err := h.service.Login(r.Context(), audience, req)
		if err != nil {
			writeMappedError(r.Context(), w, "login", err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// me returns the live subject behind the authenticated principal.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "me", domain.ErrMissingCredential)
		return
	}
	res, err := h.service.Me(r.Context(), principal)
	if err != nil {
		writeMappedError(r.Context(), w, "me", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// dashboardMe echoes the principal for the token-authoritative dashboard
// audiences, where no store read is required within the token's TTL.
func (h *Handler) dashboardMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "dashboard_me", domain.ErrMissingCredential)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"subject_id": principal.SubjectID,
		"email":      principal.Email,
		"role":       principal.Role,
		"audience":   principal.Audience,
		"expires_at": principal.ExpiresAt,
	})
}

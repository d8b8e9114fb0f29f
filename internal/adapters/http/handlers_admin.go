package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oceansouq/platform-core/internal/domain"
)

func (h *Handler) listSubjects(w http.ResponseWriter, r *http.Request) {
	limit := parseIntDefault(r.URL.Query().Get("limit"), 50)
	offset := parseIntDefault(r.URL.Query().Get("offset"), 0)

	subjects, err := h.service.ListSubjects(r.Context(), limit, offset)
	if err != nil {
		writeMappedError(r.Context(), w, "list_subjects", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"subjects": subjects})
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateSubjectStatus(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "subject_id"))
	if err != nil {
		writeMappedError(r.Context(), w, "update_subject_status", &domain.FieldError{Field: "subject_id"})
		return
	}
	var req statusUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeMappedError(r.Context(), w, "update_subject_status", err)
		return
	}
	status, ok := domain.ParseStatus(req.Status)
	if !ok {
		writeMappedError(r.Context(), w, "update_subject_status", &domain.FieldError{Field: "status"})
		return
	}

	if err := h.service.UpdateSubjectStatus(r.Context(), principal, id, status); err != nil {
		writeMappedError(r.Context(), w, "update_subject_status", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "status": status})
}

type roleUpdateRequest struct {
	Role string `json:"role"`
}

func (h *Handler) updateSubjectRole(w http.ResponseWriter, r *http.Request) {
	principal, _ := principalFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "subject_id"))
	if err != nil {
		writeMappedError(r.Context(), w, "update_subject_role", &domain.FieldError{Field: "subject_id"})
		return
	}
	var req roleUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeMappedError(r.Context(), w, "update_subject_role", err)
		return
	}
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		writeMappedError(r.Context(), w, "update_subject_role", &domain.FieldError{Field: "role"})
		return
	}

	if err := h.service.UpdateSubjectRole(r.Context(), principal, id, role); err != nil {
		writeMappedError(r.Context(), w, "update_subject_role", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "role": role})
}

package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/cv-portal/internal/export"
	"github.com/jonathan/cv-portal/internal/preview"
	"github.com/jonathan/cv-portal/internal/types"
)

// handleCreateCV creates a CV for the user in the path.
func (s *Server) handleCreateCV(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	var req types.CreateCVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	cv, err := s.db.CreateCV(r.Context(), userID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, cv)
}

// handleListCVs lists the CVs of the user in the path.
func (s *Server) handleListCVs(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	cvs, err := s.db.ListCVs(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"cvs": cvs})
}

// handleGetCV returns a CV with all child collections.
func (s *Server) handleGetCV(w http.ResponseWriter, r *http.Request) {
	cvID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	cv, err := s.db.GetCV(r.Context(), cvID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if cv == nil {
		s.errorResponse(w, http.StatusNotFound, "CV not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, cv)
}

// handleUpdateCV applies a partial update of the CV's free-text fields.
func (s *Server) handleUpdateCV(w http.ResponseWriter, r *http.Request) {
	cvID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	var req types.UpdateCVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	cv, err := s.db.UpdateCV(r.Context(), cvID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if cv == nil {
		s.errorResponse(w, http.StatusNotFound, "CV not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, cv)
}

// handleDeleteCV deletes a CV and its child records.
func (s *Server) handleDeleteCV(w http.ResponseWriter, r *http.Request) {
	cvID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteCV(r.Context(), cvID); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deriveCV loads the CV and category metadata and runs the derivation
// pipeline with the request's locale. Returns nil when the CV is missing.
func (s *Server) deriveCV(w http.ResponseWriter, r *http.Request) (*preview.DerivedData, bool) {
	cvID, ok := s.parseIDParam(w, r)
	if !ok {
		return nil, false
	}

	cv, err := s.db.GetCV(r.Context(), cvID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if cv == nil {
		s.errorResponse(w, http.StatusNotFound, "CV not found")
		return nil, false
	}

	categories, err := s.db.ListCategories(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}

	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = s.defaultLocale
	}

	derived := preview.Derive(*cv, categories, locale, s.bundle.Translator(locale))
	return &derived, true
}

// handlePreviewCV returns the derived view-model as JSON, together with the
// flattened skill rows used by table renderers.
func (s *Server) handlePreviewCV(w http.ResponseWriter, r *http.Request) {
	derived, ok := s.deriveCV(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"preview":    derived,
		"skill_rows": preview.BuildSkillRows(derived.SkillsByCategory, derived.SortedSkills),
	})
}

// handleExportCV renders the CV to PDF and streams it as a download. The
// exporter rejects overlapping exports of the same CV, which the client
// treats as a no-op.
func (s *Server) handleExportCV(w http.ResponseWriter, r *http.Request) {
	cvID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	derived, ok := s.deriveCV(w, r)
	if !ok {
		return
	}

	pdf, fileName, err := s.exporter.Export(r.Context(), cvID, *derived)
	if err != nil {
		if errors.Is(err, export.ErrExportInProgress) {
			s.errorResponse(w, http.StatusConflict, "Export already in progress")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Export failed: "+err.Error())
		return
	}

	log.Printf("[EXPORT] CV %s rendered to %s (%d bytes)", cvID, fileName, len(pdf))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// handleSuggestSummary asks the LLM for an improved CV summary. Returns 503
// when no API key is configured.
func (s *Server) handleSuggestSummary(w http.ResponseWriter, r *http.Request) {
	if s.suggester == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Summary suggestions are not configured")
		return
	}

	cvID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	cv, err := s.db.GetCV(r.Context(), cvID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if cv == nil {
		s.errorResponse(w, http.StatusNotFound, "CV not found")
		return
	}

	suggestion, err := s.suggester.SuggestSummary(r.Context(), cv)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Suggestion failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"suggestion": suggestion})
}

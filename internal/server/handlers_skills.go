package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/cv-portal/internal/types"
)

// handleUpsertSkill adds or updates a skill on a CV.
func (s *Server) handleUpsertSkill(w http.ResponseWriter, r *http.Request) {
	cvID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	var req types.UpsertSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := s.db.UpsertSkill(r.Context(), cvID, &req); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, req)
}

// handleDeleteSkill removes a skill from a CV by name.
func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	cvID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}
	name := r.PathValue("name")
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Skill name is required")
		return
	}

	if err := s.db.DeleteSkill(r.Context(), cvID, name); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpsertLanguage adds or updates a language on a CV.
func (s *Server) handleUpsertLanguage(w http.ResponseWriter, r *http.Request) {
	cvID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	var req types.UpsertLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := s.db.UpsertLanguage(r.Context(), cvID, &req); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, req)
}

// handleDeleteLanguage removes a language from a CV by name.
func (s *Server) handleDeleteLanguage(w http.ResponseWriter, r *http.Request) {
	cvID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}
	name := r.PathValue("name")
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Language name is required")
		return
	}

	if err := s.db.DeleteLanguage(r.Context(), cvID, name); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListCategories returns all skill categories.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.db.ListCategories(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"categories": categories})
}

// handleCreateCategory creates a skill category.
func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	category, err := s.db.CreateCategory(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, category)
}

// handleDeleteCategory removes a skill category.
func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteCategory(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

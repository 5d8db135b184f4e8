package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/cv-portal/internal/types"
)

// handleCreateProject assigns a project to a CV.
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	cvID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	var req types.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	project, err := s.db.CreateProject(r.Context(), cvID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, project)
}

// handleUpdateProject partially updates a project assignment.
func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	var req types.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	project, err := s.db.UpdateProject(r.Context(), projectID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if project == nil {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, project)
}

// handleDeleteProject removes a project assignment.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteProject(r.Context(), projectID); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/cv-portal/internal/types"
)

// parseIDParam parses the {id} path value as a UUID, writing a 400 on failure.
func (s *Server) parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "ID is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// handleListUsers returns all user profiles.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.db.ListUsers(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"users": users})
}

// handleGetUser returns one user profile.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if user == nil {
		s.errorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

// handleUpdateUser applies a partial profile update.
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	var req types.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	user, err := s.db.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if user == nil {
		s.errorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

// handleDeleteUser removes a user and all their CVs.
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseIDParam(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteUser(r.Context(), userID); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

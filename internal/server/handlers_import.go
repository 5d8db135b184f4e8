package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/cv-portal/internal/importer"
	"github.com/jonathan/cv-portal/internal/schemas"
	"github.com/jonathan/cv-portal/internal/types"
)

// ImportCVRequest carries an external CV document: either a JSON document
// (validated against the import schema) or an exported HTML page.
type ImportCVRequest struct {
	UserID uuid.UUID       `json:"user_id"`
	CV     json.RawMessage `json:"cv,omitempty"`
	HTML   string          `json:"html,omitempty"`
}

// handleImportCV parses, validates and persists an external CV document.
func (s *Server) handleImportCV(w http.ResponseWriter, r *http.Request) {
	var req ImportCVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.UserID == uuid.Nil {
		s.errorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	var document *importer.Document
	switch {
	case req.HTML != "":
		parsed, err := importer.ParseHTML(req.HTML)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "HTML import failed: "+err.Error())
			return
		}
		document = parsed
	case len(req.CV) > 0:
		if err := schemas.ValidateCVImport(req.CV); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				s.errorResponse(w, http.StatusBadRequest, validationErr.Error())
				return
			}
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		document = &importer.Document{}
		if err := json.Unmarshal(req.CV, document); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid CV document: "+err.Error())
			return
		}
	default:
		s.errorResponse(w, http.StatusBadRequest, "Either cv or html is required")
		return
	}

	cv, err := s.db.CreateCV(r.Context(), req.UserID, &types.CreateCVRequest{
		Name:        document.Name,
		Description: document.Description,
		Education:   document.Education,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	for i := range document.Skills {
		if err := s.db.UpsertSkill(r.Context(), cv.ID, &document.Skills[i]); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}
	for i := range document.Languages {
		if err := s.db.UpsertLanguage(r.Context(), cv.ID, &document.Languages[i]); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}
	for i := range document.Projects {
		if _, err := s.db.CreateProject(r.Context(), cv.ID, &document.Projects[i]); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}

	full, err := s.db.GetCV(r.Context(), cv.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, full)
}

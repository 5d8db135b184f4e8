package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateCVRequest represents the request to create a new CV for a user.
type CreateCVRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Description string `json:"description,omitempty"`
	Education   string `json:"education,omitempty"`
}

// UpdateCVRequest represents a partial update of CV free-text fields.
// Nil fields are left unchanged.
type UpdateCVRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Education   *string `json:"education,omitempty"`
}

// UpsertSkillRequest adds or updates a skill on a CV. The skill name is the
// identity within the CV.
type UpsertSkillRequest struct {
	Name       string     `json:"name" validate:"required,min=1"`
	Mastery    Mastery    `json:"mastery" validate:"required,oneof=Novice Advanced Competent Proficient Expert"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
}

// UpsertLanguageRequest adds or updates a language on a CV.
type UpsertLanguageRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Proficiency string `json:"proficiency" validate:"required,oneof=A1 A2 B1 B2 C1 C2 Native"`
}

// CreateProjectRequest assigns a project to a CV. EndDate is omitted for
// ongoing projects.
type CreateProjectRequest struct {
	Name             string   `json:"name" validate:"required,min=1"`
	Description      string   `json:"description,omitempty"`
	Domain           string   `json:"domain,omitempty"`
	StartDate        string   `json:"start_date" validate:"required"`
	EndDate          *string  `json:"end_date,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Environment      []string `json:"environment,omitempty"`
}

// UpdateProjectRequest partially updates a project assignment.
type UpdateProjectRequest struct {
	Name             *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description      *string  `json:"description,omitempty"`
	Domain           *string  `json:"domain,omitempty"`
	StartDate        *string  `json:"start_date,omitempty"`
	EndDate          *string  `json:"end_date,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Environment      []string `json:"environment,omitempty"`
}

// CreateCategoryRequest creates a skill category, optionally nested one level
// under a parent.
type CreateCategoryRequest struct {
	Name     string     `json:"name" validate:"required,min=1"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// Validate validates the CreateCVRequest using the validator.
func (r *CreateCVRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateCVRequest using the validator.
func (r *UpdateCVRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpsertSkillRequest using the validator.
func (r *UpsertSkillRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpsertLanguageRequest using the validator.
func (r *UpsertLanguageRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateProjectRequest using the validator.
func (r *CreateProjectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateProjectRequest using the validator.
func (r *UpdateProjectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateCategoryRequest using the validator.
func (r *CreateCategoryRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

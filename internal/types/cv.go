// Package types provides type definitions for structured data used throughout the CV portal system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Mastery is an ordinal skill-proficiency level.
type Mastery string

// Mastery levels, weakest to strongest.
const (
	MasteryNovice     Mastery = "Novice"
	MasteryAdvanced   Mastery = "Advanced"
	MasteryCompetent  Mastery = "Competent"
	MasteryProficient Mastery = "Proficient"
	MasteryExpert     Mastery = "Expert"
)

// masteryPriority is the canonical display ordering: lower number = higher
// proficiency, shown first. Both the flat skill sort and the numeric
// indicator value derive from this single table.
var masteryPriority = map[Mastery]int{
	MasteryExpert:     1,
	MasteryAdvanced:   2,
	MasteryProficient: 3,
	MasteryCompetent:  4,
	MasteryNovice:     5,
}

// Priority returns the display priority for the mastery level.
// Unrecognized values sort after every known level.
func (m Mastery) Priority() int {
	if p, ok := masteryPriority[m]; ok {
		return p
	}
	return len(masteryPriority) + 1
}

// Value returns a numeric indicator value (higher = stronger), derived from
// the same priority table so ordering and indicators cannot diverge.
func (m Mastery) Value() int {
	return len(masteryPriority) + 1 - m.Priority()
}

// SkillMastery is a single skill entry on a CV. Name acts as identity within a CV.
type SkillMastery struct {
	Name       string     `json:"name"`
	Mastery    Mastery    `json:"mastery"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
}

// SkillCategory is a classification bucket for skills. The hierarchy is at
// most two levels deep: a category either has no parent or a top-level parent.
type SkillCategory struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// LanguageProficiency is a language entry on a CV with a CEFR-style level
// (A1..C2 or Native).
type LanguageProficiency struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// CVProject is a project assignment recorded on a CV. A nil EndDate means the
// project is ongoing.
type CVProject struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Domain           string    `json:"domain"`
	StartDate        string    `json:"start_date"`
	EndDate          *string   `json:"end_date,omitempty"`
	Responsibilities []string  `json:"responsibilities"`
	Environment      []string  `json:"environment"`
}

// Profile holds the display identity of the employee a CV belongs to.
type Profile struct {
	FullName  string `json:"full_name,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Position  string `json:"position,omitempty"`
}

// CV is the curriculum-vitae record being previewed and exported.
type CV struct {
	ID          uuid.UUID             `json:"id"`
	UserID      uuid.UUID             `json:"user_id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Education   string                `json:"education"`
	Languages   []LanguageProficiency `json:"languages"`
	Skills      []SkillMastery        `json:"skills"`
	Projects    []CVProject           `json:"projects"`
	Profile     Profile               `json:"profile"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

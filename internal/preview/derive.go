package preview

import (
	"strings"

	"github.com/jonathan/cv-portal/internal/types"
)

// Translation keys used by the derivation pipeline. Missing translations echo
// the key back, so these double as last-resort display strings.
const (
	KeyUnnamedEmployee = "preview.unnamed"
	KeyNoPosition      = "preview.position"
	KeyNoSummary       = "preview.no_summary"
	KeyEmptyValue      = "preview.empty_value"
	KeyPresent         = "preview.present"
	KeyUnknownDate     = "preview.unknown_date"
)

// DerivedData is the computed, render-ready view-model for one CV. The JSON
// preview endpoint and the PDF exporter both consume exactly this shape.
type DerivedData struct {
	Name             string                      `json:"name"`
	ProfileName      string                      `json:"profile_name"`
	RoleTitle        string                      `json:"role_title"`
	SummaryText      string                      `json:"summary_text"`
	EducationValue   string                      `json:"education_value"`
	Languages        []types.LanguageProficiency `json:"languages"`
	Domains          []string                    `json:"domains"`
	Projects         []types.CVProject           `json:"projects"`
	SortedSkills     []types.SkillMastery        `json:"sorted_skills"`
	SkillsByCategory []SkillGroup                `json:"skills_by_category"`
	LatestSkillUsage string                      `json:"latest_skill_usage,omitempty"`
	EmptyValueLabel  string                      `json:"empty_value_label"`

	// FormatRange formats a project date range with the CV's locale and
	// labels already bound. Not serialized.
	FormatRange func(start string, end *string) string `json:"-"`
}

// Derive builds the full view-model for a CV. Pure and deterministic: no I/O,
// no clock reads, and identical inputs always produce deep-equal output.
func Derive(cv types.CV, categories []types.SkillCategory, locale string, translate TranslateFunc) DerivedData {
	resolved := ResolveLocale(locale)
	presentLabel := translate(KeyPresent)
	unknownLabel := translate(KeyUnknownDate)

	formatDate := func(raw string) string {
		return FormatDate(raw, resolved)
	}
	formatRange := func(start string, end *string) string {
		return FormatDateRange(start, end, unknownLabel, presentLabel, resolved)
	}

	return DerivedData{
		Name:           cv.Name,
		ProfileName:    resolveProfileName(cv, translate),
		RoleTitle:      fallback(cv.Profile.Position, translate(KeyNoPosition)),
		SummaryText:    fallback(cv.Description, translate(KeyNoSummary)),
		EducationValue: fallback(cv.Education, translate(KeyEmptyValue)),
		Languages:      cv.Languages,
		Domains:        UniqueDomains(cv.Projects),
		Projects:       cv.Projects,
		SortedSkills:   SortSkills(cv.Skills),
		SkillsByCategory: GroupSkillsByCategory(
			cv.Skills, categories, translate),
		LatestSkillUsage: LatestSkillUsage(cv.Projects, formatDate, presentLabel),
		EmptyValueLabel:  translate(KeyEmptyValue),
		FormatRange:      formatRange,
	}
}

// resolveProfileName picks the first non-empty display name: precomputed full
// name, first+last concatenation, the CV's own name, then a translated
// placeholder. Each candidate is trimmed independently.
func resolveProfileName(cv types.CV, translate TranslateFunc) string {
	candidates := []string{
		cv.Profile.FullName,
		strings.TrimSpace(cv.Profile.FirstName) + " " + strings.TrimSpace(cv.Profile.LastName),
		cv.Name,
	}
	for _, candidate := range candidates {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return translate(KeyUnnamedEmployee)
}

// fallback returns the trimmed value, or the label when nothing remains.
func fallback(value, label string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return label
}

package preview

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/cv-portal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCV() types.CV {
	backend := uuid.MustParse("3e0a9b6e-9a43-4b6a-8f3e-111111111111")
	return types.CV{
		Name:        "go-developer-cv",
		Description: "Seasoned backend engineer.",
		Education:   "BSc Computer Science",
		Profile: types.Profile{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Position:  "Staff Engineer",
		},
		Languages: []types.LanguageProficiency{
			{Name: "English", Proficiency: "C1"},
		},
		Skills: []types.SkillMastery{
			{Name: "Go", Mastery: types.MasteryExpert, CategoryID: &backend},
			{Name: "Docker", Mastery: types.MasteryCompetent},
		},
		Projects: []types.CVProject{
			{Name: "ledger", Domain: "Fintech", StartDate: "2021-02-01", EndDate: strptr("2023-06-01")},
			{Name: "portal", Domain: "Fintech", StartDate: "2023-07-01"},
		},
	}
}

func sampleCategories() []types.SkillCategory {
	return []types.SkillCategory{
		{ID: uuid.MustParse("3e0a9b6e-9a43-4b6a-8f3e-111111111111"), Name: "Backend"},
	}
}

func TestDerive_Deterministic(t *testing.T) {
	cv := sampleCV()
	categories := sampleCategories()

	first := Derive(cv, categories, "en", identity)
	second := Derive(cv, categories, "en", identity)

	// The closure field is excluded from JSON, everything else must be
	// deep-equal across calls.
	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestDerive_ProfileNamePrefersFullName(t *testing.T) {
	cv := sampleCV()
	cv.Profile.FullName = "  Augusta Ada King  "

	derived := Derive(cv, nil, "en", identity)
	assert.Equal(t, "Augusta Ada King", derived.ProfileName, "full name wins and is trimmed")
}

func TestDerive_ProfileNameFallsBackToFirstLast(t *testing.T) {
	derived := Derive(sampleCV(), nil, "en", identity)
	assert.Equal(t, "Ada Lovelace", derived.ProfileName)
}

func TestDerive_ProfileNameFallsBackToCVName(t *testing.T) {
	cv := sampleCV()
	cv.Profile = types.Profile{}

	derived := Derive(cv, nil, "en", identity)
	assert.Equal(t, "go-developer-cv", derived.ProfileName)
}

func TestDerive_ProfileNamePlaceholderWhenNothingSet(t *testing.T) {
	cv := sampleCV()
	cv.Profile = types.Profile{}
	cv.Name = "   "

	translate := func(key string) string {
		if key == KeyUnnamedEmployee {
			return "Unnamed employee"
		}
		return key
	}
	derived := Derive(cv, nil, "en", translate)
	assert.Equal(t, "Unnamed employee", derived.ProfileName)
}

func TestDerive_WhitespaceSummaryUsesPlaceholder(t *testing.T) {
	cv := sampleCV()
	cv.Description = "   "

	translate := func(key string) string {
		if key == KeyNoSummary {
			return "No summary provided"
		}
		return key
	}
	derived := Derive(cv, nil, "en", translate)
	assert.Equal(t, "No summary provided", derived.SummaryText, "whitespace-only description degrades to the placeholder")
}

func TestDerive_EducationFallsBackToEmptyValueLabel(t *testing.T) {
	cv := sampleCV()
	cv.Education = ""

	derived := Derive(cv, nil, "en", identity)
	assert.Equal(t, KeyEmptyValue, derived.EducationValue)
	assert.Equal(t, derived.EmptyValueLabel, derived.EducationValue)
}

func TestDerive_ComposesAggregates(t *testing.T) {
	derived := Derive(sampleCV(), sampleCategories(), "en", identity)

	assert.Equal(t, []string{"Fintech"}, derived.Domains)
	assert.Equal(t, KeyPresent, derived.LatestSkillUsage, "ongoing project short-circuits to the present label")

	require.Len(t, derived.SortedSkills, 2)
	assert.Equal(t, "Go", derived.SortedSkills[0].Name)

	require.Len(t, derived.SkillsByCategory, 1)
	assert.Equal(t, "Backend", derived.SkillsByCategory[0].CategoryName)
	require.Len(t, derived.SkillsByCategory[0].Skills, 1, "uncategorized Docker stays out of the grouped view")
}

func TestDerive_FormatRangeClosureBindsLocaleAndLabels(t *testing.T) {
	translate := func(key string) string {
		switch key {
		case KeyPresent:
			return "Present"
		case KeyUnknownDate:
			return "unknown"
		}
		return key
	}
	derived := Derive(sampleCV(), nil, "en", translate)

	end := "2023-06-01"
	assert.Equal(t, "Feb 2021 — Jun 2023", derived.FormatRange("2021-02-01", &end))
	assert.Equal(t, "Jul 2023 — Present", derived.FormatRange("2023-07-01", nil))
}

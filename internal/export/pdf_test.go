package export

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/jonathan/cv-portal/internal/preview"
	"github.com/jonathan/cv-portal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName_SlugRules(t *testing.T) {
	assert.Equal(t, "ada-lovelace.pdf", FileName("Ada Lovelace"))
	assert.Equal(t, "jos-lvarez.pdf", FileName("José Álvarez!?"), "non-word characters are stripped")
	assert.Equal(t, "a-b-c.pdf", FileName("  a   b\tc  "), "whitespace collapses to single hyphens")
}

func TestFileName_FallbackWhenEmpty(t *testing.T) {
	assert.Equal(t, "cv-preview.pdf", FileName(""))
	assert.Equal(t, "cv-preview.pdf", FileName("!!!"))
}

func TestExporter_InFlightGuard(t *testing.T) {
	e := NewExporter()
	cvID := uuid.New()

	require.NoError(t, e.begin(cvID))
	assert.ErrorIs(t, e.begin(cvID), ErrExportInProgress, "second export while running is a no-op")

	e.finish(cvID)
	assert.NoError(t, e.begin(cvID), "flag cleared, export is possible again")
	e.finish(cvID)
}

func TestExporter_GuardIsPerCV(t *testing.T) {
	e := NewExporter()
	first, second := uuid.New(), uuid.New()

	require.NoError(t, e.begin(first))
	assert.NoError(t, e.begin(second), "exports of different CVs do not block each other")
	e.finish(first)
	e.finish(second)
}

func derivedFixture() preview.DerivedData {
	end := "2023-06-01"
	cv := types.CV{
		Name:        "fixture",
		Description: "Backend engineer.",
		Education:   "BSc",
		Profile:     types.Profile{FirstName: "Ada", LastName: "Lovelace", Position: "Staff Engineer"},
		Languages:   []types.LanguageProficiency{{Name: "English", Proficiency: "C1"}},
		Skills: []types.SkillMastery{
			{Name: "Go", Mastery: types.MasteryExpert},
		},
		Projects: []types.CVProject{
			{Name: "ledger", Domain: "Fintech", StartDate: "2021-02-01", EndDate: &end},
		},
	}
	return preview.Derive(cv, nil, "en", func(key string) string { return key })
}

func TestRenderHTML_SectionsPresent(t *testing.T) {
	html, err := RenderHTML(derivedFixture())
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", strings.TrimSpace(doc.Find("h1").Text()))
	assert.Equal(t, "Staff Engineer", strings.TrimSpace(doc.Find(".role").Text()))
	assert.Contains(t, doc.Find(".summary").Text(), "Backend engineer.")
	assert.Contains(t, doc.Find(".projects").Text(), "ledger")
	assert.Contains(t, doc.Find(".projects").Text(), "Feb 2021 — Jun 2023")
	assert.Equal(t, 1, doc.Find("table.skills tr").Length())
}

func TestRenderHTML_EscapesUserContent(t *testing.T) {
	data := derivedFixture()
	data.SummaryText = `<script>alert("x")</script>`

	html, err := RenderHTML(data)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert", "user content must be HTML-escaped")
}

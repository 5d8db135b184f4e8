package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-portal/internal/export"
	"github.com/jonathan/cv-portal/internal/preview"
	"github.com/jonathan/cv-portal/internal/types"
)

const sampleHTML = `<!DOCTYPE html>
<html><body>
  <h1>Anna Kovalenko</h1>
  <div class="role">Senior Engineer</div>
  <div class="section summary"><h2>Summary</h2><p>Backend engineer with a focus on payments.</p></div>
  <div class="section details">
    <h2>Details</h2>
    <p>Education: MSc Computer Science</p>
    <p>Languages: English (C1)</p>
  </div>
  <div class="section skills">
    <table class="skills">
      <tr><td class="category">Backend</td><td>Go</td><td>Expert</td></tr>
      <tr><td class="category"></td><td>PostgreSQL</td><td>Advanced</td></tr>
    </table>
  </div>
  <div class="section projects">
    <div class="project">
      <strong>Billing Platform</strong>
      <div class="dates">Jan 2020 — Present · Fintech</div>
      <p>Rebuilt the invoicing pipeline.</p>
    </div>
  </div>
</body></html>`

func TestParseHTML_FullDocument(t *testing.T) {
	doc, err := ParseHTML(sampleHTML)
	require.NoError(t, err)

	assert.Equal(t, "Anna Kovalenko", doc.Name)
	assert.Equal(t, "Backend engineer with a focus on payments.", doc.Description)
	assert.Equal(t, "MSc Computer Science", doc.Education)

	require.Len(t, doc.Skills, 2)
	assert.Equal(t, "Go", doc.Skills[0].Name)
	assert.Equal(t, types.Mastery("Expert"), doc.Skills[0].Mastery)
	assert.Equal(t, "PostgreSQL", doc.Skills[1].Name)

	require.Len(t, doc.Projects, 1)
	assert.Equal(t, "Billing Platform", doc.Projects[0].Name)
	assert.Equal(t, "Jan 2020", doc.Projects[0].StartDate)
	assert.Equal(t, "Rebuilt the invoicing pipeline.", doc.Projects[0].Description)
}

func TestParseHTML_NoHeading(t *testing.T) {
	_, err := ParseHTML("<html><body><p>nothing here</p></body></html>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no CV heading")
}

func TestParseHTML_SkipsIncompleteRows(t *testing.T) {
	html := `<html><body><h1>X</h1>
	<table class="skills"><tr><td>only</td><td>two</td></tr></table>
	</body></html>`

	doc, err := ParseHTML(html)
	require.NoError(t, err)
	assert.Empty(t, doc.Skills)
}

// An exported document must re-import with the same top-level content.
func TestParseHTML_RoundTripWithExporter(t *testing.T) {
	data := preview.DerivedData{
		ProfileName:    "Maria Silva",
		RoleTitle:      "Data Engineer",
		SummaryText:    "Builds data pipelines.",
		EducationValue: "BSc Mathematics",
		SortedSkills: []types.SkillMastery{
			{Name: "Python", Mastery: types.MasteryExpert},
		},
		Projects: []types.CVProject{
			{Name: "Warehouse Migration", StartDate: "2021-03-01", Description: "Moved ETL to the cloud."},
		},
		FormatRange: func(start string, end *string) string { return "Mar 2021 — Present" },
	}

	html, err := export.RenderHTML(data)
	require.NoError(t, err)

	doc, err := ParseHTML(html)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", doc.Name)
	assert.Equal(t, "Builds data pipelines.", doc.Description)
	assert.Equal(t, "BSc Mathematics", doc.Education)
	require.Len(t, doc.Skills, 1)
	assert.Equal(t, "Python", doc.Skills[0].Name)
	require.Len(t, doc.Projects, 1)
	assert.Equal(t, "Warehouse Migration", doc.Projects[0].Name)
	assert.Equal(t, "Mar 2021", doc.Projects[0].StartDate)
}

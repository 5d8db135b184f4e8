// Package export renders a derived CV view-model to a printable document and
// produces the downloadable PDF. It consumes exactly the same DerivedData as
// the preview endpoint, which keeps both render targets in lockstep.
package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/jonathan/cv-portal/internal/preview"
)

// documentModel is the template input: the derived data plus values that are
// precomputed here so the template itself stays logic-free.
type documentModel struct {
	Data      preview.DerivedData
	Rows      []preview.SkillRow
	Ranges    []string // formatted date range per project, index-aligned
	HasGroups bool
}

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; margin: 40px; color: #222; }
  h1 { margin-bottom: 0; }
  .role { color: #666; margin-top: 4px; }
  .section { margin-top: 24px; }
  .section h2 { font-size: 14px; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #ddd; padding-bottom: 4px; }
  table.skills { border-collapse: collapse; width: 100%; }
  table.skills td { padding: 4px 8px; border-bottom: 1px solid #eee; }
  td.category { font-weight: bold; width: 30%; }
  .project { margin-bottom: 16px; }
  .project .dates { color: #666; font-size: 12px; }
  ul.compact { margin: 4px 0; padding-left: 20px; }
</style>
</head>
<body>
  <h1>{{.Data.ProfileName}}</h1>
  <div class="role">{{.Data.RoleTitle}}</div>

  <div class="section summary">
    <h2>Summary</h2>
    <p>{{.Data.SummaryText}}</p>
  </div>

  <div class="section details">
    <h2>Details</h2>
    <p>Education: {{.Data.EducationValue}}</p>
    {{if .Data.Languages}}<p>Languages:
      {{range $i, $l := .Data.Languages}}{{if $i}}, {{end}}{{$l.Name}} ({{$l.Proficiency}}){{end}}
    </p>{{end}}
    {{if .Data.Domains}}<p>Domains:
      {{range $i, $d := .Data.Domains}}{{if $i}}, {{end}}{{$d}}{{end}}
    </p>{{end}}
    {{if .Data.LatestSkillUsage}}<p>Last project activity: {{.Data.LatestSkillUsage}}</p>{{end}}
  </div>

  {{if .Rows}}
  <div class="section skills">
    <h2>Skills</h2>
    <table class="skills">
      {{range .Rows}}
      <tr>
        <td class="category">{{if .ShowCategoryLabel}}{{.CategoryLabel}}{{end}}</td>
        <td>{{.Name}}</td>
        <td>{{.Mastery}}</td>
      </tr>
      {{end}}
    </table>
  </div>
  {{end}}

  {{if .Data.Projects}}
  <div class="section projects">
    <h2>Projects</h2>
    {{range $i, $p := .Data.Projects}}
    <div class="project">
      <strong>{{$p.Name}}</strong>
      <div class="dates">{{index $.Ranges $i}}{{if $p.Domain}} · {{$p.Domain}}{{end}}</div>
      {{if $p.Description}}<p>{{$p.Description}}</p>{{end}}
      {{if $p.Responsibilities}}<ul class="compact">{{range $p.Responsibilities}}<li>{{.}}</li>{{end}}</ul>{{end}}
      {{if $p.Environment}}<div>Environment: {{range $j, $e := $p.Environment}}{{if $j}}, {{end}}{{$e}}{{end}}</div>{{end}}
    </div>
    {{end}}
  </div>
  {{end}}
</body>
</html>`

var cvTemplate = template.Must(template.New("cv").Parse(documentTemplate))

// RenderHTML renders the derived view-model to the printable HTML document.
func RenderHTML(data preview.DerivedData) (string, error) {
	ranges := make([]string, len(data.Projects))
	for i, p := range data.Projects {
		if data.FormatRange != nil {
			ranges[i] = data.FormatRange(p.StartDate, p.EndDate)
		}
	}

	model := documentModel{
		Data:      data,
		Rows:      preview.BuildSkillRows(data.SkillsByCategory, data.SortedSkills),
		Ranges:    ranges,
		HasGroups: len(data.SkillsByCategory) > 0,
	}

	var buf bytes.Buffer
	if err := cvTemplate.Execute(&buf, model); err != nil {
		return "", fmt.Errorf("failed to render CV document: %w", err)
	}
	return buf.String(), nil
}

// Package importer parses external CV documents (exported HTML pages or
// validated JSON) into records the portal can persist.
package importer

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/cv-portal/internal/types"
)

// Document is a CV parsed from an external source, ready to persist.
type Document struct {
	Name        string                      `json:"name"`
	Description string                      `json:"description,omitempty"`
	Education   string                      `json:"education,omitempty"`
	Skills      []types.UpsertSkillRequest  `json:"skills,omitempty"`
	Languages   []types.UpsertLanguageRequest `json:"languages,omitempty"`
	Projects    []types.CreateProjectRequest  `json:"projects,omitempty"`
}

// ParseHTML extracts a CV document from an exported CV page. The selectors
// match the sections the portal's own exporter produces, so a previously
// exported CV can be re-imported losslessly enough to edit.
func ParseHTML(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML document: %w", err)
	}

	name := strings.TrimSpace(doc.Find("h1").First().Text())
	if name == "" {
		return nil, fmt.Errorf("document has no CV heading")
	}

	imported := &Document{
		Name:        name,
		Description: strings.TrimSpace(doc.Find(".summary p").First().Text()),
		Education:   parseEducation(doc),
	}

	doc.Find("table.skills tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		skillName := strings.TrimSpace(cells.Eq(1).Text())
		mastery := strings.TrimSpace(cells.Eq(2).Text())
		if skillName == "" {
			return
		}
		imported.Skills = append(imported.Skills, types.UpsertSkillRequest{
			Name:    skillName,
			Mastery: types.Mastery(mastery),
		})
	})

	doc.Find(".projects .project").Each(func(_ int, sel *goquery.Selection) {
		projectName := strings.TrimSpace(sel.Find("strong").First().Text())
		if projectName == "" {
			return
		}
		// Exported dates are display labels; they are kept verbatim, and the
		// pipeline passes unparseable date strings through unchanged.
		start, _, _ := strings.Cut(sel.Find(".dates").First().Text(), "·")
		start, _, _ = strings.Cut(start, " — ")
		imported.Projects = append(imported.Projects, types.CreateProjectRequest{
			Name:        projectName,
			Description: strings.TrimSpace(sel.Find("p").First().Text()),
			StartDate:   strings.TrimSpace(start),
		})
	})

	return imported, nil
}

// parseEducation pulls the education line out of the details section.
func parseEducation(doc *goquery.Document) string {
	var education string
	doc.Find(".details p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if strings.HasPrefix(text, "Education:") {
			education = strings.TrimSpace(strings.TrimPrefix(text, "Education:"))
			return false
		}
		return true
	})
	return education
}

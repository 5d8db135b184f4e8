package preview

import (
	"strings"

	"github.com/jonathan/cv-portal/internal/types"
)

// UniqueDomains collects project domains, dropping empty values and
// deduplicating while preserving first-seen order.
func UniqueDomains(projects []types.CVProject) []string {
	seen := make(map[string]bool, len(projects))
	domains := make([]string, 0, len(projects))
	for _, p := range projects {
		domain := strings.TrimSpace(p.Domain)
		if domain == "" || seen[domain] {
			continue
		}
		seen[domain] = true
		domains = append(domains, domain)
	}
	return domains
}

// LatestSkillUsage derives the "last used" label from a project list. Any
// ongoing project (no end date) wins immediately and yields presentLabel.
// Otherwise the single latest parseable end date is formatted; projects with
// unparseable end dates are skipped. Returns an empty string when nothing
// usable exists.
func LatestSkillUsage(projects []types.CVProject, formatDate func(string) string, presentLabel string) string {
	if len(projects) == 0 {
		return ""
	}

	var latest string
	var found bool
	for _, p := range projects {
		if p.EndDate == nil || strings.TrimSpace(*p.EndDate) == "" {
			return presentLabel
		}
		end, err := parseDate(*p.EndDate)
		if err != nil {
			continue
		}
		if !found {
			latest, found = *p.EndDate, true
			continue
		}
		current, _ := parseDate(latest)
		if end.After(current) {
			latest = *p.EndDate
		}
	}

	if !found {
		return ""
	}
	return formatDate(latest)
}

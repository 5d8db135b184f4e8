package preview

import (
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/cv-portal/internal/types"
)

// FallbackCategoryKey is the group used when a skill references a category id
// that cannot be resolved.
const FallbackCategoryKey = "Other"

// TranslateFunc is an opaque key-to-string lookup. Implementations echo the
// key back when no translation exists.
type TranslateFunc func(key string) string

// SkillGroup is a display group of skills under one top-level category name.
type SkillGroup struct {
	CategoryName string               `json:"category_name"`
	Skills       []types.SkillMastery `json:"skills"`
}

// GroupSkillsByCategory folds skills into groups keyed by top-level category
// name. A skill attached to a child category is attributed to the parent's
// group. Skills without a category id are excluded from the grouped view
// entirely; they remain visible in the flat sorted list. An unresolvable
// category id falls back to the "Other" group.
func GroupSkillsByCategory(skills []types.SkillMastery, categories []types.SkillCategory, translate TranslateFunc) []SkillGroup {
	byID := make(map[string]types.SkillCategory, len(categories))
	for _, c := range categories {
		byID[c.ID.String()] = c
	}

	buckets := make(map[string][]types.SkillMastery)
	for _, skill := range skills {
		if skill.CategoryID == nil {
			continue
		}
		name := topLevelName(*skill.CategoryID, byID)
		buckets[name] = append(buckets[name], skill)
	}

	groups := make([]SkillGroup, 0, len(buckets))
	for name, grouped := range buckets {
		sort.Slice(grouped, func(i, j int) bool {
			return grouped[i].Name < grouped[j].Name
		})
		groups = append(groups, SkillGroup{
			CategoryName: translate(name),
			Skills:       grouped,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].CategoryName < groups[j].CategoryName
	})
	return groups
}

// topLevelName resolves a category id to its top-level display name. The
// hierarchy is two levels deep at most, so a single parent lookup suffices.
func topLevelName(id uuid.UUID, byID map[string]types.SkillCategory) string {
	category, ok := byID[id.String()]
	if !ok {
		return FallbackCategoryKey
	}
	if category.ParentID != nil {
		if parent, ok := byID[category.ParentID.String()]; ok {
			return parent.Name
		}
	}
	return category.Name
}

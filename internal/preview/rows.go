package preview

import (
	"fmt"

	"github.com/jonathan/cv-portal/internal/types"
)

// SkillRow is one row of the rendered skills table.
type SkillRow struct {
	// Key is a stable composite identity for list rendering.
	Key string `json:"key"`
	// CategoryLabel is the group label, set on every row of a group.
	CategoryLabel string `json:"category_label"`
	// ShowCategoryLabel is true only on the first row of each group, so the
	// table shows the label once per group as a merged cell.
	ShowCategoryLabel bool          `json:"show_category_label"`
	Name              string        `json:"name"`
	Mastery           types.Mastery `json:"mastery"`
}

// BuildSkillRows flattens grouped skills into table rows, preserving group
// order and intra-group order. When no grouped data exists it falls back to
// the flat mastery-ordered list with empty category labels.
func BuildSkillRows(byCategory []SkillGroup, sorted []types.SkillMastery) []SkillRow {
	if len(byCategory) == 0 {
		rows := make([]SkillRow, 0, len(sorted))
		for _, skill := range sorted {
			rows = append(rows, newSkillRow("", false, skill))
		}
		return rows
	}

	var rows []SkillRow
	for _, group := range byCategory {
		for i, skill := range group.Skills {
			rows = append(rows, newSkillRow(group.CategoryName, i == 0, skill))
		}
	}
	return rows
}

func newSkillRow(label string, first bool, skill types.SkillMastery) SkillRow {
	return SkillRow{
		Key:               fmt.Sprintf("%s|%s|%s", label, skill.Name, skill.Mastery),
		CategoryLabel:     label,
		ShowCategoryLabel: first,
		Name:              skill.Name,
		Mastery:           skill.Mastery,
	}
}

package preview

import (
	"sort"

	"github.com/jonathan/cv-portal/internal/types"
)

// SkillLess reports whether skill a sorts before skill b: higher mastery
// first per the canonical priority table, ties broken by name.
func SkillLess(a, b types.SkillMastery) bool {
	pa, pb := a.Mastery.Priority(), b.Mastery.Priority()
	if pa != pb {
		return pa < pb
	}
	return a.Name < b.Name
}

// SortSkills returns a copy of skills ordered by mastery then name. The input
// slice is never mutated so repeated derivations stay deterministic.
func SortSkills(skills []types.SkillMastery) []types.SkillMastery {
	sorted := make([]types.SkillMastery, len(skills))
	copy(sorted, skills)
	sort.Slice(sorted, func(i, j int) bool {
		return SkillLess(sorted[i], sorted[j])
	})
	return sorted
}

package preview

import (
	"testing"

	"github.com/jonathan/cv-portal/internal/types"
	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestUniqueDomains_DedupFirstSeenOrder(t *testing.T) {
	projects := []types.CVProject{
		{Domain: "Fintech"},
		{Domain: "Fintech"},
		{Domain: "Health"},
	}

	assert.Equal(t, []string{"Fintech", "Health"}, UniqueDomains(projects))
}

func TestUniqueDomains_EmptyValuesDropped(t *testing.T) {
	projects := []types.CVProject{
		{Domain: ""},
		{Domain: "   "},
		{Domain: "Retail"},
	}

	assert.Equal(t, []string{"Retail"}, UniqueDomains(projects))
}

func TestLatestSkillUsage_OngoingProjectShortCircuits(t *testing.T) {
	projects := []types.CVProject{
		{Name: "old", EndDate: strptr("2020-01-01")},
		{Name: "ongoing"},
	}

	got := LatestSkillUsage(projects, func(raw string) string { return FormatDate(raw, "en") }, "Present")
	assert.Equal(t, "Present", got, "ongoing work always wins regardless of other end dates")
}

func TestLatestSkillUsage_MaxEndDate(t *testing.T) {
	projects := []types.CVProject{
		{Name: "a", EndDate: strptr("2021-06-01")},
		{Name: "b", EndDate: strptr("2023-02-15")},
	}

	got := LatestSkillUsage(projects, func(raw string) string { return FormatDate(raw, "en") }, "Present")
	assert.Equal(t, "Feb 2023", got)
}

func TestLatestSkillUsage_NoProjects(t *testing.T) {
	got := LatestSkillUsage(nil, func(raw string) string { return raw }, "Present")
	assert.Equal(t, "", got)
}

func TestLatestSkillUsage_UnparseableEndDatesSkipped(t *testing.T) {
	projects := []types.CVProject{
		{Name: "a", EndDate: strptr("never")},
		{Name: "b", EndDate: strptr("2022-09-30")},
	}

	got := LatestSkillUsage(projects, func(raw string) string { return FormatDate(raw, "en") }, "Present")
	assert.Equal(t, "Sep 2022", got)
}

func TestLatestSkillUsage_NoUsableEndDates(t *testing.T) {
	projects := []types.CVProject{
		{Name: "a", EndDate: strptr("garbage")},
	}

	got := LatestSkillUsage(projects, func(raw string) string { return raw }, "Present")
	assert.Equal(t, "", got)
}

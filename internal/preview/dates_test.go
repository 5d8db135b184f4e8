package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate_ShortLabel(t *testing.T) {
	assert.Equal(t, "Jan 2023", FormatDate("2023-01-15", "en"))
	assert.Equal(t, "Feb 2023", FormatDate("2023-02-15T10:30:00Z", "en"))
	assert.Equal(t, "Mar 2021", FormatDate("2021-03", "en"))
}

func TestFormatDate_LocalizedMonths(t *testing.T) {
	assert.Equal(t, "Mai 2023", FormatDate("2023-05-01", "de"))
	assert.Equal(t, "janv 2023", FormatDate("2023-01-01", "fr"))
}

func TestFormatDate_UnsupportedLocaleFallsBack(t *testing.T) {
	assert.Equal(t, "Jan 2023", FormatDate("2023-01-15", "zz"))
	assert.Equal(t, "Jan 2023", FormatDate("2023-01-15", ""))
	assert.Equal(t, "Jan 2023", FormatDate("2023-01-15", "en-GB"), "region subtag should be ignored")
}

func TestFormatDate_UnparseablePassesThrough(t *testing.T) {
	assert.Equal(t, "not a date", FormatDate("not a date", "en"))
	assert.Equal(t, "13/45/2020", FormatDate("13/45/2020", "en"))
}

func TestFormatDate_EmptyInput(t *testing.T) {
	assert.Equal(t, "", FormatDate("", "en"))
	assert.Equal(t, "", FormatDate("   ", "en"))
}

func TestFormatDateRange_BothSidesFormatted(t *testing.T) {
	end := "2023-06-01"
	got := FormatDateRange("2021-02-01", &end, "unknown", "Present", "en")
	assert.Equal(t, "Feb 2021 — Jun 2023", got)
}

func TestFormatDateRange_MissingStartUsesUnknownLabel(t *testing.T) {
	end := "2023-06-01"
	got := FormatDateRange("", &end, "unknown", "Present", "en")
	assert.Equal(t, "unknown — Jun 2023", got)
}

func TestFormatDateRange_MissingEndUsesPresentLabel(t *testing.T) {
	got := FormatDateRange("2021-02-01", nil, "unknown", "Present", "en")
	assert.Equal(t, "Feb 2021 — Present", got)
}

func TestFormatDateRange_UnparseableEndUsesPresentLabel(t *testing.T) {
	end := "soon"
	got := FormatDateRange("2021-02-01", &end, "unknown", "Present", "en")
	assert.Equal(t, "Feb 2021 — Present", got)
}

func TestResolveLocale(t *testing.T) {
	assert.Equal(t, "de", ResolveLocale("de"))
	assert.Equal(t, "de", ResolveLocale("DE-at"))
	assert.Equal(t, DefaultLocale, ResolveLocale("tlh"))
	assert.Equal(t, DefaultLocale, ResolveLocale(""))
}

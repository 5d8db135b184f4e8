package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCVRequest_Validate(t *testing.T) {
	valid := CreateCVRequest{Name: "Backend CV"}
	assert.NoError(t, valid.Validate())

	missing := CreateCVRequest{Description: "no name"}
	assert.Error(t, missing.Validate())
}

func TestUpdateCVRequest_Validate_NilFieldsAllowed(t *testing.T) {
	empty := UpdateCVRequest{}
	assert.NoError(t, empty.Validate())

	blank := ""
	invalid := UpdateCVRequest{Name: &blank}
	assert.Error(t, invalid.Validate(), "name may be omitted but not blank")
}

func TestUpsertSkillRequest_Validate(t *testing.T) {
	valid := UpsertSkillRequest{Name: "Go", Mastery: MasteryExpert}
	assert.NoError(t, valid.Validate())

	badLevel := UpsertSkillRequest{Name: "Go", Mastery: "Guru"}
	require.Error(t, badLevel.Validate())

	noName := UpsertSkillRequest{Mastery: MasteryNovice}
	assert.Error(t, noName.Validate())
}

func TestUpsertLanguageRequest_Validate(t *testing.T) {
	valid := UpsertLanguageRequest{Name: "English", Proficiency: "C1"}
	assert.NoError(t, valid.Validate())

	native := UpsertLanguageRequest{Name: "Ukrainian", Proficiency: "Native"}
	assert.NoError(t, native.Validate())

	invalid := UpsertLanguageRequest{Name: "English", Proficiency: "fluent"}
	assert.Error(t, invalid.Validate())
}

func TestCreateProjectRequest_Validate(t *testing.T) {
	valid := CreateProjectRequest{Name: "Billing", StartDate: "2021-03-01"}
	assert.NoError(t, valid.Validate())

	noStart := CreateProjectRequest{Name: "Billing"}
	assert.Error(t, noStart.Validate())
}

func TestCreateCategoryRequest_Validate(t *testing.T) {
	valid := CreateCategoryRequest{Name: "Backend"}
	assert.NoError(t, valid.Validate())

	missing := CreateCategoryRequest{}
	assert.Error(t, missing.Validate())
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPlacementOptions(t *testing.T) {
	placements := []Placement{
		{CompanyName: "Google", Role: "SDE", Difficulty: DifficultyHard, BatchYear: 2023},
		{CompanyName: "Amazon", Role: "SDE", Difficulty: DifficultyMedium, BatchYear: 2024},
		{CompanyName: "Google", Role: "Analyst", Difficulty: DifficultyHard, BatchYear: 2023},
	}

	opts := ExtractPlacementOptions(placements)

	assert.Equal(t, []string{"Amazon", "Google"}, opts.Companies)
	assert.Equal(t, []string{"Analyst", "SDE"}, opts.Roles)
	assert.Equal(t, []string{"Hard", "Medium"}, opts.Difficulties)
	assert.Equal(t, []int{2024, 2023}, opts.Years)
}

func TestExtractPlacementOptionsSkipsMissingFields(t *testing.T) {
	placements := []Placement{
		{CompanyName: "Stripe", BatchYear: 2022},
		{Role: "Backend"},
	}

	opts := ExtractPlacementOptions(placements)

	assert.Equal(t, []string{"Stripe"}, opts.Companies)
	assert.Equal(t, []string{"Backend"}, opts.Roles)
	assert.Empty(t, opts.Difficulties)
	assert.Equal(t, []int{2022}, opts.Years)
}

func TestExtractPlacementOptionsEmptySnapshot(t *testing.T) {
	opts := ExtractPlacementOptions(nil)

	assert.Empty(t, opts.Companies)
	assert.Empty(t, opts.Roles)
	assert.Empty(t, opts.Difficulties)
	assert.Empty(t, opts.Years)
}

func TestExtractHigherEducationOptions(t *testing.T) {
	experiences := []HigherEducation{
		{UniversityName: "TU Munich", Country: "Germany", Course: "MSc Informatics", YearOfAdmission: 2023},
		{UniversityName: "NUS", Country: "Singapore", Course: "MSc CS", YearOfAdmission: 2024},
		{UniversityName: "TU Munich", Country: "Germany", Course: "MSc CS", YearOfAdmission: 2024},
	}

	opts := ExtractHigherEducationOptions(experiences)

	assert.Equal(t, []string{"Germany", "Singapore"}, opts.Countries)
	assert.Equal(t, []string{"NUS", "TU Munich"}, opts.Universities)
	assert.Equal(t, []string{"MSc CS", "MSc Informatics"}, opts.Courses)
	assert.Equal(t, []int{2024, 2023}, opts.Years)
}

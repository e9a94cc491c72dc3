package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlacementInput() map[string]any {
	return map[string]any{
		"companyName": "Google",
		"role":        "SDE Intern",
		"location":    "Bangalore",
		"batchYear":   2024,
		"difficulty":  "Hard",
		"interviewRounds": []any{
			map[string]any{"name": "Online Assessment", "details": "2 DSA questions"},
			map[string]any{"name": "Technical", "details": "Graphs and DP"},
		},
		"commonlyAskedQuestions": []any{"Reverse a linked list"},
		"tips":                   "Practice graph problems",
	}
}

func TestNewPlacementDefaults(t *testing.T) {
	p := NewPlacement(map[string]any{})

	assert.Equal(t, "", p.CompanyName)
	assert.Equal(t, "", p.Role)
	assert.Equal(t, time.Now().Year(), p.BatchYear)
	assert.Equal(t, DifficultyMedium, p.Difficulty)
	require.NotNil(t, p.InterviewRounds)
	require.NotNil(t, p.CommonlyAskedQuestions)
	assert.Empty(t, p.InterviewRounds)
	assert.Empty(t, p.CommonlyAskedQuestions)
	assert.WithinDuration(t, time.Now(), p.CreatedAt, 2*time.Second)
	assert.WithinDuration(t, time.Now(), p.UpdatedAt, 2*time.Second)
}

func TestPlacementValidateValidInput(t *testing.T) {
	p := NewPlacement(validPlacementInput())
	assert.Empty(t, p.Validate())
}

func TestPlacementValidateRulesAreIndependent(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		message string
	}{
		{"missing company", func(m map[string]any) { delete(m, "companyName") }, "Company name is required"},
		{"blank company", func(m map[string]any) { m["companyName"] = "   " }, "Company name is required"},
		{"missing role", func(m map[string]any) { delete(m, "role") }, "Role is required"},
		{"year too old", func(m map[string]any) { m["batchYear"] = 1999 }, "Valid batch year is required"},
		{"year too far out", func(m map[string]any) { m["batchYear"] = time.Now().Year() + 6 }, "Valid batch year is required"},
		{"unknown difficulty", func(m map[string]any) { m["difficulty"] = "Extreme" }, "Difficulty must be Easy, Medium, or Hard"},
		{"rounds not an array", func(m map[string]any) { m["interviewRounds"] = "oops" }, "Interview rounds must be an array"},
		{"questions not an array", func(m map[string]any) { m["commonlyAskedQuestions"] = map[string]any{} }, "Commonly asked questions must be an array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validPlacementInput()
			tt.mutate(raw)

			errs := NewPlacement(raw).Validate()
			assert.Contains(t, errs, tt.message)
			// every other field is still valid, so only this rule trips
			assert.Len(t, errs, 1)
		})
	}
}

func TestPlacementValidateReturnsEveryViolation(t *testing.T) {
	p := NewPlacement(map[string]any{
		"batchYear":  1990,
		"difficulty": "Nope",
	})

	errs := p.Validate()
	assert.Contains(t, errs, "Company name is required")
	assert.Contains(t, errs, "Role is required")
	assert.Contains(t, errs, "Valid batch year is required")
	assert.Contains(t, errs, "Difficulty must be Easy, Medium, or Hard")
	assert.Len(t, errs, 4)
}

func TestPlacementYearBoundaries(t *testing.T) {
	for _, year := range []int{2000, time.Now().Year() + 5} {
		raw := validPlacementInput()
		raw["batchYear"] = year
		assert.Empty(t, NewPlacement(raw).Validate(), "year %d should be valid", year)
	}
	for _, year := range []int{1999, time.Now().Year() + 6} {
		raw := validPlacementInput()
		raw["batchYear"] = year
		assert.Contains(t, NewPlacement(raw).Validate(), "Valid batch year is required", "year %d should be invalid", year)
	}
}

func TestNewPlacementNonNumericYearDefaults(t *testing.T) {
	raw := validPlacementInput()
	raw["batchYear"] = "not a year"

	p := NewPlacement(raw)
	assert.Equal(t, time.Now().Year(), p.BatchYear)
	assert.Empty(t, p.Validate())
}

func TestPlacementDocumentRoundTrip(t *testing.T) {
	p := NewPlacement(validPlacementInput())
	p.CreatedAt = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	p.UpdatedAt = time.Date(2024, 6, 2, 11, 45, 0, 0, time.UTC)

	got := PlacementFromDocument("doc-1", p.Document())

	assert.Equal(t, "doc-1", got.ID)
	assert.Equal(t, p.CompanyName, got.CompanyName)
	assert.Equal(t, p.Role, got.Role)
	assert.Equal(t, p.Location, got.Location)
	assert.Equal(t, p.BatchYear, got.BatchYear)
	assert.Equal(t, p.Difficulty, got.Difficulty)
	assert.Equal(t, p.InterviewRounds, got.InterviewRounds)
	assert.Equal(t, p.CommonlyAskedQuestions, got.CommonlyAskedQuestions)
	assert.Equal(t, p.Tips, got.Tips)
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt))
	assert.True(t, got.UpdatedAt.Equal(p.UpdatedAt))
}

// Stored documents come back from the store as decoded JSON: timestamps as
// RFC3339 strings, rounds as []any. The round trip must still hold.
func TestPlacementDocumentRoundTripThroughJSON(t *testing.T) {
	p := NewPlacement(validPlacementInput())
	p.CreatedAt = time.Date(2023, 1, 15, 8, 0, 0, 0, time.UTC)
	p.UpdatedAt = p.CreatedAt

	data, err := json.Marshal(p.Document())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	got := PlacementFromDocument("doc-2", doc)
	assert.Equal(t, p.CompanyName, got.CompanyName)
	assert.Equal(t, p.BatchYear, got.BatchYear)
	assert.Equal(t, p.InterviewRounds, got.InterviewRounds)
	assert.Equal(t, p.CommonlyAskedQuestions, got.CommonlyAskedQuestions)
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt))
	assert.True(t, got.UpdatedAt.Equal(p.UpdatedAt))
	assert.Empty(t, got.Validate())
}

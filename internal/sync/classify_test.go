package sync

import (
	"testing"

	"github.com/Grihladin/42Connect/models"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestIsPlaceholderProject(t *testing.T) {
	tests := []struct {
		name string
		pn   *string
		slug *string
		want bool
	}{
		{"piscine in name", strPtr("C Piscine"), strPtr("c-piscine"), true},
		{"piscine only in slug", nil, strPtr("piscine-reloaded"), true},
		{"case insensitive", strPtr("PISCINE PHP"), nil, true},
		{"regular project", strPtr("Libft"), strPtr("libft"), false},
		{"empty name falls back to slug", strPtr(""), strPtr("c-piscine"), true},
		{"nothing set", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPlaceholderProject(tt.pn, tt.slug))
		})
	}
}

func TestIsFinishedProject(t *testing.T) {
	tests := []struct {
		name    string
		project models.Project
		want    bool
	}{
		{"explicitly validated", models.Project{Validated: boolPtr(true)}, true},
		{"finished status", models.Project{Status: strPtr("finished")}, true},
		{"uppercase status", models.Project{Status: strPtr("Passed")}, true},
		{"final mark without status", models.Project{FinalMark: intPtr(100)}, true},
		{"final mark with in-progress status", models.Project{FinalMark: intPtr(0), Status: strPtr("waiting_for_correction")}, false},
		{"validated false with mark and finished status", models.Project{Validated: boolPtr(false), FinalMark: intPtr(42), Status: strPtr("done")}, true},
		{"in progress", models.Project{Status: strPtr("in_progress")}, false},
		{"nothing set", models.Project{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFinishedProject(tt.project))
		})
	}
}

func TestIsInProgressProject(t *testing.T) {
	tests := []struct {
		name    string
		project models.Project
		want    bool
	}{
		{"in-progress status", models.Project{Status: strPtr("in_progress")}, true},
		{"searching a group", models.Project{Status: strPtr("searching_a_group")}, true},
		{"no status and no mark", models.Project{}, true},
		{"finished status", models.Project{Status: strPtr("finished")}, false},
		{"validated", models.Project{Validated: boolPtr(true)}, false},
		{"marked with unknown status", models.Project{FinalMark: intPtr(50), Status: strPtr("archived")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInProgressProject(tt.project))
		})
	}
}

// Finished and in-progress are independent advisory labels, not a
// partition: the same inputs are evaluated against each rule set on its
// own terms.
func TestClassification_NotExclusive(t *testing.T) {
	p := models.Project{FinalMark: intPtr(50), Status: strPtr("waiting_for_correction")}

	assert.False(t, IsFinishedProject(p))
	assert.True(t, IsInProgressProject(p))

	marked := models.Project{FinalMark: intPtr(50), Status: strPtr("archived")}
	assert.True(t, IsFinishedProject(marked))
	assert.False(t, IsInProgressProject(marked))
}

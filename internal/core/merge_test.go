package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/inovacc/showcase/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(projects []model.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Name)
	}

	return out
}

func TestMerge_KeepsManualClassification(t *testing.T) {
	prior := []model.Project{{Name: "my-tutorial", Classification: model.ClassificationProject}}
	fetched := []model.Repository{{Name: "my-tutorial"}}

	got := Merge(fetched, prior)
	require.Len(t, got, 1)
	assert.Equal(t, model.ClassificationProject, got[0].Classification)
}

func TestMerge_ComputesEmptyStickyFields(t *testing.T) {
	prior := []model.Project{{Name: "my-tutorial", Classification: "", Image: ""}}
	fetched := []model.Repository{{Name: "my-tutorial"}}

	got := Merge(fetched, prior)
	require.Len(t, got, 1)
	assert.Equal(t, model.ClassificationTraining, got[0].Classification)
	assert.Equal(t, AnimalFor("my-tutorial"), got[0].Image)
}

func TestMerge_DropsUnfetched(t *testing.T) {
	got := Merge(nil, []model.Project{{Name: "old"}})

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMerge_SortByUpdated(t *testing.T) {
	fetched := []model.Repository{
		{Name: "a", UpdatedAt: "2024-01-01"},
		{Name: "b", UpdatedAt: ""},
		{Name: "c", UpdatedAt: "2023-06-01"},
	}

	got := Merge(fetched, nil)

	updated := make([]string, 0, len(got))
	for _, p := range got {
		updated = append(updated, p.UpdatedAt)
	}

	assert.Equal(t, []string{"2024-01-01", "2023-06-01", ""}, updated)
}

func TestMerge_StableTies(t *testing.T) {
	fetched := []model.Repository{
		{Name: "first", UpdatedAt: "2024-01-01"},
		{Name: "none-1"},
		{Name: "second", UpdatedAt: "2024-01-01"},
		{Name: "none-2"},
		{Name: "newest", UpdatedAt: "2025-01-01"},
	}

	got := Merge(fetched, nil)
	assert.Equal(t, []string{"newest", "first", "second", "none-1", "none-2"}, names(got))
}

func TestMerge_PreservesExtraFields(t *testing.T) {
	prior := []model.Project{{
		Name:           "tool",
		Description:    "old description",
		Classification: model.ClassificationProject,
		Image:          "🐼",
		Stars:          1,
		Topics:         []string{"old"},
		Logo:           "assets/images/tool.svg",
		Extra:          map[string]any{"featured": true, "demo_url": "https://example.com"},
	}}
	fetched := []model.Repository{{
		Name:        "tool",
		Description: "new description",
		URL:         "https://github.com/octocat/tool",
		Language:    "Go",
		Stars:       10,
		Forks:       2,
		Topics:      []string{"cli"},
		UpdatedAt:   "2025-01-01T00:00:00Z",
	}}

	got := Merge(fetched, prior)

	want := []model.Project{{
		Name:           "tool",
		Description:    "new description",
		URL:            "https://github.com/octocat/tool",
		Classification: model.ClassificationProject,
		Image:          "🐼",
		Language:       "Go",
		Stars:          10,
		Forks:          2,
		Topics:         []string{"cli"},
		UpdatedAt:      "2025-01-01T00:00:00Z",
		Logo:           "assets/images/tool.svg",
		Extra:          map[string]any{"featured": true, "demo_url": "https://example.com"},
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}

	// The prior record must not be modified.
	assert.Equal(t, "old description", prior[0].Description)
	got[0].Extra["featured"] = false
	assert.Equal(t, true, prior[0].Extra["featured"])
}

func TestMerge_PriorDuplicatesLastWins(t *testing.T) {
	prior := []model.Project{
		{Name: "tool", Classification: model.ClassificationTraining, Image: "🐼"},
		{Name: "tool", Classification: model.ClassificationProject, Image: "🐨"},
	}

	got := Merge([]model.Repository{{Name: "tool"}}, prior)
	require.Len(t, got, 1)
	assert.Equal(t, model.ClassificationProject, got[0].Classification)
	assert.Equal(t, "🐨", got[0].Image)
}

func TestMerge_FetchedDuplicatesLastWins(t *testing.T) {
	fetched := []model.Repository{
		{Name: "dup", Stars: 1, UpdatedAt: "2024-01-01"},
		{Name: "other", UpdatedAt: "2024-01-01"},
		{Name: "dup", Stars: 5, UpdatedAt: "2024-01-01"},
	}

	got := Merge(fetched, nil)
	assert.Equal(t, []string{"dup", "other"}, names(got))
	assert.Equal(t, 5, got[0].Stars)
}

func TestMerge_DefaultsLanguage(t *testing.T) {
	got := Merge([]model.Repository{{Name: "tool"}}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, model.UnknownLanguage, got[0].Language)
	assert.Equal(t, []string{}, got[0].Topics)
}

func TestMerge_EndToEndScenario(t *testing.T) {
	prior := []model.Project{{Name: "demo-app", Classification: model.ClassificationTraining, Image: "🦁"}}
	fetched := []model.Repository{
		{Name: "demo-app", Description: "", Stars: 5, Fork: false, UpdatedAt: "2025-01-01"},
		{Name: "new-lib", Description: "", Stars: 0, Fork: false, UpdatedAt: "2025-02-01"},
	}

	got := Merge(fetched, prior)
	require.Len(t, got, 2)

	assert.Equal(t, "new-lib", got[0].Name)
	assert.Equal(t, model.ClassificationProject, got[0].Classification)
	assert.Equal(t, AnimalFor("new-lib"), got[0].Image)

	assert.Equal(t, "demo-app", got[1].Name)
	assert.Equal(t, model.ClassificationTraining, got[1].Classification)
	assert.Equal(t, "🦁", got[1].Image)
	assert.Equal(t, 5, got[1].Stars)
}

func TestCountByClassification(t *testing.T) {
	counts := CountByClassification([]model.Project{
		{Classification: model.ClassificationTraining},
		{Classification: model.ClassificationProject},
		{Classification: model.ClassificationProject},
	})

	assert.Equal(t, 1, counts[model.ClassificationTraining])
	assert.Equal(t, 2, counts[model.ClassificationProject])
}

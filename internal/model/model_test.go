package model

import "testing"

func TestRepository_WithDefaults(t *testing.T) {
	repo := Repository{Name: "tool", Stars: -1}.WithDefaults()

	if repo.Language != UnknownLanguage {
		t.Errorf("Language = %q, want %q", repo.Language, UnknownLanguage)
	}

	if repo.Stars != 0 {
		t.Errorf("Stars = %d, want 0", repo.Stars)
	}

	if repo.Topics == nil {
		t.Error("Topics = nil, want empty slice")
	}
}

func TestRepository_WithDefaultsKeepsValues(t *testing.T) {
	repo := Repository{Name: "tool", Language: "Go", Stars: 3, Topics: []string{"cli"}}.WithDefaults()

	if repo.Language != "Go" {
		t.Errorf("Language = %q, want %q", repo.Language, "Go")
	}

	if repo.Stars != 3 {
		t.Errorf("Stars = %d, want 3", repo.Stars)
	}

	if len(repo.Topics) != 1 || repo.Topics[0] != "cli" {
		t.Errorf("Topics = %v, want [cli]", repo.Topics)
	}
}

func TestClassification_Valid(t *testing.T) {
	tests := []struct {
		in   Classification
		want bool
	}{
		{ClassificationTraining, true},
		{ClassificationProject, true},
		{"", false},
		{"Project", false},
	}

	for _, tt := range tests {
		if got := tt.in.Valid(); got != tt.want {
			t.Errorf("Classification(%q).Valid() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProject_Clone(t *testing.T) {
	orig := Project{
		Name:   "tool",
		Topics: []string{"cli"},
		Extra:  map[string]any{"featured": true},
	}

	cp := orig.Clone()
	cp.Topics[0] = "changed"
	cp.Extra["featured"] = false

	if orig.Topics[0] != "cli" {
		t.Errorf("original Topics mutated: %v", orig.Topics)
	}

	if orig.Extra["featured"] != true {
		t.Errorf("original Extra mutated: %v", orig.Extra)
	}
}

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/showcase/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `# Projects Configuration
projects:
  - name: new-lib
    classification: project
    image: "🐻"
    language: Go
    stars: 3
    updated_at: "2025-02-01T00:00:00Z"
  - name: demo-app
    classification: training
    image: "🦁"
`

func runRoot(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	return out.String()
}

func writeSampleConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "projects-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	return path
}

func TestConfigShow_Table(t *testing.T) {
	path := writeSampleConfig(t)

	out := runRoot(t, "config", "show", "--config", path, "--json=false", "--log-level", "error")

	assert.Contains(t, out, "new-lib")
	assert.Contains(t, out, "demo-app")
	assert.Contains(t, out, "2025-02-01")
	assert.Contains(t, out, "Total: 2 projects")
}

func TestConfigShow_JSON(t *testing.T) {
	path := writeSampleConfig(t)

	out := runRoot(t, "config", "show", "--config", path, "--json", "--log-level", "error")

	var projects []model.Project
	require.NoError(t, json.Unmarshal([]byte(out), &projects))
	require.Len(t, projects, 2)
	assert.Equal(t, model.ClassificationTraining, projects[1].Classification)
	assert.Equal(t, "🦁", projects[1].Image)
}

func TestConfigShow_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	out := runRoot(t, "config", "show", "--config", path, "--json=false", "--log-level", "error")
	assert.Contains(t, out, "No projects in")
}

func TestVersion(t *testing.T) {
	out := runRoot(t, "version", "--log-level", "error")
	assert.Contains(t, out, "showcase version")
}

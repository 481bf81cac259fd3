package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/inovacc/showcase/internal/core"
	"github.com/inovacc/showcase/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostFromAPIURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: "github.com"},
		{name: "enterprise", input: "https://ghe.example.com/api/v3/", expected: "ghe.example.com"},
		{name: "no host", input: "not a url", expected: "github.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := hostFromAPIURL(tt.input)
			if result != tt.expected {
				t.Errorf("hostFromAPIURL(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a-much-longer-name", 10, "a-much-..."},
		{"abcdef", 3, "abc"},
		{"héllo-wörld-long", 8, "héllo..."},
		{"日本語のリポジトリ", 7, "日本..."},
		{"日本語", 3, "日"},
	}

	for _, tt := range tests {
		if got := truncateString(tt.input, tt.maxLen); got != tt.expected {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
		}
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
	assert.Equal(t, "wörld ", padRight("wörld", 6))
	assert.Equal(t, "日本  ", padRight("日本", 6))
}

func TestPrintProjectsTable_AlignsMultibyteNames(t *testing.T) {
	var buf bytes.Buffer

	printProjectsTable(&buf, []model.Project{
		{Name: "ascii-name", Classification: model.ClassificationProject, Language: "Go"},
		{Name: "ünïcödé-näme", Classification: model.ClassificationProject, Language: "Go"},
	})

	var rows []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "-name") || strings.Contains(line, "-näme") {
			rows = append(rows, line)
		}
	}

	require.Len(t, rows, 2)
	classColumn := func(row string) int {
		return lipgloss.Width(row[:strings.Index(row, "project")])
	}
	assert.Equal(t, classColumn(rows[0]), classColumn(rows[1]))
	assert.True(t, utf8.ValidString(buf.String()))
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer

	printSummary(&buf, &core.GenerateResult{
		ConfigFile: "projects-config.yaml",
		OutputFile: "index.html",
		Rendered:   true,
		Projects:   []model.Project{{Name: "a"}, {Name: "b"}, {Name: "c"}},
		Counts: map[model.Classification]int{
			model.ClassificationProject:  2,
			model.ClassificationTraining: 1,
		},
		Warnings: []core.Warning{
			{Step: core.StepLogos, Project: "c"},
			{Step: core.StepRender, Err: errors.New("bad template")},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "projects-config.yaml")
	assert.Contains(t, out, "Total:")
	assert.Contains(t, out, "index.html")
	assert.Contains(t, out, "write logos (c)")
	assert.Contains(t, out, "render: bad template")
}

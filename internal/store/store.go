package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/inovacc/showcase/internal/application"
	"github.com/inovacc/showcase/internal/encoding"
	"github.com/inovacc/showcase/internal/model"
)

// DefaultPath is the projects document location relative to the site root.
const DefaultPath = "projects-config.yaml"

// Store reads and replaces the projects document.
type Store interface {
	Path() string
	Load() []model.Project
	Save(projects []model.Project, updated time.Time) error
}

// FileStore keeps the projects document in a single file.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a store for path, DefaultPath when empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}

	return &FileStore{path: path}
}

// Path returns the document path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and normalizes the document. A missing or unreadable file
// yields an empty slice.
func (s *FileStore) Load() []model.Project {
	data, err := encoding.ReadFile(s.path)
	if err != nil || data == nil {
		return []model.Project{}
	}

	return Normalize(data)
}

// Save overwrites the document with projects, preceded by the header.
func (s *FileStore) Save(projects []model.Project, updated time.Time) error {
	data, err := Marshal(projects, updated)
	if err != nil {
		return err
	}

	return encoding.WriteFile(s.path, data, 0644)
}

// Marshal renders the full document including the header.
func Marshal(projects []model.Project, updated time.Time) ([]byte, error) {
	if projects == nil {
		projects = []model.Project{}
	}

	body, err := encoding.ToYAML(model.Document{Projects: projects})
	if err != nil {
		return nil, fmt.Errorf("failed to encode projects: %w", err)
	}

	return append([]byte(Header(updated)), body...), nil
}

// Header returns the comment block written above the document.
func Header(updated time.Time) string {
	lines := []string{
		"# Projects Configuration",
		"# This file is dynamically updated with all public repositories from GitHub",
		"# You can manually edit the 'classification' field for each project",
		"# Classification options: training, project",
		"# The 'image' field is automatically generated based on the project name (animal emoji)",
		`# Emoji may be written escaped, e.g. "\U0001F981"; a plain "🦁" works just as well`,
		"# Both fields are kept on later runs; other keys you add are kept as well",
		"#",
		fmt.Sprintf("# To update this file, run: %s generate", application.AppExeName),
		"#",
		"# Last updated: " + updated.UTC().Format(time.RFC3339),
	}

	return strings.Join(lines, "\n") + "\n\n"
}

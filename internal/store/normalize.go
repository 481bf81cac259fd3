package store

import (
	"math"
	"time"

	"github.com/inovacc/showcase/internal/encoding"
	"github.com/inovacc/showcase/internal/model"
)

var knownKeys = map[string]bool{
	"name":           true,
	"description":    true,
	"url":            true,
	"classification": true,
	"image":          true,
	"language":       true,
	"stars":          true,
	"forks":          true,
	"topics":         true,
	"updated_at":     true,
	"logo":           true,
}

// Normalize parses a projects document. It never fails: anything that is
// not a mapping with a "projects" list yields an empty slice.
func Normalize(data []byte) []model.Project {
	doc, err := encoding.ParseYAML(data)
	if err != nil {
		return []model.Project{}
	}

	root, ok := asMap(doc)
	if !ok {
		return []model.Project{}
	}

	items, ok := root["projects"].([]any)
	if !ok {
		return []model.Project{}
	}

	projects := make([]model.Project, 0, len(items))
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			continue
		}

		projects = append(projects, normalizeProject(m))
	}

	return projects
}

func normalizeProject(m map[string]any) model.Project {
	p := model.Project{
		Name:           stringField(m, "name"),
		Description:    stringField(m, "description"),
		URL:            stringField(m, "url"),
		Classification: model.Classification(stringField(m, "classification")),
		Image:          stringField(m, "image"),
		Language:       stringField(m, "language"),
		Stars:          intField(m, "stars"),
		Forks:          intField(m, "forks"),
		Topics:         stringsField(m, "topics"),
		UpdatedAt:      timeField(m, "updated_at"),
		Logo:           stringField(m, "logo"),
	}

	for k, v := range m {
		if knownKeys[k] {
			continue
		}

		if p.Extra == nil {
			p.Extra = make(map[string]any)
		}
		p.Extra[k] = v
	}

	return p
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func timeField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	}

	return ""
}

func intField(m map[string]any, key string) int {
	var n int

	switch v := m[key].(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case uint64:
		if v <= math.MaxInt32 {
			n = int(v)
		}
	case float64:
		if v == math.Trunc(v) && v <= math.MaxInt32 {
			n = int(v)
		}
	}

	if n < 0 {
		return 0
	}

	return n
}

func stringsField(m map[string]any, key string) []string {
	items, ok := m[key].([]any)
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

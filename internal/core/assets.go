package core

import (
	"fmt"
	"html"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/inovacc/showcase/internal/model"
)

// DefaultInitialsLimit is the number of characters drawn on a logo.
const DefaultInitialsLimit = 2

// Asset holds the values derived from a project name for its logo.
type Asset struct {
	Slug     string
	Color    string
	Initials string
}

// DeriveAsset derives the logo values for name. It depends on nothing but
// the name and is recomputed on every run.
func DeriveAsset(name string) Asset {
	return Asset{
		Slug:     Slug(name),
		Color:    ColorFor(name),
		Initials: Initials(name, DefaultInitialsLimit),
	}
}

// Slug replaces every rune that is not a letter or number with '-' and
// lower-cases the result. Distinct names may share a slug.
func Slug(name string) string {
	if name == "" {
		name = "proj"
	}

	slug := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return '-'
	}, name)

	return strings.ToLower(slug)
}

// Initials returns up to limit upper-cased characters for name. Names are
// split on hyphens and whitespace: a single part contributes its first limit
// characters, several parts contribute one leading character each.
func Initials(name string, limit int) string {
	if limit <= 0 {
		limit = DefaultInitialsLimit
	}

	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})

	switch len(parts) {
	case 0:
		return strings.ToUpper(firstRunes(name, limit))
	case 1:
		return strings.ToUpper(firstRunes(parts[0], limit))
	}

	if len(parts) > limit {
		parts = parts[:limit]
	}

	var b strings.Builder
	for _, p := range parts {
		b.WriteString(firstRunes(p, 1))
	}

	return strings.ToUpper(b.String())
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}

	return string(r)
}

// LogoSVG renders the placeholder logo for a project.
func LogoSVG(name string, a Asset) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64" viewBox="0 0 64 64" role="img" aria-label="%s">
  <rect width="100%%" height="100%%" rx="10" fill="%s" />
  <text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" font-family="Inter, system-ui, -apple-system, sans-serif" font-size="24" fill="#ffffff">%s</text>
</svg>`, html.EscapeString(name), a.Color, html.EscapeString(a.Initials))
}

// WriteLogos writes one SVG per project into dir and sets each project's
// Logo to relDir/<slug>.svg. A project whose file cannot be written gets an
// empty Logo and a LogoError; the others are unaffected. Slug collisions
// overwrite.
func WriteLogos(logger *slog.Logger, dir, relDir string, projects []model.Project) ([]model.Project, []*LogoError) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warn("failed to create assets directory", slog.String("dir", dir), slog.Any("error", err))
	}

	var failed []*LogoError

	for i := range projects {
		a := DeriveAsset(projects[i].Name)
		file := a.Slug + ".svg"
		target := filepath.Join(dir, file)

		if err := os.WriteFile(target, []byte(LogoSVG(projects[i].Name, a)), 0644); err != nil {
			logger.Warn("failed to write logo",
				slog.String("project", projects[i].Name),
				slog.Any("error", err))
			projects[i].Logo = ""
			failed = append(failed, &LogoError{Project: projects[i].Name, Path: target, Err: err})

			continue
		}

		projects[i].Logo = path.Join(filepath.ToSlash(relDir), file)
	}

	return projects, failed
}

// Package render renders the static site page from the merged projects.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/inovacc/showcase/internal/encoding"
	"github.com/inovacc/showcase/internal/model"
)

// TemplateName is the file looked up in the templates directory.
const TemplateName = "index.html.tmpl"

//go:embed templates/index.html.tmpl
var defaultTemplate string

// Site holds the page identity strings.
type Site struct {
	Name    string
	Tagline string
	Bio     string
}

// Group is the projects sharing one classification.
type Group struct {
	Classification model.Classification
	Projects       []model.Project
}

// Data is passed to the template.
type Data struct {
	Site            Site
	Projects        []model.Project
	ProjectsByClass []Group
	GeneratedAt     time.Time
}

// NewData builds the template data. Projects keep their order inside each
// group; groups are ordered project, training, then any other label in
// first-seen order. An empty classification counts as project.
func NewData(site Site, projects []model.Project, generated time.Time) Data {
	order := []model.Classification{model.ClassificationProject, model.ClassificationTraining}
	groups := make(map[model.Classification][]model.Project)

	for _, p := range projects {
		cls := p.Classification
		if cls == "" {
			cls = model.ClassificationProject
		}

		if _, seen := groups[cls]; !seen && !cls.Valid() {
			order = append(order, cls)
		}
		groups[cls] = append(groups[cls], p)
	}

	byClass := make([]Group, 0, len(order))
	for _, cls := range order {
		if len(groups[cls]) == 0 {
			continue
		}
		byClass = append(byClass, Group{Classification: cls, Projects: groups[cls]})
	}

	return Data{
		Site:            site,
		Projects:        projects,
		ProjectsByClass: byClass,
		GeneratedAt:     generated.UTC(),
	}
}

// Renderer renders the page template.
type Renderer struct {
	templatesDir string
}

// NewRenderer returns a renderer that prefers templatesDir/index.html.tmpl
// over the built-in template.
func NewRenderer(templatesDir string) *Renderer {
	return &Renderer{templatesDir: templatesDir}
}

// Render executes the template with data.
func (r *Renderer) Render(data Data) ([]byte, error) {
	tmpl, err := r.parseTemplate()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return buf.Bytes(), nil
}

// RenderFile renders data and writes it to path.
func (r *Renderer) RenderFile(path string, data Data) error {
	out, err := r.Render(data)
	if err != nil {
		return err
	}

	if err := encoding.WriteFile(path, out, 0644); err != nil {
		return &RenderError{
			Message: fmt.Sprintf("failed to write %s", path),
			Cause:   err,
		}
	}

	return nil
}

func (r *Renderer) parseTemplate() (*template.Template, error) {
	content := defaultTemplate
	name := "default"

	if r.templatesDir != "" {
		path := filepath.Join(r.templatesDir, TemplateName)
		if encoding.FileExists(path) {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, &TemplateError{
					Message: fmt.Sprintf("failed to read template file: %s", path),
					Cause:   err,
				}
			}
			content = string(data)
			name = path
		}
	}

	tmpl, err := template.New(TemplateName).Funcs(sprig.FuncMap()).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to parse template %s", name),
			Cause:   err,
		}
	}

	return tmpl, nil
}

package core

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/showcase/internal/model"
	"github.com/inovacc/showcase/internal/render"
	"github.com/inovacc/showcase/internal/store"
)

// Default output locations, relative to the site root.
const (
	DefaultAssetsDir    = "assets/images"
	DefaultTemplatesDir = "templates"
	DefaultOutputFile   = "index.html"
)

// GenerateOptions configures a run
type GenerateOptions struct {
	// Login is the account to list; empty means the authenticated user
	Login string

	// Root is the site root that relative paths resolve against
	Root string

	// ConfigFile is the projects document path
	ConfigFile string

	// Store holds the projects document; a FileStore at ConfigFile when nil
	Store store.Store

	// AssetsDir is where logos are written; logo paths are recorded relative to Root
	AssetsDir string

	// TemplatesDir may hold an index.html.tmpl override
	TemplatesDir string

	// OutputFile is the rendered page path
	OutputFile string

	SkipAssets bool
	SkipRender bool

	Logger *slog.Logger

	// Now is the clock; time.Now when nil
	Now func() time.Time
}

func (o GenerateOptions) withDefaults() GenerateOptions {
	if o.ConfigFile == "" {
		o.ConfigFile = store.DefaultPath
	}

	if o.AssetsDir == "" {
		o.AssetsDir = DefaultAssetsDir
	}

	if o.TemplatesDir == "" {
		o.TemplatesDir = DefaultTemplatesDir
	}

	if o.OutputFile == "" {
		o.OutputFile = DefaultOutputFile
	}

	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	if o.Now == nil {
		o.Now = time.Now
	}

	return o
}

func (o GenerateOptions) resolve(p string) string {
	if filepath.IsAbs(p) || o.Root == "" {
		return p
	}

	return filepath.Join(o.Root, p)
}

// Warning records a recovered failure.
type Warning struct {
	Step    Step
	Project string
	Err     error
}

// GenerateResult summarizes a run
type GenerateResult struct {
	RunID      string
	Profile    model.Profile
	Site       render.Site
	Projects   []model.Project
	Counts     map[model.Classification]int
	ConfigFile string
	OutputFile string
	Rendered   bool
	Warnings   []Warning
}

// Generate fetches repositories, merges them with the persisted projects,
// writes logos, saves the projects document and renders the page.
//
// Fetch and config write failures abort the run. Logo and render failures
// are logged and recorded as warnings.
func Generate(ctx context.Context, src RepositorySource, opts GenerateOptions) (*GenerateResult, error) {
	opts = opts.withDefaults()

	runID := uuid.NewString()
	logger := opts.Logger.With(slog.String("run_id", runID))

	logger.Info("fetching repositories from GitHub", slog.String("user", displayLogin(opts.Login)))

	profile, err := src.Profile(ctx, opts.Login)
	if err != nil {
		logger.Error("failed to fetch profile", slog.Any("error", err))
		return nil, err
	}

	login := opts.Login
	if login == "" {
		login = profile.Login
	}

	fetched, err := src.Repositories(ctx, login)
	if err != nil {
		logger.Error("failed to fetch repositories", slog.Any("error", err))
		return nil, err
	}

	public := make([]model.Repository, 0, len(fetched))
	for _, r := range fetched {
		if !r.Private {
			public = append(public, r)
		}
	}

	logger.Info("found public repositories", slog.Int("count", len(public)))

	st := opts.Store
	if st == nil {
		st = store.NewFileStore(opts.resolve(opts.ConfigFile))
	}
	configFile := st.Path()

	prior := st.Load()
	logger.Debug("loaded projects config", slog.String("path", configFile), slog.Int("projects", len(prior)))

	projects := Merge(public, prior)

	result := &GenerateResult{
		RunID:      runID,
		Profile:    profile,
		ConfigFile: configFile,
	}

	if !opts.SkipAssets {
		rel := filepath.ToSlash(opts.AssetsDir)
		var failed []*LogoError
		projects, failed = WriteLogos(logger, opts.resolve(opts.AssetsDir), rel, projects)

		for _, le := range failed {
			result.Warnings = append(result.Warnings, Warning{Step: StepLogos, Project: le.Project, Err: le})
		}
	}

	now := opts.Now()

	if err := st.Save(projects, now); err != nil {
		logger.Error("failed to write config file", slog.Any("error", err))
		return nil, &ConfigWriteError{Path: configFile, Err: err}
	}

	result.Projects = projects
	result.Counts = CountByClassification(projects)

	logger.Info("config file updated",
		slog.String("path", configFile),
		slog.Int("total", len(projects)),
		slog.Int("training", result.Counts[model.ClassificationTraining]),
		slog.Int("projects", result.Counts[model.ClassificationProject]))

	result.Site = SiteFromProfile(profile)

	if opts.SkipRender {
		logger.Debug("skipping HTML render")
		return result, nil
	}

	outputFile := opts.resolve(opts.OutputFile)
	renderer := render.NewRenderer(opts.resolve(opts.TemplatesDir))

	if err := renderer.RenderFile(outputFile, render.NewData(result.Site, projects, now)); err != nil {
		logger.Error("failed to render index", slog.Any("error", err))
		result.Warnings = append(result.Warnings, Warning{Step: StepRender, Err: err})

		return result, nil
	}

	result.OutputFile = outputFile
	result.Rendered = true

	logger.Info("rendered static site", slog.String("path", outputFile))

	return result, nil
}

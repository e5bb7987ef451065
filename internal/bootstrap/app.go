package bootstrap

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-scanner/internal/match"
	"resume-scanner/internal/scans"
	"resume-scanner/internal/services/health"
	"resume-scanner/internal/shared/config"
	"resume-scanner/internal/shared/server"
	"resume-scanner/internal/shared/telemetry"
	"resume-scanner/internal/skills"
	"resume-scanner/internal/summary"
	"resume-scanner/internal/taxonomy"
)

// App holds shared dependencies.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	Taxonomy     *taxonomy.Taxonomy
	ScansService *scans.Service
	ScansHandler *scans.Handler
}

// Build prepares dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if cfg.LogLevel != "" && !telemetry.SetLevel(cfg.LogLevel) {
		return nil, fmt.Errorf("bootstrap: unknown log level %q", cfg.LogLevel)
	}

	svc, tax, err := BuildService(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:       cfg,
		Taxonomy:     tax,
		ScansService: svc,
		ScansHandler: scans.NewHandler(svc, tax, cfg.MaxUploadBytes),
	}
	healthSvc := health.NewService(map[string]health.Check{
		"taxonomy": func() error {
			if len(tax.Categories()) == 0 {
				return errors.New("taxonomy has no categories")
			}
			return nil
		},
	})
	app.Router = server.NewRouter(cfg, healthSvc, app.ScansHandler)

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":        cfg.Env,
		"nlp":        cfg.NLPEnabled,
		"taxonomy":   taxonomySource(cfg),
		"categories": len(tax.Categories()),
	})
	return app, nil
}

// BuildService wires the scan pipeline without HTTP, for the CLI.
func BuildService(cfg config.Config) (*scans.Service, *taxonomy.Taxonomy, error) {
	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return nil, nil, err
	}

	var annotator skills.Annotator = skills.NopAnnotator{}
	if cfg.NLPEnabled {
		ann, err := skills.NewProseAnnotator()
		if err != nil {
			return nil, nil, fmt.Errorf("bootstrap: %w", err)
		}
		annotator = ann
	}

	svc := &scans.Service{
		Extractor:  skills.NewExtractor(tax, annotator),
		Scorer:     match.NewScorer(tax),
		Summarizer: summary.NewSummarizer(tax),
	}
	return svc, tax, nil
}

func loadTaxonomy(cfg config.Config) (*taxonomy.Taxonomy, error) {
	if cfg.TaxonomyFile == "" {
		tax, err := taxonomy.Default()
		if err != nil {
			return nil, fmt.Errorf("bootstrap: default taxonomy: %w", err)
		}
		return tax, nil
	}
	tax, err := taxonomy.LoadFile(cfg.TaxonomyFile)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return tax, nil
}

func taxonomySource(cfg config.Config) string {
	if cfg.TaxonomyFile == "" {
		return "embedded"
	}
	return cfg.TaxonomyFile
}

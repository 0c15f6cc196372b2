package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"shoplink/internal/logger"
	"shoplink/internal/models"
)

// Loader supplies the raw orders for a run. Loading failures are fatal.
type Loader interface {
	Load() ([]models.Order, error)
}

// Writer persists the cleaned orders and their statistics. Write failures
// are fatal; no partial output is kept.
type Writer interface {
	Write(orders []models.Order, stats *models.Statistics) error
}

// Pipeline sequences validation, transformation, and aggregation between a
// loader and a writer. Invalid records are filtered and reported, never
// fatal; any loader or writer error aborts the run.
type Pipeline struct {
	loader      Loader
	writer      Writer
	validator   *Validator
	transformer *Transformer
	analyzer    *Analyzer
	logger      *logger.Logger
}

// New creates a pipeline wired to the given loader and writer.
func New(loader Loader, writer Writer, log *logger.Logger) *Pipeline {
	return &Pipeline{
		loader:      loader,
		writer:      writer,
		validator:   NewValidator(),
		transformer: NewTransformer(),
		analyzer:    NewAnalyzer(),
		logger:      log,
	}
}

// Run executes one complete pass: load, validate, transform, analyze,
// write. Returns the run result on success.
func (p *Pipeline) Run() (*models.Result, error) {
	runID := uuid.NewString()
	log := p.logger.With("run_id", runID)

	log.Info("Reading orders...")

	raw, err := p.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}

	log.Info("Read orders", "count", len(raw))

	log.Info("Validating orders...")

	valid, summary := p.validator.Validate(raw)
	log.Info("Validation complete",
		"valid", summary.ValidRows, "invalid", summary.InvalidRows)

	for reason, count := range summary.Reasons {
		log.Debug("Rejection reason", "reason", reason, "count", count)
	}

	log.Info("Transforming orders...")

	transformed, err := p.transformer.Transform(valid)
	if err != nil {
		return nil, fmt.Errorf("transform failed: %w", err)
	}

	log.Info("Analyzing orders...")

	stats := p.analyzer.Analyze(transformed)
	log.Info("Analysis complete",
		"total_revenue", stats.TotalRevenue,
		"average_revenue", stats.AverageRevenue)

	log.Info("Exporting results...")

	if err := p.writer.Write(transformed, &stats); err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}

	return &models.Result{
		RunID:             runID,
		ValidationSummary: summary,
		Statistics:        &stats,
		TotalProcessed:    len(transformed),
	}, nil
}

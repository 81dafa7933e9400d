package etl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/JebBesecker03/roguedex-Tableau/internal/document"
	"github.com/JebBesecker03/roguedex-Tableau/internal/model"
	"github.com/JebBesecker03/roguedex-Tableau/internal/normalize"
	"github.com/JebBesecker03/roguedex-Tableau/internal/storage"
)

// RunConfig holds runtime settings for the normalize pipeline.
type RunConfig struct {
	InputDir string
	FailFast bool
}

// Runner drives the per-document pipeline: discover, load, normalize,
// accumulate, then write each table once.
type Runner struct {
	cfg     RunConfig
	storage storage.Storage
	logger  *zap.Logger
}

// NewRunner builds a Runner with its dependencies.
func NewRunner(cfg RunConfig, storageSink storage.Storage, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{cfg: cfg, storage: storageSink, logger: logger}
}

// Summary reports what a pipeline run produced.
type Summary struct {
	Documents    int
	Skipped      int
	Runs         int
	Encounters   int
	Participants int
}

// Run executes the batch. Documents are processed one at a time in
// lexicographic order so output is reproducible. A bad document is
// logged and skipped unless FailFast is set; rows already accumulated
// from other documents are unaffected either way.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if r.storage == nil {
		return Summary{}, fmt.Errorf("storage is nil")
	}
	if r.cfg.InputDir == "" {
		return Summary{}, fmt.Errorf("input dir is required")
	}

	files, err := filepath.Glob(filepath.Join(r.cfg.InputDir, "*.json"))
	if err != nil {
		return Summary{}, fmt.Errorf("list input dir: %w", err)
	}
	sort.Strings(files)

	if len(files) == 0 {
		r.logger.Info("no input documents", zap.String("input_dir", r.cfg.InputDir))
	}

	var summary Summary
	var runRows, encounterRows, participantRows []model.Row

	for _, path := range files {
		select {
		case <-ctx.Done():
			return Summary{}, ctx.Err()
		default:
		}

		result, err := processDocument(path)
		if err != nil {
			if r.cfg.FailFast {
				return Summary{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
			}
			summary.Skipped++
			r.logger.Warn("document skipped", zap.String("document", filepath.Base(path)), zap.Error(err))
			continue
		}

		summary.Documents++
		runRows = append(runRows, result.Run.Row())
		for _, enc := range result.Encounters {
			encounterRows = append(encounterRows, enc.Row())
		}
		for _, p := range result.Participants {
			participantRows = append(participantRows, p.Row())
		}
	}

	if err := r.storage.WriteTable(model.RunsTable, runRows); err != nil {
		return Summary{}, fmt.Errorf("write runs: %w", err)
	}
	if err := r.storage.WriteTable(model.EncountersTable, encounterRows); err != nil {
		return Summary{}, fmt.Errorf("write encounters: %w", err)
	}
	if err := r.storage.WriteTable(model.ParticipantsTable, participantRows); err != nil {
		return Summary{}, fmt.Errorf("write participants: %w", err)
	}

	summary.Runs = len(runRows)
	summary.Encounters = len(encounterRows)
	summary.Participants = len(participantRows)

	r.logger.Info("normalize complete",
		zap.Int("documents", summary.Documents),
		zap.Int("skipped", summary.Skipped),
		zap.Int("runs", summary.Runs),
		zap.Int("encounters", summary.Encounters),
		zap.Int("participants", summary.Participants),
	)
	return summary, nil
}

func processDocument(path string) (normalize.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return normalize.Result{}, fmt.Errorf("read document: %w", err)
	}

	doc, err := document.Load(data)
	if err != nil {
		return normalize.Result{}, err
	}

	docID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return normalize.Normalize(docID, doc)
}

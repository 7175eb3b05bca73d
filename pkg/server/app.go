package server

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"BinPulse/internal/domain/models"
	"BinPulse/internal/usecase"
	"BinPulse/pkg/config"
	"BinPulse/pkg/logger"
)

// App encapsulates an engine instance for one-shot analysis runs: it
// rehydrates history from a file in the export/import format, computes a
// snapshot for the given position, and writes it as JSON.
type App struct {
	cfg      *config.Config
	analysis *usecase.AnalysisUseCase
	log      *logger.Logger
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, analysis *usecase.AnalysisUseCase, log *logger.Logger) *App {
	return &App{cfg: cfg, analysis: analysis, log: log}
}

// RunParams carries the per-run inputs supplied by the caller.
type RunParams struct {
	HistoryPath string
	Range       models.PositionRange
	ActiveBin   models.ActiveBinInfo
	Output      io.Writer
}

// Run executes one analysis pass and writes the snapshot to p.Output
// (stdout when nil).
func (a *App) Run(p RunParams) error {
	out := p.Output
	if out == nil {
		out = os.Stdout
	}

	if p.HistoryPath != "" {
		samples, err := loadHistoryFile(p.HistoryPath)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		a.analysis.ImportHistory(samples)
		a.log.Info("history loaded",
			logger.String("path", p.HistoryPath),
			logger.Int("samples", len(samples)))
	}

	snap, err := a.analysis.Snapshot(p.Range, p.ActiveBin)
	if err != nil {
		return fmt.Errorf("analyze position: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// loadHistoryFile reads an ordered sample list in the export/import
// contract format.
func loadHistoryFile(path string) ([]models.BinSample, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var samples []models.BinSample
	if err := json.Unmarshal(b, &samples); err != nil {
		return nil, fmt.Errorf("parse samples: %w", err)
	}
	return samples, nil
}

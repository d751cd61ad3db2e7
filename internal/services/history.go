package services

import (
	"context"
	"fmt"
	"time"

	"github.com/livingtree/prpcheck/internal/domain"
	"github.com/livingtree/prpcheck/internal/logging"
	"github.com/livingtree/prpcheck/internal/ports"
)

// HistoryService reads and prunes recorded validation runs
type HistoryService struct {
	pruner ports.RunPruner
	reader ports.RunReader
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(reader ports.RunReader, pruner ports.RunPruner) *HistoryService {
	return &HistoryService{
		pruner: pruner,
		reader: reader,
	}
}

// List returns runs matching filter, newest first
func (s *HistoryService) List(ctx context.Context, filter ports.RunFilter) ([]domain.ValidationRun, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return nil, fmt.Errorf("--to (%s) is before --from (%s)",
			filter.To.Format(time.RFC3339), filter.From.Format(time.RFC3339))
	}

	runs, err := s.reader.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list validation runs: %w", err)
	}

	logging.Logger.Debug("Listed validation runs", "count", len(runs))
	return runs, nil
}

// Get returns a single run by ID
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.ValidationRun, error) {
	run, err := s.reader.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return run, nil
}

// Prune deletes runs older than olderThan and returns how many were removed
func (s *HistoryService) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("retention must be positive, got %s", olderThan)
	}

	cutoff := time.Now().Add(-olderThan)
	logging.Logger.Info("Pruning validation runs", "cutoff", cutoff)

	return s.pruner.Prune(ctx, cutoff)
}

// RetentionPeriod converts a retention in days to a duration
func RetentionPeriod(days int) time.Duration {
	return time.Duration(days) * 24 * time.Hour
}

package ports

import (
	"context"
	"time"

	"github.com/livingtree/prpcheck/internal/domain"
)

// RunFilter specifies criteria for listing validation runs
type RunFilter struct {
	From        time.Time
	InvalidOnly bool
	Limit       int
	PRPPath     string
	Source      domain.RunSource
	To          time.Time
}

// RunRecorder stores validation runs
type RunRecorder interface {
	Record(ctx context.Context, run domain.ValidationRun) error
}

// RunReader reads validation runs
type RunReader interface {
	Get(ctx context.Context, id string) (*domain.ValidationRun, error)
	List(ctx context.Context, filter RunFilter) ([]domain.ValidationRun, error)
}

// RunPruner deletes old validation runs
type RunPruner interface {
	// Prune deletes runs created before the cutoff and returns how many were removed
	Prune(ctx context.Context, before time.Time) (int64, error)
}

// RunRepository is the composite interface
type RunRepository interface {
	RunRecorder
	RunReader
	RunPruner
	Close() error
}

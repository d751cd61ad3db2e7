package cmd

import (
	"context"
	"fmt"
	"sync"

	adapterfs "github.com/livingtree/prpcheck/internal/adapters/filesystem"
	adapterstorage "github.com/livingtree/prpcheck/internal/adapters/storage"
	"github.com/livingtree/prpcheck/internal/config"
	"github.com/livingtree/prpcheck/internal/domain"
	"github.com/livingtree/prpcheck/internal/logging"
	"github.com/livingtree/prpcheck/internal/paths"
	"github.com/livingtree/prpcheck/internal/ports"
	"github.com/livingtree/prpcheck/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ValidationService *services.ValidationService

	Settings *config.Settings

	// Internal - the history database is opened on first use
	mu         sync.Mutex
	opened     bool
	runRepo    ports.RunRepository
	storageErr error
}

// NewContainer creates a new Container with all dependencies wired.
// Nothing touches the history database until a run is recorded or a
// history command asks for it. A database that cannot be opened leaves
// validation working without recording.
func NewContainer(settings *config.Settings) *Container {
	if settings == nil {
		settings = &config.Settings{}
	}

	container := &Container{Settings: settings}

	var recorder ports.RunRecorder
	if settings.ShouldRecordHistory() {
		recorder = &lazyRecorder{container: container}
	}
	container.ValidationService = services.NewValidationService(adapterfs.NewDocumentReader(""), recorder)

	return container
}

// repository opens the history database once and caches the outcome
func (c *Container) repository() (ports.RunRepository, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.opened {
		c.opened = true
		repo, err := adapterstorage.NewSQLiteRepository(paths.GetDBPath())
		if err != nil {
			logging.Logger.Warn("History database unavailable", "error", err, "path", paths.GetDBPath())
			c.storageErr = err
		} else {
			c.runRepo = repo
		}
	}

	if c.runRepo == nil {
		return nil, c.storageErr
	}
	return c.runRepo, nil
}

// History returns the history service, or why it is unavailable
func (c *Container) History() (*services.HistoryService, error) {
	repo, err := c.repository()
	if err != nil {
		return nil, fmt.Errorf("history database unavailable: %w", err)
	}
	return services.NewHistoryService(repo, repo), nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.runRepo != nil {
		return c.runRepo.Close()
	}
	return nil
}

// lazyRecorder opens the history database on the first recorded run
type lazyRecorder struct {
	container *Container
}

func (r *lazyRecorder) Record(ctx context.Context, run domain.ValidationRun) error {
	repo, err := r.container.repository()
	if err != nil {
		return err
	}
	return repo.Record(ctx, run)
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/livingtree/prpcheck/internal/domain"
	"github.com/livingtree/prpcheck/internal/logging"
	"github.com/livingtree/prpcheck/internal/paths"
	"github.com/livingtree/prpcheck/internal/ports"
)

// SQLiteRepository implements ports.RunRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.RunRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the prpcheck logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("PRPCHECK_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the history database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = paths.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Hooks from several Claude sessions may write at once
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&ValidationRunModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate validation_runs schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record implements RunRecorder.Record
func (r *SQLiteRepository) Record(ctx context.Context, run domain.ValidationRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC()

	model := domainToRunModel(run)
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to record validation run: %w", err)
		}
		return nil
	}, 3)
}

// Get implements RunReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.ValidationRun, error) {
	var model ValidationRunModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRunNotFound, id)
		}
		return nil, err
	}

	run := runModelToDomain(model)
	return &run, nil
}

// List implements RunReader.List, newest first
func (r *SQLiteRepository) List(ctx context.Context, filter ports.RunFilter) ([]domain.ValidationRun, error) {
	var models []ValidationRunModel

	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Model(&ValidationRunModel{})
		if filter.PRPPath != "" {
			query = query.Where("prp_path = ?", filter.PRPPath)
		}
		if filter.Source != "" {
			query = query.Where("source = ?", string(filter.Source))
		}
		if filter.InvalidOnly {
			query = query.Where("valid = ?", false)
		}
		if !filter.From.IsZero() {
			query = query.Where("created_at >= ?", filter.From.UTC())
		}
		if !filter.To.IsZero() {
			query = query.Where("created_at <= ?", filter.To.UTC())
		}
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit)
		}
		return query.Order("created_at DESC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	runs := make([]domain.ValidationRun, len(models))
	for i, m := range models {
		runs[i] = runModelToDomain(m)
	}
	return runs, nil
}

// Prune implements RunPruner.Prune
func (r *SQLiteRepository) Prune(ctx context.Context, before time.Time) (int64, error) {
	var deleted int64

	err := withRetry(func() error {
		result := r.db.WithContext(ctx).
			Where("created_at < ?", before.UTC()).
			Delete(&ValidationRunModel{})
		deleted = result.RowsAffected
		return result.Error
	}, 3)
	if err != nil {
		return 0, fmt.Errorf("failed to prune validation runs: %w", err)
	}

	logging.Logger.Info("Pruned validation runs", "before", before, "deleted", deleted)
	return deleted, nil
}

// withRetry retries fn while SQLite reports the database busy or locked
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}

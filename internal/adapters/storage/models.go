package storage

import "time"

// ValidationRunModel is the GORM model for the validation_runs table
type ValidationRunModel struct {
	CWD             string    `gorm:"column:cwd;default:''"`
	CreatedAt       time.Time `gorm:"not null;index:idx_created_at"`
	Error           string    `gorm:"default:''"`
	HasDocker       bool      `gorm:"not null;default:false"`
	HasPnpm         bool      `gorm:"not null;default:false"`
	HasValidation   bool      `gorm:"not null;default:false"`
	ID              string    `gorm:"primaryKey"`
	MissingSections string    `gorm:"default:''"` // newline separated, declaration order
	Outcome         string    `gorm:"not null;check:outcome IN ('input_error','missing_sections','no_path','not_found','read_error','scored')"`
	PRPPath         string    `gorm:"column:prp_path;not null;default:'';index:idx_prp_path"`
	Score           *int      `gorm:"default:null"`
	SessionID       string    `gorm:"column:session_id;default:''"`
	Source          string    `gorm:"not null;index:idx_source;check:source IN ('hook','check')"`
	Valid           bool      `gorm:"not null;default:false;index:idx_valid"`
}

// TableName specifies the table name for GORM
func (ValidationRunModel) TableName() string { return "validation_runs" }

package storage

import (
	"strings"

	"github.com/livingtree/prpcheck/internal/domain"
)

// runModelToDomain converts a ValidationRunModel (GORM) to domain.ValidationRun
func runModelToDomain(m ValidationRunModel) domain.ValidationRun {
	var missing []string
	if m.MissingSections != "" {
		missing = strings.Split(m.MissingSections, "\n")
	}

	return domain.ValidationRun{
		CWD:       m.CWD,
		CreatedAt: m.CreatedAt,
		Error:     m.Error,
		Heuristics: domain.Heuristics{
			HasDocker:     m.HasDocker,
			HasPnpm:       m.HasPnpm,
			HasValidation: m.HasValidation,
		},
		ID:              m.ID,
		MissingSections: missing,
		Outcome:         domain.Outcome(m.Outcome),
		PRPPath:         m.PRPPath,
		Score:           m.Score,
		SessionID:       m.SessionID,
		Source:          domain.RunSource(m.Source),
		Valid:           m.Valid,
	}
}

// domainToRunModel converts a domain.ValidationRun to ValidationRunModel (GORM)
func domainToRunModel(r domain.ValidationRun) ValidationRunModel {
	return ValidationRunModel{
		CWD:             r.CWD,
		CreatedAt:       r.CreatedAt,
		Error:           r.Error,
		HasDocker:       r.Heuristics.HasDocker,
		HasPnpm:         r.Heuristics.HasPnpm,
		HasValidation:   r.Heuristics.HasValidation,
		ID:              r.ID,
		MissingSections: strings.Join(r.MissingSections, "\n"),
		Outcome:         string(r.Outcome),
		PRPPath:         r.PRPPath,
		Score:           r.Score,
		SessionID:       r.SessionID,
		Source:          string(r.Source),
		Valid:           r.Valid,
	}
}

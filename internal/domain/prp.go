package domain

import "strings"

// RequiredSections lists the section markers every PRP must contain, in the
// order they are reported when missing
var RequiredSections = []string{
	"## Goal",
	"## Why",
	"## What",
	"## All Needed Context",
	"## Implementation Blueprint",
	"## Validation Loop",
}

// Score weights
const (
	BaseScore       = 5
	DockerBonus     = 2
	PassingScore    = 8
	PnpmBonus       = 2
	ValidationBonus = 1
)

// Heuristics holds the keyword checks run over a PRP's content
type Heuristics struct {
	HasDocker     bool `json:"has_docker" yaml:"has_docker"`
	HasPnpm       bool `json:"has_pnpm" yaml:"has_pnpm"`
	HasValidation bool `json:"has_validation" yaml:"has_validation"`
}

// DetectHeuristics runs the keyword checks over content (case-sensitive)
func DetectHeuristics(content string) Heuristics {
	return Heuristics{
		HasDocker:     strings.Contains(content, "docker-compose") || strings.Contains(content, "Docker"),
		HasPnpm:       strings.Contains(content, "pnpm"),
		HasValidation: strings.Contains(content, "pnpm lint") || strings.Contains(content, "pytest"),
	}
}

// Score returns the additive heuristic score, between BaseScore and 10
func (h Heuristics) Score() int {
	score := BaseScore
	if h.HasPnpm {
		score += PnpmBonus
	}
	if h.HasDocker {
		score += DockerBonus
	}
	if h.HasValidation {
		score += ValidationBonus
	}
	return score
}

// MissingSections returns the required sections not found in content,
// in RequiredSections order
func MissingSections(content string) []string {
	var missing []string
	for _, section := range RequiredSections {
		if !strings.Contains(content, section) {
			missing = append(missing, section)
		}
	}
	return missing
}

package domain

import "encoding/json"

// Outcome classifies how a validation ended
type Outcome string

const (
	OutcomeInputError      Outcome = "input_error"
	OutcomeMissingSections Outcome = "missing_sections"
	OutcomeNoPath          Outcome = "no_path"
	OutcomeNotFound        Outcome = "not_found"
	OutcomeReadError       Outcome = "read_error"
	OutcomeScored          Outcome = "scored"
)

// Verdict messages
const (
	MessageFileNotFound = "PRP file not found"
	MessageInvalidInput = "invalid hook input"
	MessageNoPath       = "No PRP path found"
	MessageUnreadable   = "PRP file could not be read"
)

// Verdict is the single result printed per validation.
// Field order is the key order on the wire; nil fields are left out so each
// outcome keeps its own shape.
type Verdict struct {
	Valid           bool     `json:"valid" yaml:"valid"`
	Error           string   `json:"error,omitempty" yaml:"error,omitempty"`
	MissingSections []string `json:"missing_sections,omitempty" yaml:"missing_sections,omitempty"`
	Score           *int     `json:"score,omitempty" yaml:"score,omitempty"`
	HasPnpm         *bool    `json:"has_pnpm,omitempty" yaml:"has_pnpm,omitempty"`
	HasDocker       *bool    `json:"has_docker,omitempty" yaml:"has_docker,omitempty"`
	HasValidation   *bool    `json:"has_validation,omitempty" yaml:"has_validation,omitempty"`
	Note            string   `json:"note,omitempty" yaml:"note,omitempty"`

	Outcome Outcome `json:"-" yaml:"-"`
}

// NoPathVerdict is returned when the prompt references no PRP
func NoPathVerdict() Verdict {
	return Verdict{Valid: true, Note: MessageNoPath, Outcome: OutcomeNoPath}
}

// NotFoundVerdict is returned when the referenced PRP does not exist
func NotFoundVerdict() Verdict {
	return Verdict{Valid: false, Error: MessageFileNotFound, Outcome: OutcomeNotFound}
}

// MissingSectionsVerdict is returned when required sections are absent
func MissingSectionsVerdict(missing []string) Verdict {
	return Verdict{Valid: false, MissingSections: missing, Outcome: OutcomeMissingSections}
}

// ScoredVerdict is returned once all sections are present
func ScoredVerdict(h Heuristics) Verdict {
	score := h.Score()
	return Verdict{
		Valid:         score >= PassingScore,
		Score:         &score,
		HasPnpm:       &h.HasPnpm,
		HasDocker:     &h.HasDocker,
		HasValidation: &h.HasValidation,
		Outcome:       OutcomeScored,
	}
}

// InputErrorVerdict is returned when the hook payload cannot be decoded
func InputErrorVerdict() Verdict {
	return Verdict{Valid: false, Error: MessageInvalidInput, Outcome: OutcomeInputError}
}

// ReadErrorVerdict is returned when the PRP exists but cannot be read
func ReadErrorVerdict() Verdict {
	return Verdict{Valid: false, Error: MessageUnreadable, Outcome: OutcomeReadError}
}

// Heuristics returns the heuristic flags of a scored verdict
func (v Verdict) Heuristics() Heuristics {
	var h Heuristics
	if v.HasPnpm != nil {
		h.HasPnpm = *v.HasPnpm
	}
	if v.HasDocker != nil {
		h.HasDocker = *v.HasDocker
	}
	if v.HasValidation != nil {
		h.HasValidation = *v.HasValidation
	}
	return h
}

// HookLine renders the verdict the way Claude Code hooks have always printed
// it: one JSON object with ", " and ": " separators, no trailing newline.
func (v Verdict) HookLine() ([]byte, error) {
	compact, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return spaceSeparators(compact), nil
}

// spaceSeparators adds a space after every comma and colon outside strings
func spaceSeparators(compact []byte) []byte {
	out := make([]byte, 0, len(compact)+len(compact)/4)
	inString, escaped := false, false
	for _, b := range compact {
		out = append(out, b)
		switch {
		case escaped:
			escaped = false
		case inString && b == '\\':
			escaped = true
		case b == '"':
			inString = !inString
		case !inString && (b == ',' || b == ':'):
			out = append(out, ' ')
		}
	}
	return out
}

// FileVerdict pairs a verdict with the PRP path it was computed for
type FileVerdict struct {
	Path    string  `json:"path" yaml:"path"`
	Verdict Verdict `json:"verdict" yaml:"verdict"`
}

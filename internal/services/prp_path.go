package services

import "regexp"

// prpPathPattern matches "PRPs/" then a run of non-dot characters then ".md".
// A filename holding a dot before the extension never matches.
var prpPathPattern = regexp.MustCompile(`PRPs/[^.]+\.md`)

// ExtractPRPPath returns the first PRP path referenced anywhere in prompt
func ExtractPRPPath(prompt string) (string, bool) {
	match := prpPathPattern.FindString(prompt)
	return match, match != ""
}

package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// HookInput is the JSON payload Claude Code writes to a hook's stdin.
// Only Prompt drives validation; the rest is kept for the run history.
type HookInput struct {
	CWD            string `json:"cwd"`
	HookEventName  string `json:"hook_event_name"`
	Prompt         string `json:"prompt"`
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
}

// DecodeHookInput decodes a hook payload. Keys are matched exactly.
// The payload must be an object and prompt, when present, a string;
// the other fields are kept only when they are strings.
func DecodeHookInput(raw []byte) (HookInput, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return HookInput{}, err
	}
	if fields == nil {
		return HookInput{}, errors.New("payload is not a JSON object")
	}

	var input HookInput
	if value, ok := fields["prompt"]; ok {
		prompt, err := stringField(value)
		if err != nil {
			return HookInput{}, fmt.Errorf("prompt: %w", err)
		}
		input.Prompt = prompt
	}

	input.CWD, _ = optionalStringField(fields, "cwd")
	input.HookEventName, _ = optionalStringField(fields, "hook_event_name")
	input.SessionID, _ = optionalStringField(fields, "session_id")
	input.TranscriptPath, _ = optionalStringField(fields, "transcript_path")

	return input, nil
}

func optionalStringField(fields map[string]json.RawMessage, key string) (string, error) {
	value, ok := fields[key]
	if !ok {
		return "", nil
	}
	return stringField(value)
}

func stringField(value json.RawMessage) (string, error) {
	var s *string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", err
	}
	if s == nil {
		return "", errors.New("value is null")
	}
	return *s, nil
}

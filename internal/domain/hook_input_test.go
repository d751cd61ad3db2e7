package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHookInput(t *testing.T) {
	input, err := DecodeHookInput([]byte(`{
		"session_id": "sess-1",
		"transcript_path": "/tmp/t.jsonl",
		"cwd": "/work",
		"hook_event_name": "UserPromptSubmit",
		"prompt": "Execute PRPs/feature.md"
	}`))

	require.NoError(t, err)
	assert.Equal(t, HookInput{
		CWD:            "/work",
		HookEventName:  "UserPromptSubmit",
		Prompt:         "Execute PRPs/feature.md",
		SessionID:      "sess-1",
		TranscriptPath: "/tmp/t.jsonl",
	}, input)
}

func TestDecodeHookInput_KeysAreCaseSensitive(t *testing.T) {
	input, err := DecodeHookInput([]byte(`{"Prompt":"PRPs/a.md","Session_ID":"x","CWD":"/w"}`))

	require.NoError(t, err)
	assert.Equal(t, HookInput{}, input)
}

func TestDecodeHookInput_IgnoresNonStringMetadata(t *testing.T) {
	input, err := DecodeHookInput([]byte(`{"prompt":"hi","session_id":7,"cwd":null}`))

	require.NoError(t, err)
	assert.Equal(t, HookInput{Prompt: "hi"}, input)
}

func TestDecodeHookInput_Errors(t *testing.T) {
	payloads := map[string]string{
		"empty":         "",
		"array":         "[1,2]",
		"null":          "null",
		"string":        `"prompt"`,
		"prompt number": `{"prompt": 5}`,
		"prompt null":   `{"prompt": null}`,
		"prompt object": `{"prompt": {"text": "PRPs/a.md"}}`,
		"truncated":     `{"prompt": "PRPs/a.md"`,
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeHookInput([]byte(payload))
			assert.Error(t, err)
		})
	}
}

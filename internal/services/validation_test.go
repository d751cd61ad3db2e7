package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/livingtree/prpcheck/internal/domain"
	portsmocks "github.com/livingtree/prpcheck/internal/ports/mocks"
)

const completePRP = `# Feature

## Goal
Ship it.

## Why
Because.

## What
A thing.

## All Needed Context
Notes.

## Implementation Blueprint
Steps.

## Validation Loop
Run checks.
`

func prpWith(extra ...string) string {
	return completePRP + strings.Join(extra, "\n")
}

func TestValidateFile_NotFound(t *testing.T) {
	documents := portsmocks.NewMockDocumentReader(t)
	documents.EXPECT().Exists("PRPs/missing.md").Return(false)

	service := NewValidationService(documents, nil)

	verdict := service.ValidateFile("PRPs/missing.md")

	assert.False(t, verdict.Valid)
	assert.Equal(t, domain.MessageFileNotFound, verdict.Error)
	assert.Equal(t, domain.OutcomeNotFound, verdict.Outcome)
}

func TestValidateFile_ReadError(t *testing.T) {
	documents := portsmocks.NewMockDocumentReader(t)
	documents.EXPECT().Exists("PRPs/dir.md").Return(true)
	documents.EXPECT().Read("PRPs/dir.md").Return("", errors.New("is a directory"))

	service := NewValidationService(documents, nil)

	verdict := service.ValidateFile("PRPs/dir.md")

	assert.False(t, verdict.Valid)
	assert.Equal(t, domain.MessageUnreadable, verdict.Error)
	assert.Equal(t, domain.OutcomeReadError, verdict.Outcome)
}

func TestValidateFile_MissingSections(t *testing.T) {
	documents := portsmocks.NewMockDocumentReader(t)
	documents.EXPECT().Exists("PRPs/partial.md").Return(true)
	documents.EXPECT().Read("PRPs/partial.md").Return("## Goal\nX\n## Why\nY\n", nil)

	service := NewValidationService(documents, nil)

	verdict := service.ValidateFile("PRPs/partial.md")

	assert.False(t, verdict.Valid)
	assert.Equal(t, []string{
		"## What",
		"## All Needed Context",
		"## Implementation Blueprint",
		"## Validation Loop",
	}, verdict.MissingSections)
	assert.Nil(t, verdict.Score)
}

func TestValidateFile_Scoring(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		wantScore     int
		wantValid     bool
		wantPnpm      bool
		wantDocker    bool
		wantValidates bool
	}{
		{"sections only", prpWith(), 5, false, false, false, false},
		{"pnpm and docker", prpWith("pnpm install", "docker-compose up"), 9, true, true, true, false},
		{"everything", prpWith("pnpm lint", "Docker image"), 10, true, true, true, true},
		{"pytest only", prpWith("pytest -q"), 6, false, false, false, true},
		{"pnpm and pytest", prpWith("pnpm test", "pytest"), 8, true, true, false, true},
		{"lowercase docker does not count", prpWith("docker run"), 5, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			documents := portsmocks.NewMockDocumentReader(t)
			documents.EXPECT().Exists("PRPs/x.md").Return(true)
			documents.EXPECT().Read("PRPs/x.md").Return(tt.content, nil)

			service := NewValidationService(documents, nil)

			verdict := service.ValidateFile("PRPs/x.md")

			require.NotNil(t, verdict.Score)
			assert.Equal(t, tt.wantScore, *verdict.Score)
			assert.Equal(t, tt.wantValid, verdict.Valid)
			assert.Equal(t, tt.wantPnpm, *verdict.HasPnpm)
			assert.Equal(t, tt.wantDocker, *verdict.HasDocker)
			assert.Equal(t, tt.wantValidates, *verdict.HasValidation)
		})
	}
}

func TestHandleHookPayload_NoPath(t *testing.T) {
	documents := portsmocks.NewMockDocumentReader(t)
	recorder := portsmocks.NewMockRunRecorder(t)

	service := NewValidationService(documents, recorder)

	verdict := service.HandleHookPayload(context.Background(), []byte(`{"prompt":"hello world"}`))

	assert.True(t, verdict.Valid)
	assert.Equal(t, domain.MessageNoPath, verdict.Note)
	recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestHandleHookPayload_MissingPromptField(t *testing.T) {
	documents := portsmocks.NewMockDocumentReader(t)

	service := NewValidationService(documents, nil)

	payloads := []string{
		`{"session_id":"abc"}`,
		`{"Prompt":"run PRPs/x.md"}`,
		`{"PROMPT":"run PRPs/x.md"}`,
		`{"pRoMpT":"run PRPs/x.md"}`,
	}

	for _, payload := range payloads {
		verdict := service.HandleHookPayload(context.Background(), []byte(payload))
		assert.Equal(t, domain.NoPathVerdict(), verdict, payload)
	}
}

func TestHandleHookPayload_InvalidInput(t *testing.T) {
	payloads := map[string]string{
		"empty":           "",
		"not json":        "not json",
		"array":           "[1,2]",
		"prompt not text": `{"prompt": 5}`,
		"prompt null":     `{"prompt": null}`,
		"null payload":    "null",
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			documents := portsmocks.NewMockDocumentReader(t)
			recorder := portsmocks.NewMockRunRecorder(t)
			recorder.EXPECT().Record(mock.Anything, mock.MatchedBy(func(run domain.ValidationRun) bool {
				return run.Outcome == domain.OutcomeInputError && run.Source == domain.SourceHook
			})).Return(nil)

			service := NewValidationService(documents, recorder)

			verdict := service.HandleHookPayload(context.Background(), []byte(payload))

			assert.False(t, verdict.Valid)
			assert.Equal(t, domain.MessageInvalidInput, verdict.Error)
		})
	}
}

func TestHandleHookPayload_RecordsScoredRun(t *testing.T) {
	documents := portsmocks.NewMockDocumentReader(t)
	documents.EXPECT().Exists("PRPs/feature.md").Return(true)
	documents.EXPECT().Read("PRPs/feature.md").Return(prpWith("pnpm", "Docker"), nil)

	recorder := portsmocks.NewMockRunRecorder(t)
	var recorded domain.ValidationRun
	recorder.EXPECT().Record(mock.Anything, mock.Anything).
		Run(func(_ context.Context, run domain.ValidationRun) { recorded = run }).
		Return(nil)

	service := NewValidationService(documents, recorder)

	payload := `{"prompt":"Execute PRPs/feature.md","session_id":"sess-9","cwd":"/work"}`
	verdict := service.HandleHookPayload(context.Background(), []byte(payload))

	assert.True(t, verdict.Valid)
	assert.Equal(t, "PRPs/feature.md", recorded.PRPPath)
	assert.Equal(t, "sess-9", recorded.SessionID)
	assert.Equal(t, "/work", recorded.CWD)
	assert.Equal(t, domain.SourceHook, recorded.Source)
	assert.Equal(t, domain.OutcomeScored, recorded.Outcome)
	assert.NotEmpty(t, recorded.ID)
	require.NotNil(t, recorded.Score)
	assert.Equal(t, 9, *recorded.Score)
	assert.True(t, recorded.Heuristics.HasDocker)
}

func TestHandlePrompt_RecorderFailureKeepsVerdict(t *testing.T) {
	documents := portsmocks.NewMockDocumentReader(t)
	documents.EXPECT().Exists("PRPs/feature.md").Return(false)

	recorder := portsmocks.NewMockRunRecorder(t)
	recorder.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	service := NewValidationService(documents, recorder)

	verdict := service.HandlePrompt(context.Background(), domain.HookInput{Prompt: "PRPs/feature.md"})

	assert.Equal(t, domain.NotFoundVerdict(), verdict)
}

func TestHandlePrompt_Idempotent(t *testing.T) {
	documents := portsmocks.NewMockDocumentReader(t)
	documents.EXPECT().Exists("PRPs/feature.md").Return(true).Times(2)
	documents.EXPECT().Read("PRPs/feature.md").Return(prpWith("pnpm lint"), nil).Times(2)

	service := NewValidationService(documents, nil)
	input := domain.HookInput{Prompt: "run PRPs/feature.md please"}

	first := service.HandlePrompt(context.Background(), input)
	second := service.HandlePrompt(context.Background(), input)

	assert.Equal(t, first, second)
}

func TestHandlePrompt_DottedNameIsNoPath(t *testing.T) {
	documents := portsmocks.NewMockDocumentReader(t)

	service := NewValidationService(documents, nil)

	verdict := service.HandlePrompt(context.Background(), domain.HookInput{Prompt: "PRPs/v1.2.md"})

	assert.Equal(t, domain.NoPathVerdict(), verdict)
}

func TestCheck_KeepsOrderAndRecords(t *testing.T) {
	documents := portsmocks.NewMockDocumentReader(t)
	documents.EXPECT().Exists("PRPs/a.md").Return(true)
	documents.EXPECT().Read("PRPs/a.md").Return(prpWith("pnpm", "Docker"), nil)
	documents.EXPECT().Exists("PRPs/b.md").Return(false)
	documents.EXPECT().Exists("PRPs/c.md").Return(true)
	documents.EXPECT().Read("PRPs/c.md").Return("## Goal", nil)

	recorder := portsmocks.NewMockRunRecorder(t)
	var mu sync.Mutex
	sources := map[string]domain.RunSource{}
	recorder.EXPECT().Record(mock.Anything, mock.Anything).
		Run(func(_ context.Context, run domain.ValidationRun) {
			mu.Lock()
			defer mu.Unlock()
			sources[run.PRPPath] = run.Source
		}).
		Return(nil).Times(3)

	service := NewValidationService(documents, recorder)

	results, err := service.Check(context.Background(), []string{"PRPs/a.md", "PRPs/b.md", "PRPs/c.md"}, 2)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "PRPs/a.md", results[0].Path)
	assert.True(t, results[0].Verdict.Valid)
	assert.Equal(t, "PRPs/b.md", results[1].Path)
	assert.Equal(t, domain.OutcomeNotFound, results[1].Verdict.Outcome)
	assert.Equal(t, "PRPs/c.md", results[2].Path)
	assert.Len(t, results[2].Verdict.MissingSections, 5)
	for _, source := range sources {
		assert.Equal(t, domain.SourceCheck, source)
	}
}

func TestCheck_CancelledContext(t *testing.T) {
	documents := portsmocks.NewMockDocumentReader(t)

	service := NewValidationService(documents, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Check(ctx, []string{"PRPs/a.md"}, 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

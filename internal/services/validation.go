package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/livingtree/prpcheck/internal/domain"
	"github.com/livingtree/prpcheck/internal/logging"
	"github.com/livingtree/prpcheck/internal/ports"
)

// ValidationService validates PRP documents and records the verdicts
type ValidationService struct {
	documents ports.DocumentReader
	recorder  ports.RunRecorder
}

// NewValidationService creates a new ValidationService.
// A nil recorder disables history.
func NewValidationService(
	documents ports.DocumentReader,
	recorder ports.RunRecorder,
) *ValidationService {
	return &ValidationService{
		documents: documents,
		recorder:  recorder,
	}
}

// HandleHookPayload decodes a raw hook payload and validates the PRP its
// prompt references. It always produces a verdict.
func (s *ValidationService) HandleHookPayload(ctx context.Context, raw []byte) domain.Verdict {
	input, err := domain.DecodeHookInput(raw)
	if err != nil {
		logging.Logger.Warn("Failed to decode hook payload",
			"error", fmt.Errorf("%w: %w", domain.ErrInvalidHookInput, err),
			"bytes", len(raw))
		verdict := domain.InputErrorVerdict()
		s.record(ctx, domain.SourceHook, "", input, verdict)
		return verdict
	}

	return s.HandlePrompt(ctx, input)
}

// HandlePrompt validates the PRP referenced by the hook prompt, if any
func (s *ValidationService) HandlePrompt(ctx context.Context, input domain.HookInput) domain.Verdict {
	path, found := ExtractPRPPath(input.Prompt)
	if !found {
		logging.Logger.Debug("No PRP path in prompt", "prompt_length", len(input.Prompt))
		return domain.NoPathVerdict()
	}

	logging.Logger.Info("PRP path found in prompt", "path", path, "session", input.SessionID)

	verdict := s.ValidateFile(path)
	s.record(ctx, domain.SourceHook, path, input, verdict)
	return verdict
}

// ValidateFile runs the section and keyword checks on the PRP at path
func (s *ValidationService) ValidateFile(path string) domain.Verdict {
	if !s.documents.Exists(path) {
		logging.Logger.Info("PRP file not found", "path", path)
		return domain.NotFoundVerdict()
	}

	content, err := s.documents.Read(path)
	if err != nil {
		logging.Logger.Error("Failed to read PRP file",
			"path", path,
			"error", fmt.Errorf("%w: %w", domain.ErrUnreadablePRP, err))
		return domain.ReadErrorVerdict()
	}

	if missing := domain.MissingSections(content); len(missing) > 0 {
		logging.Logger.Info("PRP is missing required sections", "path", path, "missing", missing)
		return domain.MissingSectionsVerdict(missing)
	}

	heuristics := domain.DetectHeuristics(content)
	verdict := domain.ScoredVerdict(heuristics)

	logging.Logger.Info("PRP scored",
		"path", path,
		"score", *verdict.Score,
		"valid", verdict.Valid,
		"has_pnpm", heuristics.HasPnpm,
		"has_docker", heuristics.HasDocker,
		"has_validation", heuristics.HasValidation)

	return verdict
}

// Check validates several PRP files concurrently, at most concurrency at a
// time. Results keep the order of paths.
func (s *ValidationService) Check(ctx context.Context, paths []string, concurrency int) ([]domain.FileVerdict, error) {
	results := make([]domain.FileVerdict, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			verdict := s.ValidateFile(path)
			results[i] = domain.FileVerdict{Path: path, Verdict: verdict}
			s.record(ctx, domain.SourceCheck, path, domain.HookInput{}, verdict)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Checked PRP files", "count", len(paths), "concurrency", concurrency)
	return results, nil
}

// record stores the verdict; failures are logged and never surface
func (s *ValidationService) record(
	ctx context.Context,
	source domain.RunSource,
	path string,
	input domain.HookInput,
	verdict domain.Verdict,
) {
	if s.recorder == nil {
		return
	}

	run := domain.ValidationRun{
		CWD:             input.CWD,
		CreatedAt:       time.Now(),
		Error:           verdict.Error,
		Heuristics:      verdict.Heuristics(),
		ID:              uuid.New().String(),
		MissingSections: verdict.MissingSections,
		Outcome:         verdict.Outcome,
		PRPPath:         path,
		Score:           verdict.Score,
		SessionID:       input.SessionID,
		Source:          source,
		Valid:           verdict.Valid,
	}

	if err := s.recorder.Record(ctx, run); err != nil {
		logging.Logger.Warn("Failed to record validation run", "error", err, "path", path)
		return
	}
	logging.Logger.Debug("Recorded validation run", "id", run.ID, "outcome", run.Outcome)
}

// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tesso57/slidegen/internal/domain/deck"
	"go.uber.org/zap"
)

// ErrGenerationDisabled is returned when no generator is configured.
var ErrGenerationDisabled = errors.New("generation service is not configured")

// Generator abstracts the remote "generate presentation" call.
type Generator interface {
	Generate(ctx context.Context, req deck.Request) (deck.Result, error)
}

// AttemptRecorder persists finished submission attempts.
type AttemptRecorder interface {
	Record(ctx context.Context, attempt deck.Attempt) (deck.Attempt, error)
}

// AttemptLister lists recent submission attempts.
type AttemptLister interface {
	Recent(ctx context.Context, limit int) ([]deck.Attempt, error)
}

// GenerationService performs one generation call and records what happened.
// It never retries.
type GenerationService struct {
	Generator Generator
	Recorder  AttemptRecorder
	Logger    *zap.Logger
	Now       func() time.Time
}

// NewGenerationService constructs a GenerationService.
func NewGenerationService(generator Generator, recorder AttemptRecorder, logger *zap.Logger, now func() time.Time) *GenerationService {
	return new(GenerationService{
		Generator: generator,
		Recorder:  recorder,
		Logger:    logger,
		Now:       now,
	})
}

// Enabled reports whether generation is available.
func (s *GenerationService) Enabled() bool {
	return s != nil && s.Generator != nil
}

// Generate sends req to the generator. A panicking generator is reported as an error,
// so callers always get a settled result.
func (s *GenerationService) Generate(ctx context.Context, req deck.Request) (result deck.Result, err error) {
	if !s.Enabled() {
		return deck.Result{}, ErrGenerationDisabled
	}

	started := s.now()
	defer func() {
		if r := recover(); r != nil {
			result = deck.Result{}
			err = fmt.Errorf("generation panicked: %v", r)
		}
		s.finish(ctx, req, result, err, started)
	}()

	s.logger().Debug("generating presentation",
		zap.String("topic", req.Topic),
		zap.Int("template", int(req.Template)),
		zap.Bool("include_code", req.IncludeCode),
	)
	return s.Generator.Generate(ctx, req)
}

func (s *GenerationService) finish(ctx context.Context, req deck.Request, result deck.Result, err error, started time.Time) {
	finished := s.now()
	outcome := deck.ClassifyOutcome(result, err)
	log := s.logger()

	switch outcome {
	case deck.Failed:
		log.Error("error creating presentation", zap.Error(err), zap.String("topic", req.Topic))
	case deck.Unconfirmed:
		log.Info("generation finished without confirmation", zap.String("message", result.Message))
	default:
		log.Info("generation response", zap.String("message", result.Message), zap.Duration("elapsed", finished.Sub(started)))
	}

	if s.Recorder == nil {
		return
	}
	attempt := deck.Attempt{
		Request:    req,
		Outcome:    outcome,
		Message:    result.Message,
		StartedAt:  started,
		FinishedAt: finished,
	}
	if err != nil {
		attempt.Error = err.Error()
	}
	// The journal must outlive a cancelled request.
	if _, recErr := s.Recorder.Record(context.WithoutCancel(ctx), attempt); recErr != nil {
		log.Warn("failed to record attempt", zap.Error(recErr))
	}
}

func (s *GenerationService) logger() *zap.Logger {
	if s != nil && s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

func (s *GenerationService) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workforce-engine/internal/apperror"
	"workforce-engine/internal/clock"
	"workforce-engine/internal/model"
	"workforce-engine/internal/population"
	"workforce-engine/internal/stats"
	"workforce-engine/internal/validation"
)

// Engine validates a request, generates the population and summarizes it.
// It keeps no state between runs and is safe for concurrent use.
type Engine struct {
	clock     clock.Clock
	logger    *zap.Logger
	validator *validation.Validator
	seed      func() uint64
}

type Option func(*Engine)

func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMaxCount caps the population size; n <= 0 removes the cap.
func WithMaxCount(n int) Option {
	return func(e *Engine) { e.validator = validation.New(n) }
}

// WithSeed fixes the seed used by requests that carry none.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.seed = func() uint64 { return seed } }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		clock:     clock.System{},
		logger:    zap.NewNop(),
		validator: validation.New(validation.DefaultMaxCount),
		seed:      population.RandomSeed,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Result struct {
	RunID    string
	Seed     uint64
	Summary  model.Summary
	Messages []model.Message
	Duration time.Duration
}

// Run is the single entry point. A zero count is a successful run with an
// empty population. When the request is rejected the returned Result still
// carries the validation messages, and the error is an *apperror.Error with
// code invalid_count or invalid_age_range.
func (e *Engine) Run(ctx context.Context, req *model.RunRequest) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: uuid.New().String()}
	log := e.logger.With(zap.String("run_id", result.RunID))

	result.Messages = e.validator.Validate(req)
	for _, m := range result.Messages {
		logDiagnostic(log, m)
	}
	if result.Messages == nil {
		result.Messages = []model.Message{}
	}

	if err := firstCritical(result.Messages); err != nil {
		log.Info("Request rejected", zap.String("error_code", string(err.Code)))
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("%w: %w", apperror.New(apperror.CodeCanceled, "run canceled"), err)
	}

	result.Seed = e.seed()
	if req.Seed != nil {
		result.Seed = *req.Seed
	}

	gen := population.NewGenerator(e.clock, population.NewSource(result.Seed))
	employees := gen.Generate(population.Spec{Count: req.Count, Age: req.Age})
	result.Summary = stats.NewAggregator(e.clock).Summarize(employees)
	result.Duration = time.Since(start)

	log.Info("Run completed",
		zap.Int("count", req.Count),
		zap.Float64("age_min", req.Age.Min),
		zap.Float64("age_max", req.Age.Max),
		zap.Uint64("seed", result.Seed),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// logDiagnostic logs CRITICAL messages at Warn and WARNING messages at Info.
func logDiagnostic(log *zap.Logger, m model.Message) {
	fields := []zap.Field{
		zap.String("level", m.Level),
		zap.String("code", m.Code),
		zap.String("message", m.Message),
	}
	if m.Level == model.LevelCritical {
		log.Warn("Request rejected by validation", fields...)
		return
	}
	log.Info("Request diagnostic", fields...)
}

func firstCritical(msgs []model.Message) *apperror.Error {
	for _, m := range msgs {
		if m.Level != model.LevelCritical {
			continue
		}
		switch m.Code {
		case model.CodeInvalidCount:
			return apperror.New(apperror.CodeInvalidCount, m.Message)
		case model.CodeInvalidAgeRange:
			return apperror.New(apperror.CodeInvalidAgeRange, m.Message)
		default:
			return apperror.New(apperror.CodeInternal, m.Message)
		}
	}
	return nil
}

// Run computes a Summary with a default engine.
func Run(req *model.RunRequest) (model.Summary, error) {
	res, err := New().Run(context.Background(), req)
	if err != nil {
		return model.Summary{}, err
	}
	return res.Summary, nil
}

package headless

import (
	"context"
	"fmt"
	"time"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/telemetry"
	"go-missile-defense/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StepDuration - синтетические часы: один шаг равен кадру при 60 FPS.
const StepDuration = time.Second / config.StepsPerSecond

type Options struct {
	Runs     int
	Workers  int
	MaxSteps int
	Seed     int64 // сид первой партии, у остальных +1, +2, ...
}

// Runner гоняет независимые партии параллельно. У каждой партии
// свой Game и свой генератор, общих данных между горутинами нет.
type Runner struct {
	opts   Options
	logger *zap.Logger
}

func NewRunner(opts Options, logger *zap.Logger) *Runner {
	if opts.Runs < 1 {
		opts.Runs = 1
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.MaxSteps < 1 {
		opts.MaxSteps = 1
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{opts: opts, logger: logger}
}

// Run возвращает итоги в порядке номеров партий.
// Первая ошибка или отмена ctx останавливает остальные партии.
func (r *Runner) Run(ctx context.Context) ([]telemetry.RunRecord, error) {
	records := make([]telemetry.RunRecord, r.opts.Runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)
	for i := 0; i < r.opts.Runs; i++ {
		i := i
		g.Go(func() error {
			rec, err := r.runOne(ctx, r.opts.Seed+int64(i))
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Runner) runOne(ctx context.Context, seed int64) (telemetry.RunRecord, error) {
	game := app.NewGame(utils.NewPRNGService(seed))
	collector := telemetry.NewCollector()
	game.EventDispatcher.SubscribeAll(collector)
	pilot := NewAutopilot(game)

	if err := game.Start(); err != nil {
		return telemetry.RunRecord{}, err
	}

	var now time.Duration
	for step := 0; step < r.opts.MaxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return telemetry.RunRecord{}, err
		}
		pilot.Act()
		if !game.Step(now) {
			break
		}
		now += StepDuration
		if err := game.World.Validate(); err != nil {
			return telemetry.RunRecord{}, fmt.Errorf("step %d: %w", game.World.Step, err)
		}
		if game.Status().Terminal() {
			break
		}
	}

	snap := game.Snapshot()
	rec := collector.Record()
	rec.RunID = snap.RunID.String()
	rec.Seed = seed
	rec.Status = snap.Status.String()
	rec.Score = snap.Score
	rec.Steps = snap.Step
	rec.Fingerprint = fmt.Sprintf("%016x", snap.Fingerprint())

	r.logger.Debug("headless run finished",
		zap.Int64("seed", seed),
		zap.String("status", rec.Status),
		zap.Int("score", rec.Score),
		zap.Int("steps", rec.Steps),
	)
	return rec, nil
}

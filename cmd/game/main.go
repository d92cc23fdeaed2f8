// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/audio"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/headless"
	"go-missile-defense/internal/logging"
	"go-missile-defense/internal/render"
	"go-missile-defense/internal/state"
	"go-missile-defense/internal/telemetry"
	"go-missile-defense/internal/ui"
	"go-missile-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	host           *state.Host
	sounds         *audio.SoundManager
	started        time.Time
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.host.Input = ui.PollInput(a.width, a.height)
	a.stateMachine.Update(deltaTime)
	if a.sounds != nil {
		a.sounds.Tick()
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout отдаёт размер окна как есть, поле растягивается рендерером.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// runRecorder пишет строку телеметрии в конце каждой партии.
type runRecorder struct {
	game      *app.Game
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	seed      int64
	logger    *zap.Logger
}

func (r *runRecorder) OnEvent(e event.Event) {
	data, ok := e.Data.(event.StatusData)
	if !ok || !data.To.Terminal() {
		return
	}
	snap := r.game.Snapshot()
	rec := r.collector.Record()
	rec.RunID = snap.RunID.String()
	rec.Seed = r.seed
	rec.Status = data.To.String()
	rec.Score = snap.Score
	rec.Steps = snap.Step
	rec.Fingerprint = fmt.Sprintf("%016x", snap.Fingerprint())
	if err := r.output.WriteRuns([]telemetry.RunRecord{rec}); err != nil {
		r.logger.Error("failed to write run record", zap.Error(err))
	}
}

func main() {
	configPath := flag.String("config", "", "Path to settings YAML (empty = use defaults)")
	headlessMode := flag.Bool("headless", false, "Run autopilot batch without a window")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	runs := flag.Int("runs", 0, "Headless runs (0 = use config)")
	workers := flag.Int("workers", 0, "Headless parallel runs (0 = use config)")
	maxSteps := flag.Int("max-steps", 0, "Headless step limit per run (0 = use config)")
	telemetryDir := flag.String("telemetry-dir", "", "Directory for runs.csv")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	noAudio := flag.Bool("no-audio", false, "Disable sound")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *runs > 0 {
		settings.Headless.Runs = *runs
	}
	if *workers > 0 {
		settings.Headless.Workers = *workers
	}
	if *maxSteps > 0 {
		settings.Headless.MaxSteps = *maxSteps
	}
	if *telemetryDir != "" {
		settings.Telemetry.Dir = *telemetryDir
	}
	if *logLevel != "" {
		settings.Log.Level = *logLevel
	}
	if *noAudio {
		settings.Audio.Enabled = false
	}

	logger, err := logging.New(settings.Log.Level, settings.Log.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	output, err := telemetry.NewOutputManager(settings.Telemetry.Dir)
	if err != nil {
		logger.Fatal("failed to open telemetry output", zap.Error(err))
	}
	defer output.Close()
	if output != nil {
		if err := settings.WriteYAML(filepath.Join(output.Dir(), "settings.yaml")); err != nil {
			logger.Warn("failed to save settings", zap.Error(err))
		}
	}

	if *headlessMode {
		if err := runHeadless(settings, output, logger); err != nil {
			logger.Fatal("headless batch failed", zap.Error(err))
		}
		return
	}

	if err := runWindow(settings, output, logger); err != nil {
		logger.Fatal("game exited with error", zap.Error(err))
	}
}

func runHeadless(settings *config.Settings, output *telemetry.OutputManager, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := headless.Options{
		Runs:     settings.Headless.Runs,
		Workers:  settings.Headless.Workers,
		MaxSteps: settings.Headless.MaxSteps,
		Seed:     settings.Seed,
	}
	logger.Info("starting headless batch",
		zap.Int("runs", opts.Runs),
		zap.Int("workers", opts.Workers),
		zap.Int("max_steps", opts.MaxSteps),
		zap.Int64("seed", opts.Seed),
	)

	started := time.Now()
	records, err := headless.NewRunner(opts, logger).Run(ctx)
	if err != nil {
		return err
	}
	if err := output.WriteRuns(records); err != nil {
		return err
	}

	s := telemetry.Summarize(records)
	logger.Info("headless batch finished",
		zap.Duration("elapsed", time.Since(started)),
		zap.Int("runs", s.Runs),
		zap.Int("won", s.Won),
		zap.Int("lost", s.Lost),
		zap.Int("unfinished", s.Unfinished),
		zap.Float64("mean_score", s.MeanScore),
		zap.Float64("stddev_score", s.StdDevScore),
		zap.Float64("p10_score", s.P10Score),
		zap.Float64("p50_score", s.P50Score),
		zap.Float64("p90_score", s.P90Score),
		zap.Float64("mean_steps", s.MeanSteps),
		zap.Float64("mean_accuracy", s.MeanAccuracy),
		zap.String("output_dir", output.Dir()),
	)
	return nil
}

func runWindow(settings *config.Settings, output *telemetry.OutputManager, logger *zap.Logger) error {
	prng := utils.NewPRNGService(settings.Seed)
	game := app.NewGame(prng)
	logger.Info("game created", zap.Int64("seed", prng.Seed()))

	game.EventDispatcher.SubscribeAll(logging.NewEventLogger(logger))

	collector := telemetry.NewCollector()
	game.EventDispatcher.SubscribeAll(collector)
	if output != nil {
		game.EventDispatcher.Subscribe(event.StatusChanged, &runRecorder{
			game:      game,
			collector: collector,
			output:    output,
			seed:      prng.Seed(),
			logger:    logger,
		})
	}

	var sounds *audio.SoundManager
	if settings.Audio.Enabled {
		var err error
		sounds, err = audio.NewSoundManager(settings.Audio.Volume)
		if err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			game.EventDispatcher.SubscribeAll(sounds)
		}
	}

	now := time.Now()
	a := &AppGame{
		stateMachine:   state.NewStateMachine(),
		sounds:         sounds,
		started:        now,
		lastUpdateTime: now,
	}
	a.host = &state.Host{
		Game:     game,
		Renderer: render.NewRenderer(),
		Now:      func() time.Duration { return time.Since(a.started) },
		Logger:   logger,
	}
	a.stateMachine.SetState(state.NewMenuState(a.stateMachine, a.host))

	w := int(config.GameWidth * settings.Window.Scale)
	h := int(config.GameHeight * settings.Window.Scale)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetTPS(config.StepsPerSecond)
	return ebiten.RunGame(a)
}

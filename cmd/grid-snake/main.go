package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/grid-snake/audio"
	"github.com/lixenwraith/grid-snake/camera"
	"github.com/lixenwraith/grid-snake/config"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/event"
	"github.com/lixenwraith/grid-snake/input"
	"github.com/lixenwraith/grid-snake/logging"
	"github.com/lixenwraith/grid-snake/metrics"
	"github.com/lixenwraith/grid-snake/parameter"
	"github.com/lixenwraith/grid-snake/particle"
	"github.com/lixenwraith/grid-snake/render"
	"github.com/lixenwraith/grid-snake/render/renderers"
	"github.com/lixenwraith/grid-snake/score"
)

var (
	configPath  = flag.String("config", "", "path to a TOML config file")
	seedFlag    = flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	metricsAddr = flag.String("metrics", "", "serve Prometheus metrics on this address (overrides config)")
	muteFlag    = flag.Bool("mute", false, "start with sound muted")
	debugFlag   = flag.Bool("debug", false, "log at debug level")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "grid-snake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}
	if *muteFlag {
		cfg.Audio.Muted = true
	}

	log, logFile, err := setupLogging(cfg, *debugFlag)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log, session := logging.WithSession(log)
	ctx := context.Background()
	log.Info(ctx, "starting", logging.Int("grid", cfg.Game.GridSize), logging.String("data_dir", cfg.Storage.DataDir))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetResetHook(screen.Fini)
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug(ctx, "seeded", logging.Any("seed", seed))
	rng := rand.New(rand.NewSource(seed))

	game := engine.NewGame(cfg.Options(), rng, event.NewEventQueue(), log)
	clock := engine.NewPausableClock(engine.NewRealTimeProvider())
	loop := engine.NewLoop(game, clock, particle.New(rng), camera.New())

	director, closeAudio := setupAudio(ctx, cfg, log)
	defer closeAudio()
	loop.Register(director)

	collector, stopMetrics := setupMetrics(ctx, cfg, log)
	defer stopMetrics()
	if collector != nil {
		loop.Register(collector)
	}

	board := score.NewLeaderboard(score.NewFileStore(cfg.Storage.DataDir))
	if err := board.Load(); err != nil {
		log.Warn(ctx, "leaderboard unreadable, starting empty", logging.Err(err))
	}

	renderer := render.NewTerminalRenderer(screen)
	renderers.RegisterAll(renderer)

	a := newApp(appDeps{
		log:        log,
		loop:       loop,
		renderer:   renderer,
		director:   director,
		collector:  collector,
		board:      board,
		translator: input.NewTranslator(loadKeyTable(ctx, cfg, log)),
	})

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	core.Go(func() { pollEvents(screen, events, quit) })

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.handleEvent(ev) {
				close(quit)
				log.Info(ctx, "quit", logging.String("session", session), logging.Int("score", loop.Snapshot().Score))
				return nil
			}
		case <-ticker.C:
			a.frame()
		}
	}
}

// loadConfig layers file, environment and validation
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupLogging opens the log file under the data dir; the terminal owns stdout and stderr while running
func setupLogging(cfg config.Config, debug bool) (logging.Logger, io.Closer, error) {
	level := cfg.Log.Level
	if debug {
		level = "debug"
	}

	path := cfg.LogPath()
	if path == "" {
		return logging.Noop(), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log := logging.New(logging.Config{
		Level:  level,
		Format: cfg.Log.Format,
		Output: f,
	})
	return log, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupAudio falls back to a silent output when the device cannot be opened
func setupAudio(ctx context.Context, cfg config.Config, log logging.Logger) (*audio.Director, func()) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	synth := audio.NewSynth(rate, cfg.Audio.Volume)
	cadence := audio.NewCadence(rate, cfg.Audio.Volume*parameter.CadenceVolume)

	var out audio.Output = audio.NullOutput{}
	closeFn := func() {}

	if cfg.Audio.Enabled {
		speaker := audio.NewSpeakerOutput(rate)
		if err := speaker.Init(parameter.AudioBufferLength); err != nil {
			log.Warn(ctx, "audio unavailable, continuing silent", logging.Err(err))
		} else {
			out = speaker
			closeFn = func() {
				if err := speaker.Close(); err != nil && !errors.Is(err, audio.ErrNotInitialized) {
					log.Warn(ctx, "audio close", logging.Err(err))
				}
			}
		}
	}

	director := audio.NewDirector(out, synth, cadence)
	director.SetMuted(cfg.Audio.Muted)
	return director, closeFn
}

// setupMetrics serves /metrics when an address is configured
func setupMetrics(ctx context.Context, cfg config.Config, log logging.Logger) (*metrics.Collector, func()) {
	if cfg.Metrics.Addr == "" {
		return nil, func() {}
	}

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		log.Warn(ctx, "metrics disabled", logging.Err(err))
		return nil, func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	srv := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	core.Go(func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn(ctx, "metrics server exited", logging.Err(err))
		}
	})
	log.Info(ctx, "serving Prometheus metrics", logging.String("addr", cfg.Metrics.Addr))

	return collector, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}

// loadKeyTable merges an optional keymap file over the defaults
func loadKeyTable(ctx context.Context, cfg config.Config, log logging.Logger) *input.KeyTable {
	table := input.DefaultKeyTable()
	if cfg.Input.Keymap == "" {
		return table
	}

	data, err := os.ReadFile(cfg.Input.Keymap)
	if err != nil {
		log.Warn(ctx, "keymap unreadable, using defaults", logging.String("path", cfg.Input.Keymap), logging.Err(err))
		return table
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		log.Warn(ctx, "keymap invalid, using defaults", logging.String("path", cfg.Input.Keymap), logging.Err(err))
		return table
	}
	return input.MergeKeyTable(table, override)
}

// pollEvents forwards terminal events until the screen closes or quit is signalled
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/rally/audio"
	"github.com/lixenwraith/rally/config"
	"github.com/lixenwraith/rally/core"
	"github.com/lixenwraith/rally/engine"
	"github.com/lixenwraith/rally/events"
	"github.com/lixenwraith/rally/input"
	"github.com/lixenwraith/rally/logging"
	"github.com/lixenwraith/rally/parameter"
	"github.com/lixenwraith/rally/rank"
	"github.com/lixenwraith/rally/render"
	"github.com/lixenwraith/rally/service"
	"github.com/lixenwraith/rally/status"
	"github.com/lixenwraith/rally/store"
)

const version = "0.1.0"

// frameInterval paces redraws independently of the simulation tick
const frameInterval = time.Second / 30

var (
	configFlag = flag.String("config", "", "Path to a config file (json, toml or yaml)")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, overrides the config when non-zero")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rally: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	log, logCloser, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	if err := core.InitReporting(cfg.SentryDSN, version); err != nil {
		log.Warn().Err(err).Msg("Crash reporting disabled")
	}
	defer core.FlushReporting()

	kv, err := store.Open(cfg.Store.Driver, cfg.Store.DSN, log)
	if err != nil {
		return fmt.Errorf("failed to open rank store: %w", err)
	}
	defer kv.Close()

	ledger := rank.NewLedger(kv, log)
	reg := status.NewRegistry()
	seed := resolveSeed(cfg.Seed, time.Now())
	sim := engine.New(seed, ledger, reg, log)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashScreen(screen)

	adapter := input.NewAdapter(input.DefaultBindings(), parameter.InputHoldWindow)
	clock := engine.NewClock(sim, adapter, tickInterval(cfg.TickRate))

	banner := render.NewBanner()
	clock.RegisterEventHandler(events.NewLifecycleHandler[*engine.Simulation](banner))

	hub := service.NewHub(log)
	if cfg.Audio.Enabled {
		// Cues are dropped while the speaker is closed
		sounds := audio.NewSoundManager(cfg.Audio.Volume)
		clock.RegisterEventHandler(audio.NewHandler[*engine.Simulation](sounds))
		if err := hub.Register(sounds); err != nil {
			return err
		}
	}
	if err := hub.Register(clock); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := hub.StartAll(ctx); err != nil {
		return err
	}
	defer hub.StopAll()

	renderer := render.NewRenderer(screen)
	loop(ctx, screen, adapter, clock, renderer, banner)

	cancel()
	hub.StopAll()
	logSummary(log, clock.Latest(), reg)
	return nil
}

// loop renders frames and feeds key events to the adapter until quit
func loop(ctx context.Context, screen tcell.Screen, adapter *input.Adapter, clock *engine.Clock, r *render.Renderer, banner *render.Banner) {
	eventChan := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				continue
			}
			if adapter.HandleEvent(ev) {
				return
			}
		case <-frameTicker.C:
			r.Draw(clock.Latest(), banner.Text())
		}
	}
}

// resolveSeed keeps a configured seed and derives one from the clock otherwise
func resolveSeed(seed uint64, now time.Time) uint64 {
	if seed != 0 {
		return seed
	}
	if s := uint64(now.UnixNano()); s != 0 {
		return s
	}
	return 1
}

func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		return parameter.TickInterval
	}
	return time.Second / time.Duration(rate)
}

func logSummary(log zerolog.Logger, snap *engine.Snapshot, reg *status.Registry) {
	if snap == nil {
		return
	}
	log.Info().
		Int64("tick", snap.Tick).
		Int("human", snap.Match.Score.Human).
		Int("ai", snap.Match.Score.AI).
		Str("phase", snap.Match.Phase.String()).
		Int("rank", snap.Rank.Rank).
		Int("tier", snap.Rank.Tier).
		Int("points", snap.Rank.Points).
		Str("status", reg.String()).
		Msg("Session ended")
}

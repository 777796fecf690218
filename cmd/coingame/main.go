package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/DoumaAbi/Doumas-Coin-Game/audio"
	"github.com/DoumaAbi/Doumas-Coin-Game/config"
	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/core"
	"github.com/DoumaAbi/Doumas-Coin-Game/engine"
	"github.com/DoumaAbi/Doumas-Coin-Game/input"
	"github.com/DoumaAbi/Doumas-Coin-Game/render"
	"github.com/DoumaAbi/Doumas-Coin-Game/status"
)

var (
	debugFlag = flag.Bool("debug", false, "Write logs to logs/coingame.log")
	seedFlag  = flag.Int64("seed", 0, "Coin placement seed, 0 for time-based")
	muteFlag  = flag.Bool("mute", false, "Disable audio")
	envFlag   = flag.String("env", config.DefaultEnvFile, "Dotenv file with COINGAME_* settings")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "coingame: %v\n", err)
		os.Exit(2)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.AudioEnabled = false
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "coingame: stdin is not a terminal")
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "coingame: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()
	screen.HideCursor()

	// Audio is optional; a missing device leaves the game silent
	audioCfg := audio.LoadAudioConfig()
	audioCfg.Enabled = cfg.AudioEnabled
	audioCfg.MasterVolume = cfg.MasterVolume
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	game := engine.NewGame(engine.Options{
		Width:        float64(cfg.CanvasWidth),
		Height:       float64(cfg.CanvasHeight),
		Seed:         cfg.Seed,
		StepRate:     cfg.StepRate,
		CooldownRate: cfg.CooldownRate,
		CosmeticRate: cfg.CosmeticRate,
	})

	wall := engine.NewMonotonicTimeProvider()
	reg := status.NewRegistry()
	runner := engine.NewRunner(game, engine.NewPausableClock(wall), reg)

	ui := render.NewUIState()
	banner := render.NewRewardBanner(wall)
	renderer := render.NewTerminalRenderer(screen, ui, banner)
	handler := input.NewHandler(input.Deps{
		Sink:   game,
		State:  runner,
		Pause:  runner,
		Mute:   sounds,
		Sounds: sounds,
		UI:     ui,
		Clock:  wall,
	})

	events := make(chan tcell.Event, 64)
	stopEvents := make(chan struct{})
	go screen.ChannelEvents(events, stopEvents)
	defer close(stopEvents)

	resized := make(chan struct{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(core.Guard(func() error {
		return runner.Run(ctx)
	}))
	g.Go(core.Guard(func() error {
		return renderLoop(ctx, cfg.FrameInterval(), screen, runner, renderer, sounds, banner, resized)
	}))
	g.Go(core.Guard(func() error {
		defer cancel()
		return inputLoop(ctx, events, screen, handler, resized)
	}))

	err = g.Wait()
	for _, line := range reg.Lines() {
		log.Printf("stat: %s", line)
	}
	return err
}

// renderLoop flushes signals and draws one snapshot per frame
func renderLoop(ctx context.Context, interval time.Duration, screen tcell.Screen, runner *engine.Runner,
	renderer *render.TerminalRenderer, sounds engine.SoundPlayer, banner *render.RewardBanner, resized <-chan struct{}) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-resized:
			renderer.Resize(screen.Size())
			continue
		case <-ticker.C:
		}

		runner.FlushSignals(sounds, banner)
		snap := runner.Snapshot()
		renderer.RenderFrame(&snap)
	}
}

// inputLoop applies key events and infers direction releases
func inputLoop(ctx context.Context, events <-chan tcell.Event, screen tcell.Screen, handler *input.Handler, resized chan<- struct{}) error {
	releases := time.NewTicker(constant.KeyHoldTimeout / 3)
	defer releases.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-releases.C:
			handler.ReleaseStale()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch handler.HandleEvent(ev).Type {
			case input.IntentQuit:
				log.Println("input: quit")
				return nil
			case input.IntentResize:
				screen.Sync()
				select {
				case resized <- struct{}{}:
				default:
				}
			}
		}
	}
}

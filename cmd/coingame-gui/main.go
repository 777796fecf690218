// Command coingame-gui runs the game in a window
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/DoumaAbi/Doumas-Coin-Game/audio"
	"github.com/DoumaAbi/Doumas-Coin-Game/config"
	"github.com/DoumaAbi/Doumas-Coin-Game/engine"
	"github.com/DoumaAbi/Doumas-Coin-Game/gui"
	"github.com/DoumaAbi/Doumas-Coin-Game/status"
)

var (
	debugFlag = flag.Bool("debug", false, "Log to stderr")
	seedFlag  = flag.Int64("seed", 0, "Coin placement seed, 0 for time-based")
	muteFlag  = flag.Bool("mute", false, "Disable audio")
	envFlag   = flag.String("env", config.DefaultEnvFile, "Dotenv file with COINGAME_* settings")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "coingame-gui: %v\n", err)
		os.Exit(2)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.AudioEnabled = false
	}
	if !*debugFlag && !cfg.Debug {
		log.SetOutput(io.Discard)
	}

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
	runner := engine.NewRunner(game, engine.NewPausableClock(wall), status.NewRegistry())

	app := gui.New(gui.Deps{
		Game:   game,
		Runner: runner,
		Mute:   sounds,
		Sounds: sounds,
		Clock:  wall,
	})
	if err := gui.Run(app, "Douma's Coin Game"); err != nil {
		log.Printf("window: %v", err)
		fmt.Fprintf(os.Stderr, "coingame-gui: %v\n", err)
		os.Exit(1)
	}
}

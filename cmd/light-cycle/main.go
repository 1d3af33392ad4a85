package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/light-cycle/audio"
	"github.com/lixenwraith/light-cycle/config"
	"github.com/lixenwraith/light-cycle/core"
	"github.com/lixenwraith/light-cycle/game"
)

// options holds command-line overrides, applied over file and environment config
type options struct {
	configPath string
	players    int
	play       string
	color      string
	debug      bool
}

func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("light-cycle", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "Path to TOML config file")
	fs.IntVar(&opts.players, "players", 0, "Number of players (1-4)")
	fs.StringVar(&opts.play, "play", "", "Play type: local, online")
	fs.StringVar(&opts.color, "color", "", "Color mode: auto, truecolor, 256")
	fs.BoolVar(&opts.debug, "debug", false, "Write debug log to logs/light-cycle.log")
	return fs
}

// apply copies flags the user set onto cfg
func (o *options) apply(cfg *config.Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "players":
			cfg.Game.Players = o.players
		case "play":
			cfg.Game.PlayType = o.play
		case "color":
			cfg.Render.ColorMode = o.color
		}
	})
}

func main() {
	// Panic recovery: reset the terminal even if the game crashes on the main goroutine
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "light-cycle: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var opts options
	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	opts.apply(cfg, fs)
	if err := cfg.Validate(); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.RegisterCrashCleanup(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	// Missing audio device is not fatal
	audioCfg, err := cfg.AudioSettings()
	if err != nil {
		return err
	}
	var sound game.Sound
	manager := audio.NewSoundManager(audioCfg)
	if err := manager.Initialize(); err != nil {
		log.Printf("continuing without audio: %v", err)
	} else if manager.IsInitialized() {
		sound = manager
		defer manager.Cleanup()
	}

	g, err := game.New(screen, cfg, sound, nil)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Printf("light-cycle exited: %s", g.Stats().Summary())
	return nil
}

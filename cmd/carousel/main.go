package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/config"
	"carousel/internal/deck"
	"carousel/internal/logging"
	"carousel/internal/ui"
)

func main() {
	var (
		deckPath   string
		configPath string
		interval   time.Duration
		direction  string
	)
	flag.StringVar(&deckPath, "deck", "", "Deck file to play (TOML or YAML); the demo deck when empty")
	flag.StringVar(&configPath, "config", "", "Config file (default: user config dir)")
	flag.DurationVar(&interval, "interval", 0, "Auto-advance interval, overrides the config")
	flag.StringVar(&direction, "direction", "", "Auto-advance direction (forwards or backwards), overrides the config")
	flag.Parse()

	if deckPath == "" && flag.NArg() > 0 {
		deckPath = flag.Arg(0)
	}

	if err := run(deckPath, configPath, interval, direction); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(deckPath, configPath string, interval time.Duration, direction string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if interval != 0 {
		cfg.Carousel.IntervalMS = int(interval / time.Millisecond)
	}
	if direction != "" {
		cfg.Carousel.Direction = direction
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()

	d, err := loadDeck(deckPath)
	if err != nil {
		logger.Error("failed to load deck", "path", deckPath, "error", err)
		return err
	}

	m, err := ui.NewModel(d, cfg, ui.WithLogger(logger))
	if err != nil {
		logger.Error("failed to mount carousel", "error", err)
		return fmt.Errorf("mount carousel: %w", err)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)
	m.SetProgram(p)

	if os.Getenv("CAROUSEL_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	logger.Info("starting UI", "slides", d.Len())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "error", err)
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("UI exited normally")
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.NewConfigServiceAt(path).LoadFromPath(path)
	}
	return config.NewConfigService().Load()
}

func loadDeck(path string) (*deck.Deck, error) {
	if path == "" {
		return deck.Demo()
	}
	return deck.Load(path)
}

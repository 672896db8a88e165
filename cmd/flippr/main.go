package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/heyojules/flippr/internal/audio"
	"github.com/heyojules/flippr/internal/deck"
	"github.com/heyojules/flippr/internal/kvstore"
	"github.com/heyojules/flippr/internal/model"
	"github.com/heyojules/flippr/internal/scores"
	"github.com/heyojules/flippr/internal/swipe"
	"github.com/heyojules/flippr/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var showVersion bool
	var printConfig bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/flippr/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.BoolVar(&printConfig, "print-config", false, "print the effective configuration as YAML and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("flippr - Tinder for penguins\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if printConfig {
		if err := writeConfig(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeConfig(w io.Writer, cfg appConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

func runTUI(cfg appConfig) error {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}
	logFile, err := tea.LogToFile(cfg.LogFile, "flippr")
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	kv, err := kvstore.Open(cfg.StoreDriver, cfg.StorePath)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.StoreDriver, err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Printf("main: close store: %v", err)
		}
	}()
	log.Printf("main: store %s (key %s)", kvstore.Describe(kv), cfg.StoreKey)

	store := scores.Load(kv, cfg.StoreKey, cfg.Items)
	ctrl := swipe.New(swipe.Options{
		Deck:      deck.FromIDs(cfg.Items),
		Scores:    store,
		Threshold: cfg.SwipeThreshold,
		Night:     cfg.nightSchedule(),
		Effects:   audio.EffectsIn(cfg.AssetsDir),
	})

	keys := tui.DefaultKeyMap()
	app := tui.NewApp(ctrl, tui.AppOptions{
		FrameInterval:     cfg.FrameInterval,
		NightPollInterval: cfg.NightPollInterval,
		Player:            newPlayer(cfg),
		Keys:              keys,
	},
		tui.NewSwipePage(ctrl, keys, cfg.AssetsDir),
		tui.NewResultsPage(ctrl, keys),
	)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// newPlayer resolves the sound player. Sound is optional, so any failure
// falls back to silence.
func newPlayer(cfg appConfig) model.SoundPlayer {
	if !cfg.SoundEnabled {
		return audio.Silent{}
	}
	player, err := audio.NewExecPlayer(cfg.SoundPlayer)
	if err != nil {
		if errors.Is(err, audio.ErrNoPlayer) {
			log.Printf("main: sound disabled: %v", err)
		} else {
			log.Printf("main: sound player %q unusable: %v", cfg.SoundPlayer, err)
		}
		return audio.Silent{}
	}
	log.Printf("main: sound via %s", player.Command())
	return player
}

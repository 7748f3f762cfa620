package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robin/questdash/config"
	"github.com/robin/questdash/quest"
	"github.com/robin/questdash/tui"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ~/.config/questdash/config.toml)")
	questsPath := flag.String("quests", "", "path to quest file (overrides config)")
	flag.Parse()

	path := *configPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		// If using default path and file doesn't exist, use empty config
		if !explicit && errors.Is(err, os.ErrNotExist) {
			cfg = config.Config{}
		} else {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	if *questsPath != "" {
		cfg.Paths.Quests = *questsPath
	}

	quests, err := quest.Load(cfg.ResolvedQuestsPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error loading quests: %v\n", err)
			os.Exit(1)
		}
		quests = nil
	}

	store, err := quest.OpenStore(cfg.ResolvedHistoryPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	history, err := store.History()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}

	// Live reload is best-effort; run without it if the watch fails.
	watcher, err := quest.Watch(cfg.ResolvedQuestsPath())
	if err != nil {
		watcher = nil
	} else {
		defer watcher.Close()
	}

	app := tui.NewApp(cfg, quests, history, store, watcher)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

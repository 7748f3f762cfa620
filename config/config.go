package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Workspace WorkspaceInfo `toml:"workspace"`
	Paths     PathsConfig   `toml:"paths"`
	Theme     ThemeConfig   `toml:"theme"`
}

type WorkspaceInfo struct {
	Name string `toml:"name"`
}

type PathsConfig struct {
	Quests  string `toml:"quests,omitempty"`  // quest list TOML file
	History string `toml:"history,omitempty"` // sqlite completion log
}

type ThemeConfig struct {
	BG     string `toml:"bg,omitempty"`
	FG     string `toml:"fg,omitempty"`
	Accent string `toml:"accent,omitempty"`
	Muted  string `toml:"muted,omitempty"`
	Dim    string `toml:"dim,omitempty"`

	// Slot colors
	SlotEasy       string `toml:"slot_easy,omitempty"`
	SlotMedium     string `toml:"slot_medium,omitempty"`
	SlotHard       string `toml:"slot_hard,omitempty"`
	SlotImpossible string `toml:"slot_impossible,omitempty"`
	SlotUnfilled   string `toml:"slot_unfilled,omitempty"`
	SlotRetiring   string `toml:"slot_retiring,omitempty"`

	// Quest list
	QuestHeader string `toml:"quest_header,omitempty"`
	TaskDone    string `toml:"task_done,omitempty"`

	LevelFG     string `toml:"level_fg,omitempty"`
	CursorBG    string `toml:"cursor_bg,omitempty"`
	StatusBarBG string `toml:"status_bar_bg,omitempty"`
	StatusBarFG string `toml:"status_bar_fg,omitempty"`
	Error       string `toml:"error,omitempty"`
}

// DefaultConfigPath returns ~/.config/questdash/config.toml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "questdash", "config.toml")
}

func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	configDir := filepath.Dir(path)
	absConfigDir, err := filepath.Abs(configDir)
	if err != nil {
		return cfg, fmt.Errorf("resolving config directory: %w", err)
	}

	// Paths are ~-expanded and resolved relative to the config file.
	cfg.Paths.Quests = resolvePath(cfg.Paths.Quests, absConfigDir)
	cfg.Paths.History = resolvePath(cfg.Paths.History, absConfigDir)

	return cfg, nil
}

func resolvePath(path, base string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	if !filepath.IsAbs(path) {
		return filepath.Join(base, path)
	}
	return path
}

// WorkspaceName returns the workspace name, or "QuestDash" as fallback.
func (c Config) WorkspaceName() string {
	if c.Workspace.Name != "" {
		return c.Workspace.Name
	}
	return "QuestDash"
}

// ResolvedQuestsPath returns the configured quest file, or
// ~/.config/questdash/quests.toml as default.
func (c Config) ResolvedQuestsPath() string {
	if c.Paths.Quests != "" {
		return c.Paths.Quests
	}
	return filepath.Join(filepath.Dir(DefaultConfigPath()), "quests.toml")
}

// ResolvedHistoryPath returns the configured history db, or
// ~/.local/share/questdash/history.db as default.
func (c Config) ResolvedHistoryPath() string {
	if c.Paths.History != "" {
		return c.Paths.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(home, ".local", "share", "questdash", "history.db")
}

// DefaultTheme returns the Vesper-derived palette.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		BG:     "#101010",
		FG:     "#ffffff",
		Accent: "#ffc799",
		Muted:  "#505050",
		Dim:    "#a0a0a0",

		SlotEasy:       "#99ffe4",
		SlotMedium:     "#6699ff",
		SlotHard:       "#ffc799",
		SlotImpossible: "#ff8080",
		SlotUnfilled:   "#2a2a2a",
		SlotRetiring:   "#505050",

		QuestHeader: "#ffffff",
		TaskDone:    "#505050",

		LevelFG:     "#ffc799",
		CursorBG:    "#2a2a2a",
		StatusBarBG: "#1a1a1a",
		StatusBarFG: "#a0a0a0",
		Error:       "#ff8080",
	}
}

// ResolvedTheme merges config theme with defaults for any unset fields.
func (c Config) ResolvedTheme() ThemeConfig {
	d := DefaultTheme()
	return ThemeConfig{
		BG:     pick(c.Theme.BG, d.BG),
		FG:     pick(c.Theme.FG, d.FG),
		Accent: pick(c.Theme.Accent, d.Accent),
		Muted:  pick(c.Theme.Muted, d.Muted),
		Dim:    pick(c.Theme.Dim, d.Dim),

		SlotEasy:       pick(c.Theme.SlotEasy, d.SlotEasy),
		SlotMedium:     pick(c.Theme.SlotMedium, d.SlotMedium),
		SlotHard:       pick(c.Theme.SlotHard, d.SlotHard),
		SlotImpossible: pick(c.Theme.SlotImpossible, d.SlotImpossible),
		SlotUnfilled:   pick(c.Theme.SlotUnfilled, d.SlotUnfilled),
		SlotRetiring:   pick(c.Theme.SlotRetiring, d.SlotRetiring),

		QuestHeader: pick(c.Theme.QuestHeader, d.QuestHeader),
		TaskDone:    pick(c.Theme.TaskDone, d.TaskDone),

		LevelFG:     pick(c.Theme.LevelFG, d.LevelFG),
		CursorBG:    pick(c.Theme.CursorBG, d.CursorBG),
		StatusBarBG: pick(c.Theme.StatusBarBG, d.StatusBarBG),
		StatusBarFG: pick(c.Theme.StatusBarFG, d.StatusBarFG),
		Error:       pick(c.Theme.Error, d.Error),
	}
}

func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

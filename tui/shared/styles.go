package shared

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robin/questdash/config"
	"github.com/robin/questdash/progress"
)

var (
	// Grid pane
	LevelStyle        lipgloss.Style
	SlotFilledStyles  map[progress.Difficulty]lipgloss.Style
	SlotUnfilledStyle lipgloss.Style
	SlotRetiringStyle lipgloss.Style

	// Quest list
	QuestHeaderStyle lipgloss.Style
	TaskStyle        lipgloss.Style
	TaskDoneStyle    lipgloss.Style
	TaskNoteStyle    lipgloss.Style
	BadgeStyles      map[progress.Difficulty]lipgloss.Style

	// Cursor highlight
	CursorStyle lipgloss.Style

	// Status bar
	StatusBarStyle lipgloss.Style

	// Help styles
	HelpKeyStyle     lipgloss.Style
	HelpDescStyle    lipgloss.Style
	HelpOverlayStyle lipgloss.Style

	// Error
	ErrorStyle lipgloss.Style
)

// InitStyles configures all styles from a resolved theme.
func InitStyles(theme config.ThemeConfig) {
	LevelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.LevelFG))

	SlotFilledStyles = map[progress.Difficulty]lipgloss.Style{
		progress.Easy:       lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SlotEasy)),
		progress.Medium:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SlotMedium)),
		progress.Hard:       lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SlotHard)),
		progress.Impossible: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SlotImpossible)),
	}

	SlotUnfilledStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.SlotUnfilled))

	SlotRetiringStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.SlotRetiring))

	QuestHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.QuestHeader))

	TaskStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FG))

	TaskDoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.TaskDone)).
		Strikethrough(true)

	TaskNoteStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	BadgeStyles = map[progress.Difficulty]lipgloss.Style{
		progress.Easy:       lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SlotEasy)),
		progress.Medium:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SlotMedium)),
		progress.Hard:       lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SlotHard)),
		progress.Impossible: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SlotImpossible)),
	}

	CursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.CursorBG))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarFG)).
		Background(lipgloss.Color(theme.StatusBarBG)).
		Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent))

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	HelpOverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Muted)).
		Padding(1, 2)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Error))
}

func init() {
	// Initialize with defaults so styles work even without explicit InitStyles call
	InitStyles(config.DefaultTheme())
}

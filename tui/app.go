package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/robin/questdash/config"
	"github.com/robin/questdash/progress"
	"github.com/robin/questdash/quest"
	"github.com/robin/questdash/tui/gridpane"
	"github.com/robin/questdash/tui/help"
	"github.com/robin/questdash/tui/questpane"
	"github.com/robin/questdash/tui/shared"
)

type App struct {
	cfg       config.Config
	showHelp  bool
	statusMsg string

	engine *progress.Engine
	board  *gridpane.Board

	questPane questpane.Model
	helpView  help.Model

	store   *quest.Store
	watcher *quest.Watcher

	width  int
	height int
}

// NewApp wires the board into the engine and seeds the quest pane. Store
// and watcher may be nil; completion logging and live reload are then
// disabled.
func NewApp(cfg config.Config, quests []quest.Quest, history []progress.Difficulty, store *quest.Store, watcher *quest.Watcher) App {
	shared.InitStyles(cfg.ResolvedTheme())

	board := gridpane.New()
	engine := progress.New(board, history)

	qp := questpane.New()
	qp.SetQuests(quests)

	return App{
		cfg:       cfg,
		engine:    engine,
		board:     board,
		questPane: qp,
		helpView:  help.New(),
		store:     store,
		watcher:   watcher,
	}
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.scheduleEffects(a.engine.Start())}
	if a.watcher != nil {
		cmds = append(cmds, waitForQuestChange(a.watcher))
	}
	return tea.Batch(cmds...)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layoutSizes()
		a.helpView.SetSize(msg.Width, msg.Height)
		return a, nil

	case shared.DrainTickMsg:
		eff, more := a.engine.DrainTick()
		var cmds []tea.Cmd
		if cmd := a.scheduleRetirements(eff); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if more {
			cmds = append(cmds, drainTickCmd())
		}
		if eff.LeveledUp {
			a.statusMsg = fmt.Sprintf("Level up! Now LV %d", a.engine.Level())
		}
		a.layoutSizes()
		return a, tea.Batch(cmds...)

	case shared.SlotExpiredMsg:
		a.engine.ExpireSlot(msg.ID)
		a.layoutSizes()
		return a, nil

	case shared.CompletionRecordedMsg:
		if msg.Err != nil {
			a.statusMsg = "Error: " + msg.Err.Error()
		}
		return a, nil

	case shared.QuestFileChangedMsg:
		cmds := []tea.Cmd{reloadQuestsCmd(a.cfg.ResolvedQuestsPath())}
		if a.watcher != nil {
			cmds = append(cmds, waitForQuestChange(a.watcher))
		}
		return a, tea.Batch(cmds...)

	case shared.QuestsReloadedMsg:
		if msg.Err != nil {
			a.statusMsg = "Error: " + msg.Err.Error()
			return a, nil
		}
		a.questPane.SetQuests(msg.Quests)
		a.statusMsg = "Quests reloaded"
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help toggle is global
	if key.Matches(msg, shared.Keys.Help) {
		a.showHelp = !a.showHelp
		return a, nil
	}

	// If help is shown, any key closes it
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch {
	case key.Matches(msg, shared.Keys.Quit):
		a.engine.Teardown()
		return a, tea.Quit

	case key.Matches(msg, shared.Keys.Escape):
		a.statusMsg = ""
		return a, nil

	case key.Matches(msg, shared.Keys.Down):
		a.questPane.MoveDown()
		return a, nil

	case key.Matches(msg, shared.Keys.Up):
		a.questPane.MoveUp()
		return a, nil

	case key.Matches(msg, shared.Keys.NextQuest):
		a.questPane.NextQuest()
		return a, nil

	case key.Matches(msg, shared.Keys.PrevQuest):
		a.questPane.PrevQuest()
		return a, nil

	case key.Matches(msg, shared.Keys.Toggle):
		a.questPane.ToggleCollapse()
		return a, nil

	case key.Matches(msg, shared.Keys.Complete):
		task, ok := a.questPane.CompleteSelected()
		if !ok {
			return a, nil
		}
		a.statusMsg = "Completed: " + task.Title
		cmds := []tea.Cmd{a.scheduleEffects(a.engine.Feed(task.Difficulty))}
		if a.store != nil {
			cmds = append(cmds, recordCompletionCmd(a.store, task.Title, task.Difficulty))
		}
		a.layoutSizes()
		return a, tea.Batch(cmds...)

	case key.Matches(msg, shared.Keys.FeedEasy):
		return a, a.scheduleEffects(a.engine.Feed(progress.Easy))

	case key.Matches(msg, shared.Keys.FeedMedium):
		return a, a.scheduleEffects(a.engine.Feed(progress.Medium))

	case key.Matches(msg, shared.Keys.FeedHard):
		return a, a.scheduleEffects(a.engine.Feed(progress.Hard))

	case key.Matches(msg, shared.Keys.FeedImpossible):
		return a, a.scheduleEffects(a.engine.Feed(progress.Impossible))
	}

	return a, nil
}

// scheduleEffects turns an Effects value into the timer commands it asks
// for: one drain tick loop and one expiry per retired slot.
func (a *App) scheduleEffects(eff progress.Effects) tea.Cmd {
	var cmds []tea.Cmd
	if eff.DrainStarted {
		cmds = append(cmds, drainTickCmd())
	}
	if cmd := a.scheduleRetirements(eff); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (a *App) scheduleRetirements(eff progress.Effects) tea.Cmd {
	if len(eff.Retired) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(eff.Retired))
	for i, id := range eff.Retired {
		cmds[i] = expireSlotCmd(id)
	}
	return tea.Batch(cmds...)
}

func (a App) View() string {
	if a.showHelp {
		return a.helpView.View()
	}

	gridView := a.board.View()
	questView := a.questPane.View()

	view := gridView + "\n\n" + questView
	view += a.renderStatusBar()
	return view
}

func (a *App) layoutSizes() {
	a.board.SetSize(a.width)

	gridH := lipgloss.Height(a.board.View())
	// 1 status bar + 2 blank lines between panes
	questH := a.height - gridH - 3
	if questH < 3 {
		questH = 3
	}
	a.questPane.SetSize(a.width, questH)
}

func (a App) renderStatusBar() string {
	parts := []string{a.cfg.WorkspaceName()}
	if a.statusMsg != "" {
		parts = append(parts, a.statusMsg)
	}
	parts = append(parts, "? for help")
	status := strings.Join(parts, " │ ")

	return "\n" + shared.StatusBarStyle.Width(a.width).Render(status)
}

// --- Commands ---

func drainTickCmd() tea.Cmd {
	return tea.Tick(progress.DrainInterval, func(t time.Time) tea.Msg {
		return shared.DrainTickMsg{}
	})
}

func expireSlotCmd(id progress.SlotID) tea.Cmd {
	return tea.Tick(progress.RetireDelay, func(t time.Time) tea.Msg {
		return shared.SlotExpiredMsg{ID: id}
	})
}

func recordCompletionCmd(store *quest.Store, task string, d progress.Difficulty) tea.Cmd {
	return func() tea.Msg {
		err := store.RecordCompletion(task, d)
		return shared.CompletionRecordedMsg{Task: task, Err: err}
	}
}

func reloadQuestsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		quests, err := quest.Load(path)
		return shared.QuestsReloadedMsg{Quests: quests, Err: err}
	}
}

func waitForQuestChange(w *quest.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		return shared.QuestFileChangedMsg{}
	}
}

package shared

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextQuest key.Binding
	PrevQuest key.Binding
	Complete  key.Binding
	Toggle    key.Binding

	FeedEasy       key.Binding
	FeedMedium     key.Binding
	FeedHard       key.Binding
	FeedImpossible key.Binding

	Help   key.Binding
	Quit   key.Binding
	Escape key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextQuest: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next quest"),
	),
	PrevQuest: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev quest"),
	),
	Complete: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "complete task"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "collapse quest"),
	),
	FeedEasy: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "feed easy"),
	),
	FeedMedium: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "feed medium"),
	),
	FeedHard: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "feed hard"),
	),
	FeedImpossible: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "feed impossible"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss status"),
	),
}

package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/robin/questdash/tui/shared"
)

type section struct {
	name string
	keys []key.Binding
}

func sections() []section {
	k := shared.Keys
	return []section{
		{"Navigation", []key.Binding{k.Up, k.Down, k.NextQuest, k.PrevQuest}},
		{"Quests", []key.Binding{k.Complete, k.Toggle}},
		{"Feed", []key.Binding{k.FeedEasy, k.FeedMedium, k.FeedHard, k.FeedImpossible}},
		{"General", []key.Binding{k.Help, k.Escape, k.Quit}},
	}
}

type Model struct {
	width  int
	height int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) View() string {
	secs := sections()

	// Align the description column across all sections.
	keyW := 0
	for _, s := range secs {
		for _, b := range s.keys {
			if w := lipgloss.Width(b.Help().Key); w > keyW {
				keyW = w
			}
		}
	}

	var out strings.Builder
	out.WriteString(shared.QuestHeaderStyle.Render("QuestDash"))
	out.WriteString("\n")

	for _, s := range secs {
		out.WriteString("\n")
		out.WriteString(shared.QuestHeaderStyle.Render(s.name))
		out.WriteString("\n")
		for _, b := range s.keys {
			h := b.Help()
			pad := strings.Repeat(" ", keyW-lipgloss.Width(h.Key))
			out.WriteString("  ")
			out.WriteString(shared.HelpKeyStyle.Render(h.Key))
			out.WriteString(pad)
			out.WriteString("  ")
			out.WriteString(shared.HelpDescStyle.Render(h.Desc))
			out.WriteString("\n")
		}
	}

	content := shared.HelpOverlayStyle.Render(out.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

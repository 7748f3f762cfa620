package gridpane

import (
	"fmt"
	"strings"

	"github.com/robin/questdash/progress"
	"github.com/robin/questdash/tui/shared"
)

type cellState int

const (
	cellUnfilled cellState = iota
	cellFilled
	cellRetiring
)

// cell mirrors one slot on the render side.
type cell struct {
	id    progress.SlotID
	state cellState
	diff  progress.Difficulty
}

// Board renders the level header and the slot row. It implements
// progress.Surface: the engine drives it and it holds no engine state of
// its own. Methods use a pointer receiver because the engine keeps a
// reference across bubbletea model copies.
type Board struct {
	cells []cell
	level int
	width int
}

func New() *Board {
	return &Board{}
}

func (b *Board) SetSize(w int) {
	b.width = w
}

func (b *Board) indexOf(id progress.SlotID) int {
	for i, c := range b.cells {
		if c.id == id {
			return i
		}
	}
	return -1
}

// --- progress.Surface ---

func (b *Board) AppendSlot(id progress.SlotID) {
	b.cells = append(b.cells, cell{id: id})
}

func (b *Board) InsertSlotBefore(id, before progress.SlotID, unit progress.Unit) {
	filled := cell{id: id, state: cellFilled, diff: unit.Difficulty}
	at := b.indexOf(before)
	if at < 0 {
		b.cells = append(b.cells, filled)
		return
	}
	b.cells = append(b.cells, cell{})
	copy(b.cells[at+1:], b.cells[at:])
	b.cells[at] = filled
}

func (b *Board) MarkRetiring(id progress.SlotID) {
	if at := b.indexOf(id); at >= 0 {
		b.cells[at].state = cellRetiring
	}
}

func (b *Board) DetachSlot(id progress.SlotID) {
	if at := b.indexOf(id); at >= 0 {
		b.cells = append(b.cells[:at], b.cells[at+1:]...)
	}
}

func (b *Board) SetLevelText(level int) {
	b.level = level
}

// --- rendering ---

// Level returns the displayed level.
func (b *Board) Level() int {
	return b.level
}

// Progress returns filled and total non-retiring cell counts.
func (b *Board) Progress() (filled, total int) {
	for _, c := range b.cells {
		switch c.state {
		case cellFilled:
			filled++
			total++
		case cellUnfilled:
			total++
		}
	}
	return filled, total
}

const (
	filledGlyph   = "■"
	unfilledGlyph = "·"
	retiringGlyph = "▒"
)

func (b *Board) View() string {
	filled, total := b.Progress()

	var s strings.Builder
	s.WriteString("  ")
	s.WriteString(shared.LevelStyle.Render(fmt.Sprintf("LV %d", b.level)))
	s.WriteString(" ")
	s.WriteString(shared.HelpDescStyle.Render(fmt.Sprintf("%d/%d", filled, total)))
	s.WriteString("\n  ")

	// Two columns per cell (glyph + gap); wrap to the pane width.
	perLine := (b.width - 2) / 2
	if perLine < 1 {
		perLine = len(b.cells)
	}

	for i, c := range b.cells {
		if i > 0 && i%perLine == 0 {
			s.WriteString("\n  ")
		}
		switch c.state {
		case cellFilled:
			s.WriteString(shared.SlotFilledStyles[c.diff].Render(filledGlyph))
		case cellRetiring:
			s.WriteString(shared.SlotRetiringStyle.Render(retiringGlyph))
		default:
			s.WriteString(shared.SlotUnfilledStyle.Render(unfilledGlyph))
		}
		s.WriteString(" ")
	}

	return s.String()
}

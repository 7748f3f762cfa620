package questpane

import (
	"fmt"
	"strings"

	"github.com/robin/questdash/quest"
	"github.com/robin/questdash/tui/shared"
)

type ItemKind int

const (
	QuestHeader ItemKind = iota
	TaskItem
)

type FlatItem struct {
	Kind       ItemKind
	QuestIndex int
	TaskIndex  int
	Quest      *quest.Quest
	Task       *quest.Task
}

type Model struct {
	quests       []quest.Quest
	flatItems    []FlatItem
	questHeaders []int // indices into flatItems for quest headers
	collapsed    map[int]bool

	cursor       int
	scrollOffset int
	width        int
	height       int
}

func New() Model {
	return Model{
		collapsed: make(map[int]bool),
	}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetQuests replaces the quest list, carrying Done state over from the
// previous list so a file reload does not reset session progress.
func (m *Model) SetQuests(quests []quest.Quest) {
	done := make(map[string]bool)
	for _, q := range m.quests {
		for _, t := range q.Tasks {
			if t.Done {
				done[q.Name+"\x00"+t.Title] = true
			}
		}
	}
	for qi := range quests {
		for ti := range quests[qi].Tasks {
			if done[quests[qi].Name+"\x00"+quests[qi].Tasks[ti].Title] {
				quests[qi].Tasks[ti].Done = true
			}
		}
	}
	m.quests = quests
	m.rebuildFlatItems()
}

func (m Model) Quests() []quest.Quest {
	return m.quests
}

func (m *Model) rebuildFlatItems() {
	m.flatItems = nil
	m.questHeaders = nil

	for qi := range m.quests {
		q := &m.quests[qi]

		m.questHeaders = append(m.questHeaders, len(m.flatItems))
		m.flatItems = append(m.flatItems, FlatItem{
			Kind:       QuestHeader,
			QuestIndex: qi,
			Quest:      q,
		})

		if m.collapsed[qi] {
			continue
		}

		for ti := range q.Tasks {
			m.flatItems = append(m.flatItems, FlatItem{
				Kind:       TaskItem,
				QuestIndex: qi,
				TaskIndex:  ti,
				Quest:      q,
				Task:       &q.Tasks[ti],
			})
		}
	}

	// Clamp cursor
	if m.cursor >= len(m.flatItems) {
		m.cursor = len(m.flatItems) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

func (m *Model) ToggleCollapse() {
	item, ok := m.SelectedItem()
	if !ok {
		return
	}
	qi := item.QuestIndex
	m.collapsed[qi] = !m.collapsed[qi]
	m.rebuildFlatItems()
}

// listHeight returns how many items fit in the visible area.
func (m Model) listHeight() int {
	h := m.height - 1 // -1 for trailing newline
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) ensureCursorVisible() {
	h := m.listHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+h {
		m.scrollOffset = m.cursor - h + 1
	}
}

func (m *Model) MoveDown() {
	if m.cursor < len(m.flatItems)-1 {
		m.cursor++
		m.ensureCursorVisible()
	}
}

func (m *Model) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
		m.ensureCursorVisible()
	}
}

func (m *Model) NextQuest() {
	if len(m.questHeaders) == 0 {
		return
	}
	for _, idx := range m.questHeaders {
		if idx > m.cursor {
			m.cursor = idx
			m.ensureCursorVisible()
			return
		}
	}
	// Wrap around
	m.cursor = m.questHeaders[0]
	m.ensureCursorVisible()
}

func (m *Model) PrevQuest() {
	if len(m.questHeaders) == 0 {
		return
	}
	for i := len(m.questHeaders) - 1; i >= 0; i-- {
		if m.questHeaders[i] < m.cursor {
			m.cursor = m.questHeaders[i]
			m.ensureCursorVisible()
			return
		}
	}
	// Wrap around
	m.cursor = m.questHeaders[len(m.questHeaders)-1]
	m.ensureCursorVisible()
}

func (m Model) SelectedItem() (FlatItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.flatItems) {
		return FlatItem{}, false
	}
	return m.flatItems[m.cursor], true
}

// CompleteSelected marks the task under the cursor as done. Returns the
// task and true only when the cursor was on a not-yet-done task.
func (m *Model) CompleteSelected() (*quest.Task, bool) {
	item, ok := m.SelectedItem()
	if !ok || item.Kind != TaskItem {
		return nil, false
	}
	if item.Task.Done {
		return nil, false
	}
	item.Task.Done = true
	return item.Task, true
}

func (m Model) View() string {
	if len(m.flatItems) == 0 {
		return "\n  No quests found. Add some to quests.toml.\n"
	}

	visibleHeight := m.listHeight()

	var b strings.Builder
	for i, item := range m.flatItems {
		if i < m.scrollOffset {
			continue
		}
		if i >= m.scrollOffset+visibleHeight {
			break
		}

		line := m.renderItem(item)
		if i == m.cursor {
			line = shared.CursorStyle.Width(m.width).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderItem(item FlatItem) string {
	switch item.Kind {
	case QuestHeader:
		return m.renderQuestHeader(item)
	case TaskItem:
		return m.renderTask(item)
	}
	return ""
}

func (m Model) renderQuestHeader(item FlatItem) string {
	q := item.Quest
	name := shared.QuestHeaderStyle.Render(q.Name)

	chevron := "▼"
	if m.collapsed[item.QuestIndex] {
		chevron = "▶"
	}

	count := shared.HelpDescStyle.Render(fmt.Sprintf("(%d/%d)", q.DoneCount(), len(q.Tasks)))
	if q.DoneCount() == len(q.Tasks) && len(q.Tasks) > 0 {
		count += " " + shared.HelpDescStyle.Render("— complete")
	}

	return fmt.Sprintf("  %s %s %s", chevron, name, count)
}

func (m Model) renderTask(item FlatItem) string {
	t := item.Task

	badge := shared.BadgeStyles[t.Difficulty].Render("[" + t.Difficulty.String() + "]")

	var title string
	var mark string
	if t.Done {
		mark = "✓"
		title = shared.TaskDoneStyle.Render(t.Title)
	} else {
		mark = "·"
		title = shared.TaskStyle.Render(t.Title)
	}

	line := fmt.Sprintf("      %s %s %s", mark, title, badge)
	if t.Note != "" {
		line += " " + shared.TaskNoteStyle.Render(t.Note)
	}
	return line
}

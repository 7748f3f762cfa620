package questpane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robin/questdash/progress"
	"github.com/robin/questdash/quest"
)

func sampleQuests() []quest.Quest {
	return []quest.Quest{
		{
			Name: "Onboarding",
			Tasks: []quest.Task{
				{Title: "Read the handbook", Difficulty: progress.Easy},
				{Title: "Set up dev env", Difficulty: progress.Medium},
			},
		},
		{
			Name: "Shipping",
			Tasks: []quest.Task{
				{Title: "First deploy", Difficulty: progress.Hard},
			},
		},
	}
}

func TestCompleteSelected(t *testing.T) {
	m := New()
	m.SetSize(80, 24)
	m.SetQuests(sampleQuests())

	// Cursor starts on the quest header
	_, ok := m.CompleteSelected()
	assert.False(t, ok)

	m.MoveDown()
	task, ok := m.CompleteSelected()
	require.True(t, ok)
	assert.Equal(t, "Read the handbook", task.Title)
	assert.True(t, task.Done)

	// Completing the same task again is refused
	_, ok = m.CompleteSelected()
	assert.False(t, ok)
}

func TestSetQuestsCarriesDoneState(t *testing.T) {
	m := New()
	m.SetSize(80, 24)
	m.SetQuests(sampleQuests())

	m.MoveDown()
	_, ok := m.CompleteSelected()
	require.True(t, ok)

	// Reload with an extra task, as a file edit would produce
	reloaded := sampleQuests()
	reloaded[0].Tasks = append(reloaded[0].Tasks, quest.Task{
		Title: "Meet the team", Difficulty: progress.Easy,
	})
	m.SetQuests(reloaded)

	quests := m.Quests()
	require.Len(t, quests[0].Tasks, 3)
	assert.True(t, quests[0].Tasks[0].Done)
	assert.False(t, quests[0].Tasks[1].Done)
	assert.False(t, quests[0].Tasks[2].Done)
}

func TestQuestNavigation(t *testing.T) {
	m := New()
	m.SetSize(80, 24)
	m.SetQuests(sampleQuests())

	m.NextQuest()
	item, ok := m.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, QuestHeader, item.Kind)
	assert.Equal(t, 1, item.QuestIndex)

	// Wraps back to the first quest
	m.NextQuest()
	item, _ = m.SelectedItem()
	assert.Equal(t, 0, item.QuestIndex)

	m.NextQuest()
	m.PrevQuest()
	item, _ = m.SelectedItem()
	assert.Equal(t, 0, item.QuestIndex)
}

func TestToggleCollapseHidesTasks(t *testing.T) {
	m := New()
	m.SetSize(80, 24)
	m.SetQuests(sampleQuests())

	m.ToggleCollapse()
	assert.Len(t, m.flatItems, 3)

	m.ToggleCollapse()
	assert.Len(t, m.flatItems, 5)
}

func TestCursorClampedOnReload(t *testing.T) {
	m := New()
	m.SetSize(80, 24)
	m.SetQuests(sampleQuests())

	for i := 0; i < 10; i++ {
		m.MoveDown()
	}
	m.SetQuests([]quest.Quest{{Name: "Solo", Tasks: []quest.Task{
		{Title: "Only task", Difficulty: progress.Easy},
	}}})

	item, ok := m.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, TaskItem, item.Kind)
}

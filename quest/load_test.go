package quest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robin/questdash/progress"
)

func writeQuestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quests.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeQuestFile(t, `
[[quest]]
name = "Onboarding"

  [[quest.task]]
  title = "Read the handbook"
  difficulty = "easy"
  done = true

  [[quest.task]]
  title = "Ship a fix"
  difficulty = "hard"
  note = "pair with someone"

[[quest]]
name = "Side quests"

  [[quest.task]]
  title = "Refactor the build"
  difficulty = "impossible"
`)

	quests, err := Load(path)
	require.NoError(t, err)
	require.Len(t, quests, 2)

	assert.Equal(t, "Onboarding", quests[0].Name)
	require.Len(t, quests[0].Tasks, 2)
	assert.Equal(t, progress.Easy, quests[0].Tasks[0].Difficulty)
	assert.True(t, quests[0].Tasks[0].Done)
	assert.Equal(t, progress.Hard, quests[0].Tasks[1].Difficulty)
	assert.Equal(t, "pair with someone", quests[0].Tasks[1].Note)
	assert.Equal(t, 1, quests[0].DoneCount())

	assert.Equal(t, progress.Impossible, quests[1].Tasks[0].Difficulty)
	assert.Equal(t, 0, quests[1].DoneCount())
}

func TestLoadUnknownDifficulty(t *testing.T) {
	path := writeQuestFile(t, `
[[quest]]
name = "Broken"

  [[quest.task]]
  title = "Mystery"
  difficulty = "legendary"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "legendary")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

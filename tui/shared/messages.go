package shared

import (
	"github.com/robin/questdash/progress"
	"github.com/robin/questdash/quest"
)

// DrainTickMsg fires every progress.DrainInterval while a drain is active.
type DrainTickMsg struct{}

// SlotExpiredMsg detaches one retiring slot after its grace delay.
type SlotExpiredMsg struct {
	ID progress.SlotID
}

// CompletionRecordedMsg reports the result of appending to the history log.
type CompletionRecordedMsg struct {
	Task string
	Err  error
}

// QuestFileChangedMsg signals the quest file was edited on disk.
type QuestFileChangedMsg struct{}

// QuestsReloadedMsg carries the reloaded quest list.
type QuestsReloadedMsg struct {
	Quests []quest.Quest
	Err    error
}

package quest

import "github.com/robin/questdash/progress"

// Task is one completable item in a quest.
type Task struct {
	Title      string
	Difficulty progress.Difficulty
	Note       string
	Done       bool
}

// Quest groups related tasks under a name.
type Quest struct {
	Name  string
	Tasks []Task
}

// DoneCount returns how many of the quest's tasks are done.
func (q Quest) DoneCount() int {
	n := 0
	for _, t := range q.Tasks {
		if t.Done {
			n++
		}
	}
	return n
}

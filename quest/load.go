package quest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/robin/questdash/progress"
)

type questFile struct {
	Quests []questEntry `toml:"quest"`
}

type questEntry struct {
	Name  string      `toml:"name"`
	Tasks []taskEntry `toml:"task"`
}

type taskEntry struct {
	Title      string `toml:"title"`
	Difficulty string `toml:"difficulty"`
	Note       string `toml:"note,omitempty"`
	Done       bool   `toml:"done,omitempty"`
}

// Load reads a TOML quest file.
func Load(path string) ([]Quest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading quest file: %w", err)
	}

	var qf questFile
	if err := toml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing quest file: %w", err)
	}

	quests := make([]Quest, 0, len(qf.Quests))
	for _, qe := range qf.Quests {
		q := Quest{Name: qe.Name}
		for _, te := range qe.Tasks {
			d, err := progress.ParseDifficulty(te.Difficulty)
			if err != nil {
				return nil, fmt.Errorf("quest %q, task %q: %w", qe.Name, te.Title, err)
			}
			q.Tasks = append(q.Tasks, Task{
				Title:      te.Title,
				Difficulty: d,
				Note:       te.Note,
				Done:       te.Done,
			})
		}
		quests = append(quests, q)
	}
	return quests, nil
}

package progress

import "fmt"

// recorderSurface records every capability call so tests can assert on
// the visual effects without a real rendering surface.
type recorderSurface struct {
	calls  []string
	levels []int
}

func (r *recorderSurface) AppendSlot(id SlotID) {
	r.calls = append(r.calls, fmt.Sprintf("append %d", id))
}

func (r *recorderSurface) InsertSlotBefore(id, before SlotID, unit Unit) {
	r.calls = append(r.calls, fmt.Sprintf("insert %d before %d %s", id, before, unit.Difficulty))
}

func (r *recorderSurface) MarkRetiring(id SlotID) {
	r.calls = append(r.calls, fmt.Sprintf("retire %d", id))
}

func (r *recorderSurface) DetachSlot(id SlotID) {
	r.calls = append(r.calls, fmt.Sprintf("detach %d", id))
}

func (r *recorderSurface) SetLevelText(level int) {
	r.calls = append(r.calls, fmt.Sprintf("level %d", level))
	r.levels = append(r.levels, level)
}

func (r *recorderSurface) count(op string) int {
	n := 0
	for _, c := range r.calls {
		var got SlotID
		if _, err := fmt.Sscanf(c, op+" %d", &got); err == nil {
			n++
		}
	}
	return n
}

func (r *recorderSurface) inserts() int { return r.count("insert") }
func (r *recorderSurface) appends() int { return r.count("append") }
func (r *recorderSurface) retires() int { return r.count("retire") }
func (r *recorderSurface) detaches() int { return r.count("detach") }

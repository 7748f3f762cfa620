package progress

type slotState int

const (
	slotUnfilled slotState = iota
	slotFilled
)

type slot struct {
	id    SlotID
	state slotState
	unit  Unit
}

// Grid is the ordered row of slots for the current level. Retired slots
// leave the logical list immediately but are tracked until their
// grace-delay detachment so the surface can finish their exit animation.
type Grid struct {
	surface  Surface
	slots    []slot
	retiring map[SlotID]struct{}
	nextID   SlotID
}

func NewGrid(surface Surface) *Grid {
	return &Grid{surface: surface, retiring: make(map[SlotID]struct{})}
}

func (g *Grid) newID() SlotID {
	g.nextID++
	return g.nextID
}

// Build appends unfilled slots until the grid holds toCapacity
// non-retiring slots.
func (g *Grid) Build(toCapacity int) {
	for len(g.slots) < toCapacity {
		id := g.newID()
		g.slots = append(g.slots, slot{id: id, state: slotUnfilled})
		g.surface.AppendSlot(id)
	}
}

// RetireAll marks every slot retiring in reverse insertion order and
// clears the logical list. Each returned ID still needs an ExpireSlot
// call after the grace delay.
func (g *Grid) RetireAll() []SlotID {
	ids := make([]SlotID, 0, len(g.slots))
	for i := len(g.slots) - 1; i >= 0; i-- {
		id := g.slots[i].id
		g.retiring[id] = struct{}{}
		g.surface.MarkRetiring(id)
		ids = append(ids, id)
	}
	g.slots = g.slots[:0]
	return ids
}

// Place fills a fresh slot with unit at index at, retiring the slot that
// held the position. at must reference an unfilled slot; callers obtain
// it from FirstUnfilled.
func (g *Grid) Place(unit Unit, at int) SlotID {
	old := g.slots[at]
	id := g.newID()
	g.surface.InsertSlotBefore(id, old.id, unit)
	g.retiring[old.id] = struct{}{}
	g.surface.MarkRetiring(old.id)
	g.slots[at] = slot{id: id, state: slotFilled, unit: unit}
	return old.id
}

// FirstUnfilled returns the index of the first unfilled slot, or false
// when the grid is saturated.
func (g *Grid) FirstUnfilled() (int, bool) {
	for i, s := range g.slots {
		if s.state == slotUnfilled {
			return i, true
		}
	}
	return 0, false
}

// ExpireSlot detaches a retiring slot once its grace delay has passed.
// Unknown or already-expired IDs are ignored.
func (g *Grid) ExpireSlot(id SlotID) {
	if _, ok := g.retiring[id]; !ok {
		return
	}
	delete(g.retiring, id)
	g.surface.DetachSlot(id)
}

// FlushRetiring detaches every pending slot immediately.
func (g *Grid) FlushRetiring() {
	for id := range g.retiring {
		delete(g.retiring, id)
		g.surface.DetachSlot(id)
	}
}

// CancelRetiring forgets pending retirements without touching the
// surface. For teardown, when the surface is about to go away.
func (g *Grid) CancelRetiring() {
	clear(g.retiring)
}

// Len reports the number of non-retiring slots.
func (g *Grid) Len() int { return len(g.slots) }

package progress

import "time"

const (
	// DrainInterval is the cadence at which queued units are placed
	// after the first synchronous placement.
	DrainInterval = 500 * time.Millisecond
	// RetireDelay is how long a retiring slot stays visible before it
	// is detached.
	RetireDelay = 200 * time.Millisecond
)

// Effects tells the driver which timers to schedule after a mutating
// call. DrainStarted means a DrainTick loop at DrainInterval; each slot
// in Retired needs an ExpireSlot call after RetireDelay. The engine
// itself never sleeps.
type Effects struct {
	DrainStarted bool
	LeveledUp    bool
	Retired      []SlotID
}

// Engine owns the progress state: level counter, slot grid, feed queue
// and the drain token. Feed is the only mutator exposed to external
// collaborators; everything else is driven by the timer messages the
// Effects values ask for. All methods must be called from a single
// logical thread (the bubbletea update loop).
type Engine struct {
	surface  Surface
	grid     *Grid
	level    int
	queue    []Unit
	draining bool
}

// New replays history to seed the level, builds the grid at the
// resulting capacity and queues the leftover units. Each historical
// difficulty is weight-expanded exactly once; the leftovers are already
// units and are not expanded again. Call Start to begin draining them.
func New(surface Surface, history []Difficulty) *Engine {
	level, leftover := Replay(ExpandHistory(history))
	e := &Engine{
		surface: surface,
		grid:    NewGrid(surface),
		level:   level,
		queue:   leftover,
	}
	surface.SetLevelText(level)
	e.grid.Build(Capacity(level))
	return e
}

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Draining reports whether the drain token is held.
func (e *Engine) Draining() bool { return e.draining }

// Start begins draining units queued at construction time, through the
// same path a live feed uses.
func (e *Engine) Start() Effects {
	return e.ensureDrain()
}

// Feed expands one completed task into its reward units, appends them to
// the queue and makes sure a drain is running.
func (e *Engine) Feed(d Difficulty) Effects {
	for i := 0; i < d.Weight(); i++ {
		e.queue = append(e.queue, Unit{Difficulty: d})
	}
	return e.ensureDrain()
}

// ensureDrain takes the drain token if it is free, placing the first
// queued unit synchronously for instant feedback. A no-op while a drain
// is already running or the queue is empty.
func (e *Engine) ensureDrain() Effects {
	if e.draining || len(e.queue) == 0 {
		return Effects{}
	}
	e.draining = true
	eff := e.placeNext()
	eff.DrainStarted = true
	return eff
}

// DrainTick places the next queued unit. The second return is false when
// the queue was empty at firing time: the token is released and the
// driver stops ticking.
func (e *Engine) DrainTick() (Effects, bool) {
	if !e.draining {
		return Effects{}, false
	}
	if len(e.queue) == 0 {
		e.draining = false
		return Effects{}, false
	}
	return e.placeNext(), true
}

// placeNext pops the queue head and places it. When the grid is
// saturated it runs the level-up transition instead and puts the unit
// back at the queue front; the early return is what keeps the
// transition from also attempting a placement against the full grid.
func (e *Engine) placeNext() Effects {
	u := e.queue[0]
	e.queue = e.queue[1:]

	at, ok := e.grid.FirstUnfilled()
	if !ok {
		e.level++
		e.surface.SetLevelText(e.level)
		retired := e.grid.RetireAll()
		e.grid.Build(Capacity(e.level))
		e.queue = append([]Unit{u}, e.queue...)
		return Effects{LeveledUp: true, Retired: retired}
	}

	return Effects{Retired: []SlotID{e.grid.Place(u, at)}}
}

// ExpireSlot detaches a retiring slot after its grace delay.
func (e *Engine) ExpireSlot(id SlotID) {
	e.grid.ExpireSlot(id)
}

// Teardown cancels pending retirements so nothing touches the surface
// after the program exits.
func (e *Engine) Teardown() {
	e.grid.CancelRetiring()
}

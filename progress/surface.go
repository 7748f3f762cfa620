package progress

// Unit is one atomic increment of reward progress. It carries only the
// difficulty that produced it, which the surface uses for coloring.
type Unit struct {
	Difficulty Difficulty
}

// SlotID identifies a visual slot for its whole lifecycle, including the
// retiring grace period after the slot leaves the logical grid.
type SlotID int

// Surface is the rendering capability the grid drives. The engine never
// owns the surface; it is supplied at construction and must already
// exist. Implementations must not call back into the engine.
type Surface interface {
	// AppendSlot adds an unfilled slot at the end of the row.
	AppendSlot(id SlotID)
	// InsertSlotBefore adds a filled slot for unit immediately before
	// the slot identified by before.
	InsertSlotBefore(id, before SlotID, unit Unit)
	// MarkRetiring switches a slot to its exit style. The slot stays
	// visible until DetachSlot.
	MarkRetiring(id SlotID)
	// DetachSlot removes a retiring slot from the surface for good.
	DetachSlot(id SlotID)
	// SetLevelText updates the level display.
	SetLevelText(level int)
}

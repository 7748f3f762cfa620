package progress

// Capacity returns the number of reward units required to complete
// level. Strictly increasing, so the grid never shrinks across level-ups.
func Capacity(level int) int {
	return level + 10
}

// ExpandHistory converts completed-task difficulties into reward units,
// applying each difficulty's weight exactly once. Both the history and
// the live feed path go through this single expansion.
func ExpandHistory(history []Difficulty) []Unit {
	var units []Unit
	for _, d := range history {
		for i := 0; i < d.Weight(); i++ {
			units = append(units, Unit{Difficulty: d})
		}
	}
	return units
}

// Replay fast-forwards already-expanded units to the level and leftover
// units they produce, with no visual side effects. Used once at startup.
// The leftover is always shorter than the capacity of the returned level.
func Replay(units []Unit) (level int, leftover []Unit) {
	var pending []Unit
	for _, u := range units {
		pending = append(pending, u)
		if len(pending) >= Capacity(level) {
			pending = pending[Capacity(level):]
			level++
		}
	}
	return level, pending
}

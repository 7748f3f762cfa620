package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacity(t *testing.T) {
	assert.Equal(t, 10, Capacity(0))
	assert.Equal(t, 11, Capacity(1))
	assert.Equal(t, 25, Capacity(15))

	for level := 0; level < 100; level++ {
		assert.Greater(t, Capacity(level+1), Capacity(level))
	}
}

func TestExpandHistory(t *testing.T) {
	units := ExpandHistory([]Difficulty{Easy, Hard})
	assert.Len(t, units, 4)
	assert.Equal(t, Easy, units[0].Difficulty)
	assert.Equal(t, Hard, units[1].Difficulty)
	assert.Equal(t, Hard, units[3].Difficulty)

	assert.Empty(t, ExpandHistory(nil))
}

func TestReplay(t *testing.T) {
	units := func(n int) []Unit { return make([]Unit, n) }

	t.Run("empty input", func(t *testing.T) {
		level, leftover := Replay(nil)
		assert.Equal(t, 0, level)
		assert.Empty(t, leftover)
	})

	t.Run("exactly one level", func(t *testing.T) {
		level, leftover := Replay(units(10))
		assert.Equal(t, 1, level)
		assert.Empty(t, leftover)
	})

	t.Run("one level plus leftover", func(t *testing.T) {
		for k := 1; k < Capacity(1); k++ {
			level, leftover := Replay(units(10 + k))
			assert.Equal(t, 1, level)
			assert.Len(t, leftover, k)
		}
	})

	t.Run("several levels", func(t *testing.T) {
		// 10 + 11 completes levels 0 and 1.
		level, leftover := Replay(units(21))
		assert.Equal(t, 2, level)
		assert.Empty(t, leftover)

		level, leftover = Replay(units(25))
		assert.Equal(t, 2, level)
		assert.Len(t, leftover, 4)
	})

	t.Run("leftover always below capacity", func(t *testing.T) {
		for n := 0; n < 200; n++ {
			level, leftover := Replay(units(n))
			assert.Less(t, len(leftover), Capacity(level), "n=%d", n)
		}
	})

	t.Run("leftover keeps unit order", func(t *testing.T) {
		in := append(units(10), Unit{Difficulty: Hard}, Unit{Difficulty: Easy})
		level, leftover := Replay(in)
		assert.Equal(t, 1, level)
		assert.Equal(t, []Unit{{Difficulty: Hard}, {Difficulty: Easy}}, leftover)
	})
}

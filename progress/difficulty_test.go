package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeight(t *testing.T) {
	want := map[Difficulty]int{
		Easy:       1,
		Medium:     2,
		Hard:       3,
		Impossible: 4,
	}
	for d, w := range want {
		assert.Equal(t, w, d.Weight(), d.String())
	}

	t.Run("strictly increasing with severity", func(t *testing.T) {
		order := []Difficulty{Easy, Medium, Hard, Impossible}
		for i := 1; i < len(order); i++ {
			assert.Greater(t, order[i].Weight(), order[i-1].Weight())
		}
	})
}

func TestParseDifficulty(t *testing.T) {
	t.Run("all known values round-trip", func(t *testing.T) {
		for _, d := range []Difficulty{Easy, Medium, Hard, Impossible} {
			got, err := ParseDifficulty(d.String())
			require.NoError(t, err)
			assert.Equal(t, d, got)
		}
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		got, err := ParseDifficulty("  Hard ")
		require.NoError(t, err)
		assert.Equal(t, Hard, got)
	})

	t.Run("unknown value errors", func(t *testing.T) {
		_, err := ParseDifficulty("legendary")
		assert.Error(t, err)
	})
}

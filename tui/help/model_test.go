package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewListsEveryBinding(t *testing.T) {
	m := New()
	m.SetSize(80, 40)
	view := m.View()

	for _, s := range sections() {
		assert.Contains(t, view, s.name)
		for _, b := range s.keys {
			assert.Contains(t, view, b.Help().Desc)
		}
	}
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("Indian Contract Act")
		b := IDFromContent("Indian Contract Act")
		assert.Equal(t, a, b)
	})

	t.Run("distinct content distinct ids", func(t *testing.T) {
		a := IDFromContent("Indian Contract Act")
		b := IDFromContent("Companies Act")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty content still hashes", func(t *testing.T) {
		assert.NotZero(t, IDFromContent(""))
	})
}

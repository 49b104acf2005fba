package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedUnits(t *testing.T) {
	t.Run("combines items and boxes", func(t *testing.T) {
		assert.Equal(t, 58, NormalizedUnits(10, 4, 12))
	})

	t.Run("box size zero contributes nothing for boxes", func(t *testing.T) {
		assert.Equal(t, 10, NormalizedUnits(10, 4, 0))
	})

	t.Run("zero stock", func(t *testing.T) {
		assert.Equal(t, 0, NormalizedUnits(0, 0, 12))
	})
}

func TestDecompose(t *testing.T) {
	t.Run("splits into minimal box and item counts", func(t *testing.T) {
		items, boxes := Decompose(58, 12)
		assert.Equal(t, 10, items)
		assert.Equal(t, 4, boxes)
	})

	t.Run("exact multiple yields no loose items", func(t *testing.T) {
		items, boxes := Decompose(48, 12)
		assert.Equal(t, 0, items)
		assert.Equal(t, 4, boxes)
	})

	t.Run("box size zero keeps everything loose", func(t *testing.T) {
		items, boxes := Decompose(58, 0)
		assert.Equal(t, 58, items)
		assert.Equal(t, 0, boxes)
	})

	t.Run("round trips with NormalizedUnits", func(t *testing.T) {
		for _, total := range []int{0, 1, 11, 12, 13, 144} {
			items, boxes := Decompose(total, 12)
			assert.Equal(t, total, NormalizedUnits(items, boxes, 12))
		}
	})
}

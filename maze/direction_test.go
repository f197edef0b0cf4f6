package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionModel(t *testing.T) {
	headings := []AbsoluteDirection{Up, Right, Down, Left}
	turns := []RelativeDirection{Forward, Backward, TurnLeft, TurnRight}

	t.Run("Relative inverts Absolute", func(t *testing.T) {
		for _, h := range headings {
			for _, r := range turns {
				assert.Equal(t, r, h.Relative(h.Absolute(r)), "heading %s turn %s", h, r)
			}
		}
	})

	t.Run("Rotation follows clockwise order", func(t *testing.T) {
		assert.Equal(t, Right, Up.Absolute(TurnRight))
		assert.Equal(t, Left, Up.Absolute(TurnLeft))
		assert.Equal(t, Down, Up.Absolute(Backward))
		assert.Equal(t, Up, Up.Absolute(Forward))
		assert.Equal(t, Up, Left.Absolute(TurnRight))
		assert.Equal(t, Down, Left.Absolute(TurnLeft))
	})

	t.Run("None absorbs", func(t *testing.T) {
		for _, r := range turns {
			assert.Equal(t, None, None.Absolute(r))
		}
		for _, h := range headings {
			assert.Equal(t, None, h.Absolute(Stay))
			assert.Equal(t, Stay, h.Relative(None))
		}
		assert.Equal(t, Stay, None.Relative(Up))
	})

	t.Run("Out-of-range values panic", func(t *testing.T) {
		assert.Panics(t, func() { AbsoluteDirection(9).Absolute(Forward) })
		assert.Panics(t, func() { Up.Absolute(RelativeDirection(9)) })
		assert.Panics(t, func() { Up.Relative(AbsoluteDirection(-2)) })
	})
}

func TestParseDirection(t *testing.T) {
	t.Run("Round-trips the String names", func(t *testing.T) {
		for _, d := range []AbsoluteDirection{None, Up, Right, Down, Left} {
			parsed, err := ParseDirection(d.String())
			assert.NoError(t, err)
			assert.Equal(t, d, parsed)
		}
		for _, r := range []RelativeDirection{Stay, Forward, Backward, TurnLeft, TurnRight} {
			parsed, err := ParseDirection(r.String())
			assert.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	})

	t.Run("Case and whitespace are forgiven", func(t *testing.T) {
		parsed, err := ParseDirection("  forward ")
		assert.NoError(t, err)
		assert.Equal(t, Forward, parsed)
	})

	t.Run("Unknown input is rejected", func(t *testing.T) {
		_, err := ParseDirection("SIDEWAYS")
		assert.ErrorIs(t, err, ErrUnknownDirection)
	})
}

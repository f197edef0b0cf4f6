package maze

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroRand always draws index 0, which pins generation to the first frontier
// cell and the first connectable neighbor every iteration.
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

// edgeCount sums connection-set sizes; each corridor is recorded on both of
// its cells.
func edgeCount(m *Maze) int {
	total := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			total += len(m.ConnectedNeighbors(Point{X: x, Y: y}))
		}
	}
	return total / 2
}

func reachableFromStart(m *Maze) int {
	seen := map[Point]struct{}{m.Start(): {}}
	queue := []Point{m.Start()}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range m.ConnectedNeighbors(p) {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}

func TestNewRejectsInvalidSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		_, err := New(dims[0], dims[1], rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrInvalidSize, "dims %v", dims)
	}
}

func TestGeneratedMazeIsPerfect(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 5}, {4, 1}, {3, 3}, {6, 4}, {10, 10}}
	for _, size := range sizes {
		for seed := int64(0); seed < 5; seed++ {
			m, err := New(size[0], size[1], rand.New(rand.NewSource(seed)))
			require.NoError(t, err)

			cells := size[0] * size[1]
			assert.Equal(t, cells-1, edgeCount(m), "size %v seed %d", size, seed)
			assert.Equal(t, cells, reachableFromStart(m), "size %v seed %d", size, seed)
		}
	}
}

func TestSameSeedSameMaze(t *testing.T) {
	a, err := New(15, 9, rand.New(rand.NewSource(19790122)))
	require.NoError(t, err)
	b, err := New(15, 9, rand.New(rand.NewSource(19790122)))
	require.NoError(t, err)

	assert.Equal(t, a.Start(), b.Start())
	assert.Equal(t, a.End(), b.End())
	assert.Equal(t, a.String(), b.String())
}

func TestStartAndEndSitOnOppositeEdges(t *testing.T) {
	m, err := New(7, 4, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	assert.Equal(t, 0, m.Start().X)
	assert.Equal(t, 6, m.End().X)
	assert.True(t, m.InBound(m.Start()))
	assert.True(t, m.InBound(m.End()))
}

func TestOneByOneMaze(t *testing.T) {
	m, err := New(1, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, Point{X: 0, Y: 0}, m.Start())
	assert.Equal(t, m.Start(), m.End())
	assert.Equal(t, 0, edgeCount(m))
}

func TestCanMove(t *testing.T) {
	// A 3x1 maze is always a straight corridor, whatever the seed draws.
	m, err := New(3, 1, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	origin := Point{X: 0, Y: 0}
	assert.True(t, m.CanMove(origin, Right))
	assert.False(t, m.CanMove(origin, Left), "off-grid moves never fault")
	assert.False(t, m.CanMove(origin, Up))
	assert.False(t, m.CanMove(origin, Down))
	assert.False(t, m.CanMove(origin, None))
	assert.False(t, m.CanMove(Point{X: 9, Y: 9}, Right), "queries from outside the grid report false")

	middle := Point{X: 1, Y: 0}
	assert.True(t, m.CanMove(middle, Left))
	assert.True(t, m.CanMove(middle, Right))
}

func TestMoveTranslates(t *testing.T) {
	p := Point{X: 2, Y: 2}
	m, err := New(5, 5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, Point{X: 2, Y: 1}, m.Move(p, Up))
	assert.Equal(t, Point{X: 2, Y: 3}, m.Move(p, Down))
	assert.Equal(t, Point{X: 1, Y: 2}, m.Move(p, Left))
	assert.Equal(t, Point{X: 3, Y: 2}, m.Move(p, Right))
	assert.Equal(t, p, m.Move(p, None))
	assert.Panics(t, func() { m.Move(p, AbsoluteDirection(42)) })
}

func TestHeading(t *testing.T) {
	p := Point{X: 3, Y: 3}
	assert.Equal(t, Up, Heading(p, p.Above()))
	assert.Equal(t, Down, Heading(p, p.Below()))
	assert.Equal(t, Left, Heading(p, p.Left()))
	assert.Equal(t, Right, Heading(p, p.Right()))
	assert.Equal(t, None, Heading(p, p))
	assert.Equal(t, None, Heading(p, Point{X: 0, Y: 0}))
}

func TestRenderedLayoutFixture(t *testing.T) {
	// With every draw pinned to zero the 3x3 maze is fully determined: the top
	// row and the left column are corridors, the rest hangs off them.
	m, err := New(3, 3, zeroRand{})
	require.NoError(t, err)

	assert.Equal(t, Point{X: 0, Y: 0}, m.Start())
	assert.Equal(t, Point{X: 2, Y: 0}, m.End())

	expected := strings.Join([]string{
		"┌───────────┐",
		"             ",
		"│   ╶───────┤",
		"│           │",
		"│   ╶───────┤",
		"│           │",
		"└───────────┘",
	}, "\n")
	assert.Equal(t, expected, m.String())
}

func TestLayoutQueries(t *testing.T) {
	m, err := New(3, 3, zeroRand{})
	require.NoError(t, err)
	l := m.Layout()

	assert.Equal(t, 3, l.Width)
	assert.Equal(t, 3, l.Height)
	assert.Equal(t, m.Start(), l.Start)
	assert.Equal(t, m.End(), l.End)

	// Top row is a corridor: interior left walls are open, the boundary above
	// is closed.
	assert.True(t, l.WallAbove(0, 0))
	assert.True(t, l.WallAbove(1, 0))
	assert.False(t, l.WallLeft(1, 0))
	assert.False(t, l.WallLeft(2, 0))

	// The left column is open vertically.
	assert.False(t, l.WallAbove(0, 1))
	assert.False(t, l.WallAbove(0, 2))

	// Outside the left column each row is walled off from the row above.
	assert.True(t, l.WallAbove(1, 1))
	assert.True(t, l.WallAbove(2, 2))

	// Outside the grid everything is a wall.
	assert.True(t, l.WallAbove(-1, 0))
	assert.True(t, l.WallLeft(0, 3))
}

func TestCharPosition(t *testing.T) {
	assert.Equal(t, Point{X: 2, Y: 1}, CharPosition(Point{X: 0, Y: 0}))
	assert.Equal(t, Point{X: 10, Y: 3}, CharPosition(Point{X: 2, Y: 1}))
}

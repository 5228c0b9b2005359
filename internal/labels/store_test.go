package labels

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreIsUnlabeled(t *testing.T) {
	s := NewStore(4, DefaultPalette)

	assert.Equal(t, []int{0, 0, 0, 0}, s.Mask())
	for _, c := range s.EdgeColors() {
		assert.Equal(t, DefaultPalette.Base(), c)
	}
	assert.Equal(t, 4, s.Counts()[0])
}

func TestAssignTouchesOnlyHits(t *testing.T) {
	s := NewStore(5, DefaultPalette)
	s.Assign(roaring.BitmapOf(1, 3), 2)

	assert.Equal(t, []int{0, 2, 0, 2, 0}, s.Mask())
	edges := s.EdgeColors()
	assert.Equal(t, DefaultPalette[2], edges[1])
	assert.Equal(t, DefaultPalette[2], edges[3])
	assert.Equal(t, DefaultPalette[0], edges[0])

	counts := s.Counts()
	assert.Equal(t, 3, counts[0])
	assert.Equal(t, 2, counts[2])
}

func TestAssignWrapsPaletteLookup(t *testing.T) {
	s := NewStore(2, DefaultPalette)
	s.Assign(roaring.BitmapOf(0), 13)
	s.Assign(roaring.BitmapOf(1), -1)

	assert.Equal(t, []int{13, -1}, s.Mask())
	assert.Equal(t, DefaultPalette[3], s.EdgeColors()[0])
	assert.Equal(t, DefaultPalette[9], s.EdgeColors()[1])
}

func TestAssignIgnoresOutOfRange(t *testing.T) {
	s := NewStore(2, DefaultPalette)
	s.Assign(roaring.BitmapOf(1, 7), 4)
	s.Assign(nil, 4)

	assert.Equal(t, []int{0, 4}, s.Mask())
}

func TestResetIsIdempotent(t *testing.T) {
	s := NewStore(3, DefaultPalette)
	s.Assign(roaring.BitmapOf(0, 1, 2), 5)

	s.Reset()
	once := s.Mask()
	onceEdges := append([]Color(nil), s.EdgeColors()...)
	s.Reset()

	require.Equal(t, []int{0, 0, 0}, once)
	assert.Equal(t, once, s.Mask())
	assert.Equal(t, onceEdges, s.EdgeColors())
	for _, c := range s.EdgeColors() {
		assert.Equal(t, DefaultPalette.Base(), c)
	}
}

func TestMaskIsACopy(t *testing.T) {
	s := NewStore(2, DefaultPalette)
	m := s.Mask()
	m[0] = 9

	assert.Equal(t, 0, s.Label(0))
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index(10))
	assert.Equal(t, 9, Index(-1))
	assert.Equal(t, 1, Index(-19))
}

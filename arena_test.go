package extrude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointArenaAppend(t *testing.T) {
	a := NewPointArena(2)
	assert.True(t, a.Append(Pt(0, 0)))
	assert.False(t, a.Append(Pt(0, 0)), "duplicate of last point recorded")
	assert.True(t, a.Append(Pt(1, 0)))
	assert.True(t, a.Append(Pt(0, 0)), "only the last point is compared")
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []Point2{Pt(0, 0), Pt(1, 0), Pt(0, 0)}, a.Points())
}

func TestPointArenaResetKeepsStorage(t *testing.T) {
	a := NewPointArena(0)
	for i := range 100 {
		a.Append(Pt(float64(i), 0))
	}
	c := a.Cap()
	a.Reset()

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, c, a.Cap())
	_, ok := a.Last()
	assert.False(t, ok)

	a.Append(Pt(7, 7))
	assert.Equal(t, []Point2{Pt(7, 7)}, a.Points())
}

func TestPointArenaReserve(t *testing.T) {
	a := NewPointArena(0)
	a.Append(Pt(1, 1))
	a.Reserve(50)
	assert.GreaterOrEqual(t, a.Cap(), 51)
	assert.Equal(t, Pt(1, 1), a.At(0))
}

func TestPointArenaAccessors(t *testing.T) {
	var a PointArena
	_, ok := a.First()
	assert.False(t, ok)
	assert.Nil(t, a.Snapshot())

	a.Append(Pt(1, 0))
	a.Append(Pt(2, 0))
	a.Append(Pt(3, 0))

	first, _ := a.First()
	last, _ := a.Last()
	assert.Equal(t, Pt(1, 0), first)
	assert.Equal(t, Pt(3, 0), last)
	assert.Equal(t, Pt(2, 0), a.At(1))
	assert.Panics(t, func() { a.At(3) })

	a.Reverse()
	assert.Equal(t, []Point2{Pt(3, 0), Pt(2, 0), Pt(1, 0)}, a.Points())

	a.TrimLast()
	assert.Equal(t, 2, a.Len())
}

func TestPointArenaSnapshotIsIndependent(t *testing.T) {
	var a PointArena
	a.Append(Pt(1, 2))
	a.Append(Pt(3, 4))

	snap := a.Snapshot()
	require.Len(t, snap, 2)

	a.Reset()
	a.Append(Pt(9, 9))
	assert.Equal(t, Pt(1, 2), snap[0], "snapshot aliased the arena")
}

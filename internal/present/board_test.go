package present

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TOMfoolery2025/PlanarityTesting/pkg/planarity"
)

func TestBoardSnapshots(t *testing.T) {
	b := NewBoard()

	start := b.Snapshot()
	assert.Equal(t, uint64(0), start.Seq)
	assert.Empty(t, start.Status)
	assert.False(t, start.Original.Visible)

	b.ShowStatus("Processing…", ToneNeutral)
	b.ShowOriginal(planarity.Image{Data: []byte("o")})
	b.ShowSubdivision("sub", planarity.Image{Data: []byte("s")})
	b.ShowMinor("min", planarity.Image{})

	snap := b.Snapshot()
	assert.Equal(t, uint64(4), snap.Seq)
	assert.Equal(t, "Processing…", snap.Status)
	assert.Equal(t, ToneNeutral, snap.Tone)
	require.True(t, snap.Original.Visible)
	assert.Equal(t, []byte("o"), snap.Original.Image.Data)
	assert.Equal(t, "sub", snap.Subdivision.Label)
	require.True(t, snap.Minor.Visible)
	assert.True(t, snap.Minor.Image.Empty())

	// A snapshot is a copy: later writes do not leak into it.
	b.ShowStatus("done", TonePositive)
	assert.Equal(t, "Processing…", snap.Status)
}

func TestBoardReset(t *testing.T) {
	b := NewBoard()
	b.ShowStatus("old", ToneNegative)
	b.ShowOriginal(planarity.Image{Data: []byte("o")})

	before := b.Snapshot()
	b.Reset()
	snap := b.Snapshot()

	// Reset clears content but keeps the sequence monotonic so renderers
	// notice the change.
	assert.Greater(t, snap.Seq, before.Seq)
	assert.Empty(t, snap.Status)
	assert.Equal(t, ToneNeutral, snap.Tone)
	assert.False(t, snap.Original.Visible)
	assert.False(t, snap.Subdivision.Visible)
	assert.False(t, snap.Minor.Visible)
}

package present

import (
	"sync"

	"github.com/TOMfoolery2025/PlanarityTesting/pkg/planarity"
)

// Region is one displayable result slot: a label and an image, hidden
// until shown.
type Region struct {
	Visible bool
	Label   string
	Image   planarity.Image
}

// Snapshot is one coherent copy of the whole display.
type Snapshot struct {
	// Seq increases on every mutation so renderers can skip unchanged
	// frames.
	Seq         uint64
	Status      string
	Tone        Tone
	Original    Region
	Subdivision Region
	Minor       Region
}

// Board is a View that holds the current display state for pull-based
// renderers: the terminal UI and the preview page draw whatever the latest
// Snapshot says, whenever they like.
type Board struct {
	mu   sync.RWMutex
	snap Snapshot
}

var _ View = (*Board)(nil)

func NewBoard() *Board { return &Board{} }

// Snapshot returns a copy of the current display state.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap
}

func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap = Snapshot{Seq: b.snap.Seq + 1}
}

func (b *Board) ShowStatus(text string, tone Tone) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap.Seq++
	b.snap.Status = text
	b.snap.Tone = tone
}

func (b *Board) ShowOriginal(img planarity.Image) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap.Seq++
	b.snap.Original = Region{Visible: true, Image: img}
}

func (b *Board) ShowSubdivision(label string, img planarity.Image) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap.Seq++
	b.snap.Subdivision = Region{Visible: true, Label: label, Image: img}
}

func (b *Board) ShowMinor(label string, img planarity.Image) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap.Seq++
	b.snap.Minor = Region{Visible: true, Label: label, Image: img}
}

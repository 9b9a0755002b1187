// Package present drives the result display for analysis invocations:
// reset, file ingestion, the remote request, and the conditional fan-out
// over the response. All failure paths end in the status region; nothing
// escapes an invocation.
package present

import "github.com/TOMfoolery2025/PlanarityTesting/pkg/planarity"

// Tone is the semantic styling of the status message. Exactly one tone is
// in effect once an invocation settles.
type Tone int

const (
	// ToneNeutral marks an invocation still in progress.
	ToneNeutral Tone = iota
	// TonePositive marks a planar verdict.
	TonePositive
	// ToneNegative marks a non-planar verdict or any failure.
	ToneNegative
)

func (t Tone) String() string {
	switch t {
	case TonePositive:
		return "positive"
	case ToneNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// View is a presentation surface: one status line plus the original,
// subdivision, and minor regions. Reset hides every region; each Show call
// both populates and reveals its target. A region is written at most once
// per invocation.
type View interface {
	Reset()
	ShowStatus(text string, tone Tone)
	ShowOriginal(img planarity.Image)
	ShowSubdivision(label string, img planarity.Image)
	ShowMinor(label string, img planarity.Image)
}

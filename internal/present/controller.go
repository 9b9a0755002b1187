package present

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/TOMfoolery2025/PlanarityTesting/pkg/graph"
	"github.com/TOMfoolery2025/PlanarityTesting/pkg/planarity"
)

// Kind classifies how an invocation ended.
type Kind int

const (
	KindOK Kind = iota
	// KindNoFile: no graph file was selected; nothing was read or sent.
	KindNoFile
	// KindReadError: the selected file could not be read.
	KindReadError
	// KindBadJSON: the file was read but is not a JSON object.
	KindBadJSON
	// KindServerError: the service answered, but with a non-2xx status or
	// without the success sentinel.
	KindServerError
	// KindUnexpected: anything else in the chain, such as transport
	// failures, unreadable or non-JSON response bodies, bad image
	// payloads, and panics.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNoFile:
		return "no-file"
	case KindReadError:
		return "read-error"
	case KindBadJSON:
		return "bad-json"
	case KindServerError:
		return "server-error"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// User-facing status strings. fileErrorFormat doubles as the catch-all
// template: the invalid-JSON path and every unexpected failure share it.
const (
	statusProcessing = "Processing…"
	msgNoFile        = "No graph file selected."
	msgReadError     = "Could not read the graph file."
	fileErrorFormat  = "File Error: Invalid JSON or network issue. (%v)"
	resultPrefix     = "Result: "
	errorPrefix      = "Error: "
	fallbackError    = "Unknown server error"

	subdivisionPrefix = "Intermediate Subdivision: "
	minorFormat       = "Minimal Kuratowski Minor (%s)"
)

// kuratowskiSuffix is the service's label suffix stripped for the minor
// caption ("K5 Subdivision" → "K5"). Coupled to the service's current
// vocabulary; see minorName.
const kuratowskiSuffix = " Subdivision"

// Controller runs analysis invocations against a single view. A new Run
// supersedes any still in flight: writes from an older invocation are
// discarded silently, so the view only ever shows one coherent result.
type Controller struct {
	client *planarity.Client
	view   View
	log    *logrus.Logger

	gen atomic.Uint64
	mu  sync.Mutex // serializes view writes across invocations
}

// NewController wires a service client to a view. A nil log gets a default
// logger.
func NewController(client *planarity.Client, view View, log *logrus.Logger) *Controller {
	if log == nil {
		log = logrus.New()
	}
	return &Controller{client: client, view: view, log: log}
}

// Outcome summarizes one finished invocation for callers (exit codes,
// detail lines, reload broadcasts). The view has already been updated; the
// Outcome never carries anything the user has not been shown.
type Outcome struct {
	ID      string
	Gen     uint64
	Kind    Kind
	Err     error
	Result  *planarity.Result
	Payload *graph.Payload
	// Stale is true when a newer invocation superseded this one before it
	// finished; its view writes were dropped.
	Stale bool
}

// OK reports whether the invocation presented a successful analysis.
func (o *Outcome) OK() bool { return o.Kind == KindOK }

// Run executes one invocation: reset the view, read and decode the file at
// path, submit it, and fan the response out to the display regions. The
// chain is self-contained; every failure is mapped onto the status region
// and reported through the Outcome, never returned as an error.
func (c *Controller) Run(ctx context.Context, path string) *Outcome {
	out := &Outcome{ID: uuid.NewString(), Gen: c.gen.Add(1)}
	entry := c.log.WithFields(logrus.Fields{"invocation": out.ID, "path": path})
	v := c.gate(out.Gen)

	// Reset before any I/O so nothing from a prior invocation stays
	// visible, even if this one fails immediately.
	v.Reset()
	v.ShowStatus(statusProcessing, ToneNeutral)

	defer func() {
		if r := recover(); r != nil {
			out.Kind = KindUnexpected
			out.Err = fmt.Errorf("panic: %v", r)
			v.ShowStatus(fmt.Sprintf(fileErrorFormat, out.Err), ToneNegative)
			entry.WithField("panic", r).Error("invocation panicked")
		}
		out.Stale = c.gen.Load() != out.Gen
	}()

	if path == "" {
		out.Kind = KindNoFile
		v.ShowStatus(msgNoFile, ToneNegative)
		return out
	}

	payload, err := graph.ReadFile(path)
	if err != nil {
		var decodeErr *graph.DecodeError
		if errors.As(err, &decodeErr) {
			out.Kind = KindBadJSON
			out.Err = err
			v.ShowStatus(fmt.Sprintf(fileErrorFormat, decodeErr.Unwrap()), ToneNegative)
		} else {
			out.Kind = KindReadError
			out.Err = err
			v.ShowStatus(msgReadError, ToneNegative)
		}
		return out
	}
	out.Payload = payload

	entry.Debug("submitting graph for analysis")
	analysis, err := c.client.Analyze(ctx, payload.JSON())
	if err != nil {
		out.Kind = KindUnexpected
		out.Err = err
		v.ShowStatus(fmt.Sprintf(fileErrorFormat, err), ToneNegative)
		entry.WithError(err).Error("analysis request failed")
		return out
	}

	out.Result = &analysis.Result
	if !analysis.OK() {
		msg := analysis.Result.Error
		if msg == "" {
			msg = fallbackError
		}
		out.Kind = KindServerError
		out.Err = fmt.Errorf("service: %s (HTTP %d)", msg, analysis.StatusCode)
		v.ShowStatus(errorPrefix+msg, ToneNegative)
		entry.WithError(out.Err).WithFields(logrus.Fields{
			"status_code": analysis.StatusCode,
			"status":      analysis.Result.Status,
		}).Error("analysis rejected")
		return out
	}

	if err := c.fanOut(v, &analysis.Result, entry); err != nil {
		out.Kind = KindUnexpected
		out.Err = err
		v.ShowStatus(fmt.Sprintf(fileErrorFormat, err), ToneNegative)
		entry.WithError(err).Error("presenting result failed")
		return out
	}

	out.Kind = KindOK
	return out
}

// fanOut decodes the result's images and drives the three-region
// conditional display.
func (c *Controller) fanOut(v View, res *planarity.Result, entry *logrus.Entry) error {
	original, err := planarity.DecodeImage(res.ImageOriginal)
	if err != nil {
		return err
	}

	tone := TonePositive
	if !res.IsPlanar {
		tone = ToneNegative
	}
	v.ShowStatus(resultPrefix+res.Title, tone)
	v.ShowOriginal(original)

	// The subdivision image alone gates both derived regions; the minor
	// image is deliberately never checked on its own. When the service
	// omits the subdivision image the non-planar case displays exactly
	// like the planar one.
	if res.IsPlanar || res.ImageSubdivision == "" {
		return nil
	}

	subdivision, err := planarity.DecodeImage(res.ImageSubdivision)
	if err != nil {
		return err
	}
	minor, err := planarity.DecodeImage(res.ImageMinor)
	if err != nil {
		return err
	}

	v.ShowSubdivision(subdivisionPrefix+res.KuratowskiType, subdivision)
	v.ShowMinor(fmt.Sprintf(minorFormat, minorName(res.KuratowskiType, entry)), minor)
	return nil
}

// minorName strips kuratowskiSuffix from the service's type label for the
// minor caption. A label without the suffix is kept as-is and logged, not
// guessed at: the suffix is the service's vocabulary, not ours.
func minorName(typ string, entry *logrus.Entry) string {
	if name, ok := strings.CutSuffix(typ, kuratowskiSuffix); ok {
		return name
	}
	entry.WithField("kuratowski_type", typ).Debug("type label missing expected suffix")
	return typ
}

// gate wraps the controller's view so writes apply only while gen is still
// the latest invocation. A stale invocation keeps running to completion;
// its writes just stop landing.
func (c *Controller) gate(gen uint64) View {
	return &gatedView{c: c, gen: gen}
}

type gatedView struct {
	c   *Controller
	gen uint64
}

var _ View = (*gatedView)(nil)

func (g *gatedView) Reset() {
	g.c.mu.Lock()
	defer g.c.mu.Unlock()
	if g.c.gen.Load() != g.gen {
		return
	}
	g.c.view.Reset()
}

func (g *gatedView) ShowStatus(text string, tone Tone) {
	g.c.mu.Lock()
	defer g.c.mu.Unlock()
	if g.c.gen.Load() != g.gen {
		return
	}
	g.c.view.ShowStatus(text, tone)
}

func (g *gatedView) ShowOriginal(img planarity.Image) {
	g.c.mu.Lock()
	defer g.c.mu.Unlock()
	if g.c.gen.Load() != g.gen {
		return
	}
	g.c.view.ShowOriginal(img)
}

func (g *gatedView) ShowSubdivision(label string, img planarity.Image) {
	g.c.mu.Lock()
	defer g.c.mu.Unlock()
	if g.c.gen.Load() != g.gen {
		return
	}
	g.c.view.ShowSubdivision(label, img)
}

func (g *gatedView) ShowMinor(label string, img planarity.Image) {
	g.c.mu.Lock()
	defer g.c.mu.Unlock()
	if g.c.gen.Load() != g.gen {
		return
	}
	g.c.view.ShowMinor(label, img)
}

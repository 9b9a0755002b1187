package ui

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TOMfoolery2025/PlanarityTesting/internal/present"
	"github.com/TOMfoolery2025/PlanarityTesting/pkg/planarity"
)

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

type fixture struct {
	model  Model
	board  *present.Board
	hits   *atomic.Int64
	outDir string
}

// newFixture wires a model to a stub analysis service that always answers
// with result.
func newFixture(t *testing.T, result map[string]any) fixture {
	t.Helper()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}))
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	board := present.NewBoard()
	controller := present.NewController(planarity.New(srv.URL), board, log)
	outDir := filepath.Join(t.TempDir(), "out")

	m := NewModel(controller, board, srv.URL, outDir)
	m.width = 100
	m.height = 40
	return fixture{model: m, board: board, hits: &hits, outDir: outDir}
}

func TestSubmitEmptyPathSkipsNetwork(t *testing.T) {
	f := newFixture(t, map[string]any{"status": "success"})

	updated, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := updated.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	msg := cmd()
	outcome, ok := msg.(outcomeMsg)
	require.True(t, ok)
	assert.Equal(t, present.KindNoFile, outcome.outcome.Kind)
	assert.Equal(t, int64(0), f.hits.Load())

	updated, _ = m.Update(outcome)
	m = updated.(Model)
	assert.False(t, m.busy)

	snap := f.board.Snapshot()
	assert.Equal(t, "No graph file selected.", snap.Status)
	assert.Equal(t, present.ToneNegative, snap.Tone)
}

func TestSubmitAnalyzesFile(t *testing.T) {
	f := newFixture(t, map[string]any{
		"status":         "success",
		"title":          "Graph is Planar",
		"is_planar":      true,
		"image_original": b64("<svg>orig</svg>"),
	})

	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"nodes":[],"edges":[]}`), 0644))

	f.model.input.SetValue(path)
	updated, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := updated.(Model)
	require.NotNil(t, cmd)

	out, ok := cmd().(outcomeMsg)
	require.True(t, ok)
	require.True(t, out.outcome.OK())
	require.NoError(t, out.err)
	require.Len(t, out.saved, 1)
	assert.FileExists(t, filepath.Join(f.outDir, "original.svg"))

	updated, _ = m.Update(out)
	m = updated.(Model)
	assert.False(t, m.busy)

	view := m.View()
	assert.Contains(t, view, "Result: Graph is Planar")
	assert.Contains(t, view, "Original Graph")
	assert.Contains(t, view, "original.svg")
}

func TestStaleOutcomeKeepsWaiting(t *testing.T) {
	f := newFixture(t, map[string]any{"status": "success"})

	updated, _ := f.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := updated.(Model)
	require.True(t, m.busy)

	updated, _ = m.Update(outcomeMsg{outcome: &present.Outcome{Stale: true}})
	m = updated.(Model)
	assert.True(t, m.busy, "a stale outcome must not end the newer run's spinner")
}

func TestQuitRespectsInputFocus(t *testing.T) {
	f := newFixture(t, nil)

	// q types into the focused input instead of quitting.
	updated, _ := f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m := updated.(Model)
	assert.Equal(t, "q", m.input.Value())
	assert.False(t, m.quitting)

	// After tab blurs the input, q quits.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.False(t, m.input.Focused())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHelpToggle(t *testing.T) {
	f := newFixture(t, nil)

	updated, _ := f.model.Update(tea.KeyMsg{Type: tea.KeyTab})
	m := updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = updated.(Model)
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")
}

func TestWithPathPrefillsInput(t *testing.T) {
	f := newFixture(t, nil)

	m := f.model.WithPath("graphs/k5.json")
	assert.Equal(t, "graphs/k5.json", m.input.Value())
}

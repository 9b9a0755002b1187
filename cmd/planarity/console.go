package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/TOMfoolery2025/PlanarityTesting/internal/present"
	"github.com/TOMfoolery2025/PlanarityTesting/pkg/planarity"
)

// Console styles, matching the TUI palette.
var (
	consoleNeutral  = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))
	consolePositive = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")).Bold(true)
	consoleNegative = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	consoleLabel    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6")).Bold(true)
	consoleMuted    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
)

// consoleView streams display mutations as terminal lines and drops image
// bytes into outDir as they arrive.
type consoleView struct {
	w      io.Writer
	outDir string
	saved  []present.Saved
}

var _ present.View = (*consoleView)(nil)

func newConsoleView(w io.Writer, outDir string) *consoleView {
	return &consoleView{w: w, outDir: outDir}
}

func (v *consoleView) Reset() {
	v.saved = nil
}

func (v *consoleView) ShowStatus(text string, tone present.Tone) {
	style := consoleNeutral
	switch tone {
	case present.TonePositive:
		style = consolePositive
	case present.ToneNegative:
		style = consoleNegative
	}
	fmt.Fprintln(v.w, style.Render(text))
}

func (v *consoleView) ShowOriginal(img planarity.Image) {
	v.showImage("Original Graph", "original", img)
}

func (v *consoleView) ShowSubdivision(label string, img planarity.Image) {
	v.showImage(label, "subdivision", img)
}

func (v *consoleView) ShowMinor(label string, img planarity.Image) {
	v.showImage(label, "minor", img)
}

func (v *consoleView) showImage(label, name string, img planarity.Image) {
	fmt.Fprintln(v.w, consoleLabel.Render(label))
	if img.Empty() {
		fmt.Fprintln(v.w, consoleMuted.Render("  no image returned"))
		return
	}
	if err := os.MkdirAll(v.outDir, 0755); err != nil {
		fmt.Fprintln(v.w, consoleNegative.Render("  could not create output dir: "+err.Error()))
		return
	}
	path := filepath.Join(v.outDir, name+img.Ext())
	if err := img.Save(path); err != nil {
		fmt.Fprintln(v.w, consoleNegative.Render("  could not save image: "+err.Error()))
		return
	}
	v.saved = append(v.saved, present.Saved{Name: name, Label: label, Path: path})
	fmt.Fprintln(v.w, consoleMuted.Render("  saved "+path))
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/TOMfoolery2025/PlanarityTesting/internal/present"
)

// Style definitions
var (
	// Colors
	primaryColor   = lipgloss.Color("#3b82f6") // Blue
	secondaryColor = lipgloss.Color("#64748b") // Gray
	successColor   = lipgloss.Color("#10b981") // Green
	errorColor     = lipgloss.Color("#ef4444") // Red
	mutedColor     = lipgloss.Color("#94a3b8") // Muted gray

	baseStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff"))

	neutralStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelp()
	}

	snap := m.board.Snapshot()

	sections := []string{
		titleStyle.Render("Planarity Analyzer"),
		subtitleStyle.Render(m.serviceURL),
		selectedStyle.Render("Graph file:"),
		m.input.View(),
		"",
		m.renderStatus(snap),
	}
	if regions := m.renderRegions(snap); regions != "" {
		sections = append(sections, regions)
	}
	if notes := m.renderNotes(); notes != "" {
		sections = append(sections, notes)
	}
	sections = append(sections, m.renderFooter())

	return baseStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderStatus draws the status region, spinner first while a run is in
// flight.
func (m Model) renderStatus(snap present.Snapshot) string {
	if snap.Status == "" {
		return mutedStyle.Render("Enter a graph file and press Enter.")
	}
	line := toneStyle(snap.Tone).Render(snap.Status)
	if m.busy {
		line = m.spinner.View() + " " + line
	}
	return line
}

func toneStyle(tone present.Tone) lipgloss.Style {
	switch tone {
	case present.TonePositive:
		return successStyle
	case present.ToneNegative:
		return errorStyle
	default:
		return neutralStyle
	}
}

// renderRegions draws one box per visible image region.
func (m Model) renderRegions(snap present.Snapshot) string {
	var boxes []string
	if snap.Original.Visible {
		boxes = append(boxes, m.renderRegion("Original Graph", snap.Original, "original"))
	}
	if snap.Subdivision.Visible {
		boxes = append(boxes, m.renderRegion(snap.Subdivision.Label, snap.Subdivision, "subdivision"))
	}
	if snap.Minor.Visible {
		boxes = append(boxes, m.renderRegion(snap.Minor.Label, snap.Minor, "minor"))
	}
	return strings.Join(boxes, "\n")
}

func (m Model) renderRegion(heading string, region present.Region, name string) string {
	body := selectedStyle.Render(heading)
	if region.Image.Empty() {
		body += "\n" + mutedStyle.Render("no image returned")
	} else {
		body += "\n" + normalStyle.Render(fmt.Sprintf("%s image, %s", region.Image.Format, humanBytes(len(region.Image.Data))))
		if path := m.savedPath(name); path != "" {
			body += "\n" + mutedStyle.Render("saved "+path)
		}
	}
	return boxStyle.Render(body)
}

// renderNotes draws per-outcome diagnostics under the regions.
func (m Model) renderNotes() string {
	var lines []string
	if m.exportErr != nil {
		lines = append(lines, errorStyle.Render("could not save images: "+m.exportErr.Error()))
	}
	if m.outcome != nil && m.outcome.OK() && m.outcome.Result != nil {
		if n := len(m.outcome.Result.KuratowskiEdges); n > 0 {
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("%d counterexample edges highlighted", n)))
		}
	}
	return strings.Join(lines, "\n")
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	shortcuts := [][]string{
		{"enter", "Analyze the graph file"},
		{"tab", "Focus / unfocus the path input"},
		{"?", "Toggle this help (input unfocused)"},
		{"q, Ctrl+C", "Quit (q only while unfocused)"},
	}

	var helpText []string
	for _, shortcut := range shortcuts {
		k := selectedStyle.Render(fmt.Sprintf("%-12s", shortcut[0]))
		helpText = append(helpText, fmt.Sprintf("%s  %s", k, normalStyle.Render(shortcut[1])))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Keyboard Shortcuts"),
		"",
		boxStyle.Render(strings.Join(helpText, "\n")),
		mutedStyle.Render("\nPress ? to close help"),
	)
	return baseStyle.Render(content)
}

// renderFooter renders the keybinding hints.
func (m Model) renderFooter() string {
	bindings := []struct{ k, desc string }{
		{m.keys.Submit.Help().Key, m.keys.Submit.Help().Desc},
		{m.keys.Focus.Help().Key, m.keys.Focus.Help().Desc},
		{m.keys.Help.Help().Key, m.keys.Help.Help().Desc},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	}
	var keys []string
	for _, b := range bindings {
		keys = append(keys, fmt.Sprintf("%s: %s", b.k, b.desc))
	}
	return footerStyle.Render(strings.Join(keys, " • "))
}

func humanBytes(n int) string {
	const kb = 1024
	if n < kb {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KB", float64(n)/kb)
}

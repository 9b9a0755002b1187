package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/TOMfoolery2025/PlanarityTesting/cmd/planarity/internal/ui"
	"github.com/TOMfoolery2025/PlanarityTesting/internal/present"
)

func newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [graph.json]",
		Short: "Analyze graphs interactively",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			board := present.NewBoard()
			controller := present.NewController(client, board, log)

			// The alternate screen owns stdout; stray log lines would
			// tear the frame.
			log.SetOutput(io.Discard)

			m := ui.NewModel(controller, board, client.BaseURL(), flagOut)
			if len(args) > 0 {
				m = m.WithPath(args[0])
			}
			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				fatal("run interactive ui", err)
			}
		},
	}
}

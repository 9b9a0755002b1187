package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TOMfoolery2025/PlanarityTesting/internal/present"
)

func newCheckCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "check [graph.json]",
		Short: "Submit a graph file and print the verdict",
		Long: `Check submits the graph file to the planarity service and prints the
verdict. For non-planar graphs with a subdivision drawing, the Kuratowski
subdivision and minimal minor images are written next to the original.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var path string
			if len(args) > 0 {
				path = args[0]
			}

			view := newConsoleView(cmd.OutOrStdout(), flagOut)
			controller := present.NewController(client, view, log)
			outcome := controller.Run(cmd.Context(), path)

			if jsonOut && outcome.Result != nil {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(outcome.Result); err != nil {
					fatal("encode result", err)
				}
			}

			if !outcome.OK() {
				os.Exit(1)
			}

			if outcome.Payload != nil && outcome.Payload.Nodes != nil {
				fmt.Fprintln(cmd.OutOrStdout(), consoleMuted.Render("graph: "+outcome.Payload.Summary()))
			}
			if n := len(outcome.Result.KuratowskiEdges); n > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d counterexample edges highlighted\n", n)
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the raw service response as JSON")
	return cmd
}

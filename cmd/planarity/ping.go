package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the planarity service is reachable",
		Run: func(cmd *cobra.Command, args []string) {
			greeting, err := client.Ping(cmd.Context())
			if err != nil {
				fatal("service unreachable", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), greeting)
		},
	}
}

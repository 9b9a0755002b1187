package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/TOMfoolery2025/PlanarityTesting/cmd/planarity/internal/config"
	"github.com/TOMfoolery2025/PlanarityTesting/cmd/planarity/internal/prompt"
	"github.com/TOMfoolery2025/PlanarityTesting/pkg/planarity"
)

func newInitCommand() *cobra.Command {
	var (
		initURL string
		initOut string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up the planarity CLI configuration",
		Long:  "Interactive setup that writes ~/.planarity/config.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			nonInteractive := initURL != "" || initOut != ""
			return runInit(cmd, initURL, initOut, force, nonInteractive)
		},
	}

	cmd.Flags().StringVar(&initURL, "url", "", "Service URL (non-interactive mode)")
	cmd.Flags().StringVar(&initOut, "out", "", "Image output directory (non-interactive mode)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func runInit(cmd *cobra.Command, url, out string, force, nonInteractive bool) error {
	w := cmd.OutOrStdout()

	path := config.DefaultPath()
	if path == "" {
		return fmt.Errorf("locate config: no home directory")
	}

	p := prompt.New(cmd.InOrStdin(), w)

	if _, err := os.Stat(path); err == nil && !force {
		if nonInteractive {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if !p.Confirm(fmt.Sprintf("Overwrite %s?", path), false) {
			fmt.Fprintln(w, "Keeping the existing config.")
			return nil
		}
	}

	conf := config.DefaultConfig()
	if nonInteractive {
		if url != "" {
			conf.Service.URL = url
		}
		if out != "" {
			conf.OutputDir = out
		}
	} else {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Planarity Setup")
		fmt.Fprintln(w, "  ───────────────")
		conf.Service.URL = p.Text("Planarity service URL", conf.Service.URL)
		conf.OutputDir = p.Text("Image output directory", conf.OutputDir)
	}

	// Reachability is informational; the config is written either way so
	// the service can be started later.
	probe := planarity.New(conf.Service.URL, planarity.WithTimeout(10*time.Second))
	if greeting, err := probe.Ping(cmd.Context()); err != nil {
		fmt.Fprintf(w, "Warning: service not reachable: %v\n", err)
	} else {
		fmt.Fprintf(w, "Service says: %s\n", greeting)
	}

	if err := config.Save(conf, path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(w, "Wrote %s\n", path)
	if !nonInteractive {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Next steps:")
		fmt.Fprintln(w, "  planarity ping                 # verify the service")
		fmt.Fprintln(w, "  planarity check graph.json     # one-shot analysis")
		fmt.Fprintln(w, "  planarity watch graph.json     # live preview")
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TOMfoolery2025/PlanarityTesting/cmd/planarity/internal/config"
	"github.com/TOMfoolery2025/PlanarityTesting/pkg/planarity"
)

// Build-time variables set via ldflags.
var (
	version   = "0.3.0"
	commit    = ""
	buildDate = ""
)

var (
	log    = logrus.New()
	cfg    *config.Config
	client *planarity.Client

	flagURL     string
	flagTimeout int
	flagOut     string
	flagVerbose bool
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("planarity version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("planarity version %s-dev", version)
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "planarity",
		Short:   "Planarity testing client - submit graphs, inspect Kuratowski counterexamples",
		Version: versionString(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			resolveConfig()

			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if flagVerbose {
				log.SetLevel(logrus.DebugLevel)
			}

			var opts []planarity.Option
			if flagTimeout > 0 {
				opts = append(opts, planarity.WithTimeout(time.Duration(flagTimeout)*time.Second))
			}
			client = planarity.New(flagURL, opts...)
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "Planarity service URL (env: PLANARITY_URL)")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "Request timeout in seconds (0 = none)")
	rootCmd.PersistentFlags().StringVar(&flagOut, "out", "", "Directory for result images")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	initCmd := newInitCommand()
	initCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {} // skip client setup

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newTUICommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newPingCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig fills the persistent flags that were not given on the
// command line: flag, then environment, then config file, then defaults.
func resolveConfig() {
	loaded, err := config.Load("")
	if err != nil {
		log.WithError(err).Warn("could not read config file, using defaults")
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	if flagURL == "" {
		if v := os.Getenv("PLANARITY_URL"); v != "" {
			flagURL = v
		} else {
			flagURL = cfg.ServiceURL()
		}
	}
	if flagTimeout == 0 {
		flagTimeout = int(cfg.Timeout() / time.Second)
	}
	if flagOut == "" {
		flagOut = cfg.OutputDir
	}
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	os.Exit(1)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/TOMfoolery2025/PlanarityTesting/cmd/planarity/internal/preview"
	"github.com/TOMfoolery2025/PlanarityTesting/internal/fingerprint"
	"github.com/TOMfoolery2025/PlanarityTesting/internal/present"
)

func newWatchCommand() *cobra.Command {
	var noPreview bool

	cmd := &cobra.Command{
		Use:   "watch <graph.json>",
		Short: "Re-analyze the graph on every change, with a live preview page",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runWatch(cmd.Context(), args[0], !noPreview); err != nil {
				fatal("watch", err)
			}
		},
	}

	cmd.Flags().BoolVar(&noPreview, "no-preview", false, "Disable the local preview page")
	return cmd
}

func runWatch(ctx context.Context, path string, withPreview bool) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	board := present.NewBoard()
	controller := present.NewController(client, board, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var srv *preview.Server
	if withPreview {
		srv = preview.NewServer(cfg.Preview.Host, cfg.Preview.Port, board, log)
		go func() {
			if err := srv.Start(ctx); err != nil {
				log.WithError(err).Error("preview server stopped")
			}
		}()
		log.Infof("✨ Preview running at %s", srv.URL())
	}

	tracker := fingerprint.NewTracker()

	run := func() {
		outcome := controller.Run(ctx, path)
		if outcome.Stale {
			return
		}
		if !outcome.OK() {
			// Let the next save retry even with identical content.
			tracker.Forget(target)
		}
		logOutcome(outcome)
		if srv != nil {
			srv.NotifyReload()
		}
	}

	// First pass before any file event; records the starting digest.
	tracker.Changed(target)
	run()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory: editors that save via rename replace
	// the inode, which silently drops a watch on the file itself.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	log.Infof("🔍 Watching %s", path)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	debounce := time.NewTimer(0)
	<-debounce.C // drain initial timer

	dirty := false

	for {
		select {
		case <-sigChan:
			log.Info("🛑 Shutting down")
			return nil

		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isTargetEvent(event, target) {
				continue
			}
			dirty = true
			debounce.Reset(100 * time.Millisecond)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")

		case <-debounce.C:
			if !dirty {
				continue
			}
			dirty = false
			if !tracker.Changed(target) {
				log.Debug("content unchanged, skipping analysis")
				continue
			}
			run()
		}
	}
}

// isTargetEvent filters directory noise down to mutations of the selected
// file.
func isTargetEvent(event fsnotify.Event, target string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == target
}

// logOutcome writes one line per finished invocation.
func logOutcome(outcome *present.Outcome) {
	entry := log.WithField("invocation", outcome.ID)
	switch {
	case outcome.OK():
		entry.Info(outcome.Result.Title)
	case outcome.Err != nil:
		entry.WithError(outcome.Err).Warnf("analysis failed (%s)", outcome.Kind)
	default:
		entry.Warnf("analysis failed (%s)", outcome.Kind)
	}
}

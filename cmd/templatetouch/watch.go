package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mark3labs/templatetouch/internal/logger"
	"github.com/mark3labs/templatetouch/internal/watcher"
	"github.com/spf13/cobra"
)

var watchFlags struct {
	extraDirs []string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Refresh the side-bar menu whenever templates change",
	Long: `Refresh the side-bar menu now and again whenever the base menu or one of
the given template directories changes. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringArrayVar(&watchFlags.extraDirs, "extra-dir", nil, "Additional directory to watch, may be repeated, e.g. tt's template directory")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	menuSync, err := newSynchronizer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	var mu sync.Mutex
	refresh := func() {
		mu.Lock()
		defer mu.Unlock()

		res, err := menuSync.Refresh(ctx)
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("Refresh failed: %v", err)
				fmt.Fprintf(cmd.ErrOrStderr(), "refresh failed: %v\n", err)
			}
			return
		}
		fmt.Fprintf(out, "Wrote %d templates to %s\n", len(res.Templates), res.MenuPath)
	}

	refresh()

	dirs := append([]string{menuSync.Dir}, watchFlags.extraDirs...)
	w, err := watcher.New(dirs, []string{menuSync.MenuPath()}, refresh)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() {
		if err := w.Stop(); err != nil {
			logger.Warn("Stopping watcher: %v", err)
		}
	}()

	fmt.Fprintf(out, "Watching %d directories, press Ctrl+C to stop\n", len(dirs))
	<-ctx.Done()
	fmt.Fprintln(out, "Stopped.")
	return nil
}

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jward/onoma"
)

var flagSkipFullIndex bool

var watchCmd = &cobra.Command{
	Use:   "watch [workspace...]",
	Short: "Watch workspaces and incrementally keep the symbol store up to date",
	Long:  "Runs a full index once (unless --skip-full-index), then watches every workspace for filesystem changes, indexing or de-indexing the affected paths as they settle.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&flagSkipFullIndex, "skip-full-index", false, "skip the initial full index before watching")
}

func runWatch(cmd *cobra.Command, args []string) error {
	workspaces, err := resolveWorkspaces(args)
	if err != nil {
		return err
	}

	idx, err := onoma.NewIndexer(flagStorageDir, workspaces)
	if err != nil {
		return fmt.Errorf("creating indexer: %w", err)
	}
	defer idx.Close()

	w, err := onoma.NewWatcher(idx)
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !flagSkipFullIndex {
		if errs := w.RunFullIndex(ctx); len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintln(cmd.ErrOrStderr(), e)
			}
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %d workspace(s), press Ctrl-C to stop\n", len(workspaces))
	if err := w.Start(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("watcher stopped: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jward/onoma"
)

var indexCmd = &cobra.Command{
	Use:   "index [workspace...]",
	Short: "Index one or more workspaces into the symbol store",
	Long:  "Walks each workspace, extracts definition symbols via tree-sitter, and writes them to the SQLite store derived from --storage-dir and the workspace set.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	workspaces, err := resolveWorkspaces(args)
	if err != nil {
		return err
	}

	idx, err := onoma.NewIndexer(flagStorageDir, workspaces)
	if err != nil {
		return fmt.Errorf("creating indexer: %w", err)
	}
	defer idx.Close()

	start := time.Now()
	errs := idx.IndexWorkspaces(context.Background())
	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), e)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Indexed %d workspace(s) in %s\n", len(workspaces), time.Since(start).Round(time.Millisecond))
	if len(errs) > 0 {
		return fmt.Errorf("%d workspace(s) failed", len(errs))
	}
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jward/onoma"
)

var (
	flagCurrentFile string
	flagKinds       []string
	flagLimit       int
)

var queryCmd = &cobra.Command{
	Use:   "query <text> [workspace...]",
	Short: "Fuzzy-query the symbol store",
	Long:  "Streams ranked symbol matches for text from the store derived from --storage-dir and the workspace set, printing one JSON object per line.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&flagCurrentFile, "current-file", "", "bias ranking toward symbols near this file")
	queryCmd.Flags().StringSliceVar(&flagKinds, "kind", nil, "restrict results to these symbol kinds (repeatable)")
	queryCmd.Flags().IntVar(&flagLimit, "limit", 50, "maximum number of results to print")
}

func runQuery(cmd *cobra.Command, args []string) error {
	text := args[0]
	workspaces, err := resolveWorkspaces(args[1:])
	if err != nil {
		return err
	}

	res, err := onoma.NewResolver(flagStorageDir, workspaces)
	if err != nil {
		return fmt.Errorf("creating resolver: %w", err)
	}
	defer res.Close()

	qctx := onoma.Context{CurrentFile: flagCurrentFile}
	if len(flagKinds) > 0 {
		kinds := make([]onoma.SymbolKind, len(flagKinds))
		for i, k := range flagKinds {
			kinds[i] = onoma.SymbolKind(k)
		}
		qctx = qctx.WithSymbolKinds(kinds...)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	enc := json.NewEncoder(cmd.OutOrStdout())
	printed := 0
	for sym := range res.Query(ctx, text, qctx) {
		if printed >= flagLimit {
			cancel()
			break
		}
		if err := enc.Encode(sym); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		printed++
	}
	return nil
}

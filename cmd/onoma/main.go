// Command onoma is a thin CLI front-end over the onoma indexer, watcher,
// and resolver: index a set of workspaces, watch them for changes, or
// run a one-shot fuzzy query against the store.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var flagStorageDir string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "onoma",
	Short:         "Language-agnostic semantic symbol index and fuzzy finder",
	Long:          "onoma watches source workspaces, extracts named definitions via tree-sitter, and serves fuzzy-ranked symbol queries from a local SQLite store.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStorageDir, "storage-dir", defaultStorageDir(), "directory holding the SQLite store files")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(queryCmd)
}

// defaultStorageDir returns ~/.cache/onoma, falling back to a relative
// .onoma directory if the user cache dir can't be resolved.
func defaultStorageDir() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return ".onoma"
	}
	return filepath.Join(cacheDir, "onoma")
}

// resolveWorkspaces returns the absolute form of args, defaulting to the
// current directory when args is empty.
func resolveWorkspaces(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	workspaces := make([]string, len(args))
	for i, a := range args {
		abs, err := filepath.Abs(a)
		if err != nil {
			return nil, fmt.Errorf("resolving workspace %q: %w", a, err)
		}
		workspaces[i] = abs
	}
	return workspaces, nil
}

package onoma

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jward/onoma/internal/onomaerr"
	"github.com/jward/onoma/internal/parser"
	"github.com/jward/onoma/internal/store"
)

// skipDirs lists directory basenames the walker fallback never descends
// into, regardless of .gitignore.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	".git":         true,
}

// Indexer maintains a persistent symbol store for a fixed set of workspace
// roots: schema migration on startup, transactional per-file replacement,
// and parallel per-file parsing during a directory walk.
type Indexer struct {
	store      *store.Store
	parser     *parser.Parser
	workspaces []string
	log        *slog.Logger
}

// IndexerOption configures an Indexer at construction time.
type IndexerOption func(*Indexer)

// WithLogger overrides the Indexer's logger. The default logs to
// slog.Default().
func WithLogger(logger *slog.Logger) IndexerOption {
	return func(idx *Indexer) {
		idx.log = logger
	}
}

// NewIndexer opens (creating if absent) the store file derived from
// storageDir and workspaces, applies schema migrations, and returns an
// Indexer ready to index or deindex paths under those workspaces.
// Migration failure is fatal.
func NewIndexer(storageDir string, workspaces []string, opts ...IndexerOption) (*Indexer, error) {
	dbPath := StorePath(storageDir, workspaces)
	if err := os.MkdirAll(storageDir, 0o755); err != nil {
		return nil, &onomaerr.DatabaseFileError{Path: storageDir, Err: err}
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	idx := &Indexer{
		store:      s,
		parser:     parser.New(),
		workspaces: append([]string(nil), workspaces...),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx, nil
}

// Close releases the Indexer's store handle.
func (idx *Indexer) Close() error {
	return idx.store.Close()
}

// GetWorkspaces returns the Indexer's configured workspace roots.
func (idx *Indexer) GetWorkspaces() []string {
	return append([]string(nil), idx.workspaces...)
}

// IsInsideWorkspace reports whether path is path itself or a descendant of
// one of the Indexer's workspace roots.
func (idx *Indexer) IsInsideWorkspace(path string) bool {
	for _, root := range idx.workspaces {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			continue
		}
		if rel == "." || !strings.HasPrefix(rel, "..") {
			return true
		}
	}
	return false
}

// IndexWorkspaces indexes every workspace root from scratch, returning one
// error per root that failed outright. Per current design this always
// does a full walk — there is no content-hash skip layer (see
// DESIGN.md's Open Questions).
func (idx *Indexer) IndexWorkspaces(ctx context.Context) []error {
	var errs []error
	for _, root := range idx.workspaces {
		if err := idx.Index(ctx, root); err != nil {
			errs = append(errs, fmt.Errorf("index workspace %s: %w", root, err))
		}
	}
	return errs
}

// Index dispatches on path: a regular file is indexed once; a directory is
// walked (honoring VCS ignore semantics where possible) and every
// discovered file is indexed concurrently. Walker and per-file errors are
// logged, not returned — Index only fails outright when path itself is
// invalid.
func (idx *Indexer) Index(ctx context.Context, path string) error {
	if !idx.IsInsideWorkspace(path) {
		return &onomaerr.InvalidPathError{Path: path, Reason: "not inside any registered workspace"}
	}

	info, err := os.Stat(path)
	if err != nil {
		return &onomaerr.InvalidPathError{Path: path, Reason: err.Error()}
	}

	if !info.IsDir() {
		if err := idx.indexFile(ctx, path); err != nil {
			idx.log.Error("index file", "path", path, "error", err)
		}
		return nil
	}

	paths, err := idx.discoverFiles(path)
	if err != nil {
		idx.log.Error("discover files", "root", path, "error", err)
		return nil
	}

	idx.indexFilesParallel(ctx, paths)
	return nil
}

// discoverFiles lists every supported-language file under root. When root
// sits inside a git work tree, tryGitListFiles supplies the list so
// .gitignore and .git/info/exclude are honored for free; otherwise it
// falls back to walkListFiles, a plain directory walk that prunes hidden
// directories and skipDirs before descending into them.
func (idx *Indexer) discoverFiles(root string) ([]string, error) {
	if paths, ok := idx.tryGitListFiles(root); ok {
		return paths, nil
	}
	return idx.walkListFiles(root)
}

// tryGitListFiles asks git for every tracked-or-untracked-but-not-ignored
// path under root: --cached for tracked files, --others for new ones,
// --exclude-standard to honor .gitignore / .git/info/exclude / the global
// excludes file. The bool is false whenever root isn't a git work tree or
// git isn't on PATH — that's an expected, silent fallback signal to the
// caller, not an error worth logging.
func (idx *Indexer) tryGitListFiles(root string) ([]string, bool) {
	cmd := exec.Command("git", "ls-files", "--cached", "--others", "--exclude-standard")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil, false
	}

	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if abs := filepath.Join(root, line); isSupportedPath(abs) {
			paths = append(paths, abs)
		}
	}
	return paths, true
}

// walkListFiles discovers supported files by walking root directly. Hidden
// directories and skipDirs are pruned before doublestar ever runs against
// their contents, so a large vendor/ or node_modules/ tree costs one
// directory stat rather than a full descent.
func (idx *Indexer) walkListFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err
		case d.IsDir() && path != root && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")):
			return filepath.SkipDir
		case !d.IsDir() && isSupportedPath(path):
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}
	return paths, nil
}

// isSupportedPath reports whether path's extension is one of
// SupportedExtensions, matched via doublestar's glob semantics so the
// check stays consistent with any future glob-based include/exclude rules.
func isSupportedPath(path string) bool {
	for _, ext := range SupportedExtensions() {
		ok, err := doublestar.Match("*."+ext, filepath.Base(path))
		if err == nil && ok {
			return true
		}
	}
	return false
}

// indexFilesParallel indexes paths concurrently with a worker pool sized to
// NumCPU, each worker calling indexFile independently. Because every
// per-file transaction targets a distinct path, the store's upsert-by-
// unique-path avoids row-level conflicts between workers — grounded on the
// teacher's IndexFilesParallel worker pool, simplified since this schema
// needs no cross-worker blast-radius bookkeeping.
func (idx *Indexer) indexFilesParallel(ctx context.Context, paths []string) {
	if len(paths) == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	workCh := make(chan string, len(paths))
	for _, p := range paths {
		workCh <- p
	}
	close(workCh)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range workCh {
				if err := idx.indexFile(ctx, path); err != nil {
					idx.log.Error("index file", "path", path, "error", err)
				}
			}
		}()
	}
	wg.Wait()
}

// indexFile is the per-file core: parse, then atomically replace the
// file's symbol set in one transaction. A parse failure is returned (the
// caller logs it) and is not treated as "no symbols for this file": the
// file's prior symbols are left untouched, since the transaction never
// starts.
func (idx *Indexer) indexFile(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &onomaerr.InvalidPathError{Path: path, Reason: "not a regular file"}
	}
	if !idx.IsInsideWorkspace(path) {
		return &onomaerr.InvalidPathError{Path: path, Reason: "not inside any registered workspace"}
	}

	out, err := idx.parser.Parse(ctx, path, parser.Context{})
	if err != nil {
		return &onomaerr.ParsingFailedError{Path: path, Err: err}
	}

	symbols, err := toParsedSymbols(path, out.Index.Symbols(), idx.log)
	if err != nil {
		return err
	}

	if err := idx.store.ReplaceFileSymbols(path, symbols); err != nil {
		return err
	}
	return nil
}

// toParsedSymbols reduces the parser's in-memory Symbols to the rows the
// store persists: only symbols with a definition occurrence survive, and
// a definition whose path disagrees with the file just parsed is warned
// about but still inserted — intentional tolerance of cross-file defs.
func toParsedSymbols(path string, symbols []Symbol, log *slog.Logger) ([]store.ParsedSymbol, error) {
	out := make([]store.ParsedSymbol, 0, len(symbols))
	for _, sym := range symbols {
		if sym.Definition == nil {
			log.Warn("symbol has no definition occurrence, skipping", "name", sym.Name, "path", path)
			continue
		}
		if sym.Definition.Path != path {
			log.Warn("symbol definition path disagrees with indexed file, inserting anyway",
				"name", sym.Name, "definitionPath", sym.Definition.Path, "indexedPath", path)
		}

		r := sym.Definition.Range
		if !fitsInt32(r.StartLine) || !fitsInt32(r.StartColumn) || !fitsInt32(r.EndLine) || !fitsInt32(r.EndColumn) {
			return nil, &onomaerr.InvalidRangeError{
				StartLine: r.StartLine, StartColumn: r.StartColumn,
				EndLine: r.EndLine, EndColumn: r.EndColumn,
			}
		}

		out = append(out, store.ParsedSymbol{
			Kind:        string(sym.Kind),
			Name:        sym.Name,
			StartLine:   r.StartLine,
			StartColumn: r.StartColumn,
			EndLine:     r.EndLine,
			EndColumn:   r.EndColumn,
		})
	}
	return out, nil
}

func fitsInt32(v int) bool {
	return v >= -1<<31 && v <= 1<<31-1
}

// Deindex removes every file whose path begins with the given prefix from
// the store, cascading to their symbols. One call supports both a single
// file deletion and a whole directory subtree.
func (idx *Indexer) Deindex(ctx context.Context, path string) error {
	if err := idx.store.Deindex(path); err != nil {
		return &onomaerr.DeindexingFailedError{Err: err}
	}
	return nil
}

package onoma

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jward/onoma/internal/onomaerr"
)

// debounceWindow is the delay between the last observed filesystem event
// for a path and the moment it's dispatched to the Indexer, collapsing a
// burst of events (e.g. a save-then-rewrite from an editor) into one
// index/deindex call per path.
const debounceWindow = 2 * time.Second

// Watcher bridges filesystem change notifications to the Indexer's
// incremental index/deindex calls, debouncing bursts of events per path.
//
// Events settle into a pending-path set drained by a single time.Timer,
// then classified two ways (index vs. deindex) rather than by a four-way
// create/modify/delete/rename taxonomy — the Indexer's per-file
// replace-all semantics make modify and create indistinguishable from
// its caller's perspective.
type Watcher struct {
	indexer  *Indexer
	fsw      *fsnotify.Watcher
	log      *slog.Logger
	debounce time.Duration

	mu            sync.Mutex
	pending       map[string]struct{}
	debounceTimer *time.Timer

	done chan struct{}
	wg   sync.WaitGroup
}

// WatcherOption configures a Watcher at construction time.
type WatcherOption func(*Watcher)

// WithDebounce overrides the default debounce window. Mainly useful for
// tests that can't afford to wait out the production default.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher constructs a Watcher over indexer. It does not start
// watching until Start is called.
func NewWatcher(indexer *Indexer, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &onomaerr.NotifySetupFailedError{Err: err}
	}
	w := &Watcher{
		indexer:  indexer,
		fsw:      fsw,
		log:      slog.Default(),
		debounce: debounceWindow,
		pending:  make(map[string]struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// RunFullIndex performs a one-time full index of every workspace the
// underlying Indexer owns. Callers typically run this once before Start
// to establish a baseline, since the watcher itself only reacts to
// changes from that point forward.
func (w *Watcher) RunFullIndex(ctx context.Context) []error {
	return w.indexer.IndexWorkspaces(ctx)
}

// Start begins watching every workspace root (recursively) and blocks
// until the context is canceled or Stop is called. Per-event indexing
// errors are logged and never stop the watcher.
func (w *Watcher) Start(ctx context.Context) error {
	for _, root := range w.indexer.GetWorkspaces() {
		if err := w.addWatchRecursive(root); err != nil {
			return &onomaerr.NotifySetupFailedError{Err: err}
		}
	}

	w.wg.Add(1)
	go w.processEvents(ctx)

	select {
	case <-ctx.Done():
		w.Stop()
		return ctx.Err()
	case <-w.done:
		return nil
	}
}

// Stop gracefully stops the watcher, releasing the fsnotify handle only
// once every in-flight goroutine has finished. That includes any
// debounce timer that already fired and is mid-flushPending, and any
// timer still pending — w.wg tracks both (see queueEvent), so Wait below
// blocks until the last batch is fully indexed or deindexed, not merely
// scheduled.
func (w *Watcher) Stop() {
	select {
	case <-w.done:
		return
	default:
		close(w.done)
	}
	w.wg.Wait()
	w.fsw.Close()
}

func (w *Watcher) addWatchRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (skipDirs[d.Name()] || d.Name()[0] == '.') {
			return filepath.SkipDir
		}
		_ = w.fsw.Add(path)
		return nil
	})
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.queueEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Error("watcher error", "error", err)
		}
	}
}

// queueEvent records path as pending and (re)arms the debounce timer.
// Events within a debounced batch are deduplicated by path; the classifier
// re-checks the path's existence when the timer fires, so intermediate
// event types never matter — only the final filesystem state does.
//
// The timer's eventual callback is tracked in w.wg so Stop can actually
// wait for a batch that's already in flight: calling Stop() on a timer
// that has already fired is a no-op, so without this the flushPending
// goroutine could still be running (indexing the last batch) after Stop
// returns and the caller tears down the store.
func (w *Watcher) queueEvent(event fsnotify.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[event.Name] = struct{}{}

	if w.debounceTimer != nil && w.debounceTimer.Stop() {
		w.wg.Done()
	}
	w.wg.Add(1)
	w.debounceTimer = time.AfterFunc(w.debounce, w.flushPending)
}

// flushPending dispatches every pending path to the Indexer, in iteration
// order, classifying each by current filesystem state: exists and is a
// regular file → index; doesn't exist → deindex; anything else (e.g. a
// directory creation) is ignored.
func (w *Watcher) flushPending() {
	defer w.wg.Done()

	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	ctx := context.Background()
	for _, path := range paths {
		if err := w.onEvent(ctx, path); err != nil {
			w.log.Error("watcher event handling failed", "path", path, "error", err)
		}
	}
}

// onEvent classifies and dispatches one path, per §4.6's event
// classification rule.
func (w *Watcher) onEvent(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.Mode().IsRegular():
		if indexErr := w.indexer.Index(ctx, path); indexErr != nil {
			return &onomaerr.IndexingFailedError{Err: indexErr}
		}
	case os.IsNotExist(err):
		if deindexErr := w.indexer.Deindex(ctx, path); deindexErr != nil {
			return &onomaerr.DeindexingFailedError{Err: deindexErr}
		}
	}
	return nil
}

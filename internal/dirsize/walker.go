package dirsize

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Aggregate is the result of walking one directory.
type Aggregate struct {
	// Name is the base name of the directory, empty when pruned.
	Name string
	// ModTime is the modification time of the directory itself, zero when pruned.
	ModTime time.Time
	// Size is the directory's own size plus the aggregate size of its children.
	Size uint64
	// Pruned reports whether the directory lay beyond the maximum depth.
	Pruned bool
}

// Record converts the aggregate into a reportable record.
func (a Aggregate) Record() Record {
	return Record{
		Name:     a.Name,
		Modified: FormatTime(a.ModTime),
		Size:     a.Size,
	}
}

// EntryError describes an entry that could not be read and was skipped.
type EntryError struct {
	// Path is the path of the skipped entry.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// WarnFunc is called for every entry skipped because of an error.
type WarnFunc func(path string, err error)

type fileID struct {
	dev uint64
	ino uint64
}

// Walker sums directory sizes depth-first up to a maximum depth.
//
// A Walker is not safe for concurrent use. Its visited set and collected
// failures span every call to Aggregate, so one Walker should be used per run.
type Walker struct {
	ctx      context.Context //nolint:containedctx // Checked once per directory
	maxDepth int
	log      *zap.SugaredLogger
	warn     WarnFunc
	progress *progress

	readDir func(string) ([]fs.DirEntry, error)
	lstat   func(string) (fs.FileInfo, error)

	visited  map[fileID]struct{}
	failures error
}

// NewWalker creates a walker that prunes directories deeper than maxDepth.
func NewWalker(ctx context.Context, maxDepth int) *Walker {
	return &Walker{
		ctx:      ctx,
		maxDepth: maxDepth,
		log:      zap.NewNop().Sugar(),
		readDir:  os.ReadDir,
		lstat:    os.Lstat,
		visited:  make(map[fileID]struct{}),
	}
}

// WithLogger sets the debug logger.
func (w *Walker) WithLogger(log *zap.SugaredLogger) *Walker {
	if log != nil {
		w.log = log
	}

	return w
}

// WithWarn sets the hook called for skipped entries.
func (w *Walker) WithWarn(warn WarnFunc) *Walker {
	w.warn = warn

	return w
}

// WithProgress sets the progress hook and its interval.
func (w *Walker) WithProgress(hook ProgressFunc, interval time.Duration) *Walker {
	w.progress = newProgress(hook, interval)

	return w
}

// Failures returns all entries skipped so far, combined with multierr.
func (w *Walker) Failures() error {
	return w.failures
}

// Aggregate returns the size of the directory at path plus the sizes of everything
// below it, descending no further than the maximum depth.
//
// A directory at a depth beyond the maximum is pruned: it contributes zero and
// yields an empty name. The returned error covers only the directory itself
// (its metadata or its listing) and cancellation. Children that fail are
// recorded as failures, reported to the warn hook and contribute zero.
func (w *Walker) Aggregate(path string, depth int) (Aggregate, error) {
	if depth > w.maxDepth {
		w.log.Debugf("pruning %s: depth %d exceeds %d", path, depth, w.maxDepth)

		return Aggregate{Pruned: true}, nil
	}

	if err := w.ctx.Err(); err != nil {
		return Aggregate{}, err
	}

	info, err := w.lstat(path)
	if err != nil {
		return Aggregate{}, fmt.Errorf("reading metadata: %w", err)
	}

	if !info.IsDir() {
		return Aggregate{}, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	result := Aggregate{
		Name:    filepath.Base(path),
		ModTime: info.ModTime(),
	}

	if id, ok := identify(info); ok {
		if _, seen := w.visited[id]; seen {
			w.log.Debugf("skipping %s: directory already visited", path)

			return result, nil
		}

		w.visited[id] = struct{}{}
	}

	entries, err := w.readDir(path)
	if err != nil {
		return Aggregate{}, fmt.Errorf("listing directory: %w", err)
	}

	result.Size = sizeOf(info)
	w.progress.add(result.Size)

	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())

		if entry.IsDir() {
			sub, err := w.Aggregate(child, depth+1)
			if err != nil {
				if w.ctx.Err() != nil {
					return Aggregate{}, w.ctx.Err()
				}

				w.fail(child, err)

				continue
			}

			result.Size += sub.Size

			continue
		}

		childInfo, err := entry.Info()
		if err != nil {
			w.fail(child, err)

			continue
		}

		size := sizeOf(childInfo)
		result.Size += size
		w.progress.add(size)
	}

	w.log.Debugf("aggregated %s at depth %d: %d bytes", path, depth, result.Size)

	return result, nil
}

// fail records a skipped entry and notifies the warn hook.
func (w *Walker) fail(path string, err error) {
	w.failures = multierr.Append(w.failures, &EntryError{Path: path, Err: err})

	if w.warn != nil {
		w.warn(path, err)
	}
}

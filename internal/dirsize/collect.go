package dirsize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Report holds the records of one run.
type Report struct {
	// Records contains one record per top-level entry, sorted for display.
	Records []Record `json:"records"`
	// Failures combines every skipped entry, nil if none.
	Failures error `json:"-"`
	// ErrorCount is the number of skipped entries.
	ErrorCount int `json:"error_count"`
	// Elapsed is the total time taken for collection.
	Elapsed time.Duration `json:"elapsed"`
}

// Hooks carries the optional callbacks of a run.
type Hooks struct {
	// Logger receives debug output.
	Logger *zap.SugaredLogger
	// Warn is called for every skipped entry.
	Warn WarnFunc
	// Progress receives periodic entry and byte counts.
	Progress ProgressFunc
}

// Collect produces the sorted records for opt.Root, or for opt.File if no root is set.
//
// Failing to read the root listing or the single file is fatal. Any other entry
// that cannot be read is skipped, reported through hooks.Warn and counted in
// the report.
func Collect(ctx context.Context, opt Options, hooks Hooks) (*Report, error) {
	log := hooks.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	start := time.Now()

	var (
		records  []Record
		failures error
		err      error
	)

	switch {
	case opt.Root != "":
		log.Debugf("collecting %s with max depth %d", opt.Root, opt.MaxDepth())

		walker := NewWalker(ctx, opt.MaxDepth()).
			WithLogger(log).
			WithWarn(hooks.Warn).
			WithProgress(hooks.Progress, opt.ProgressInterval)

		records, err = collectRoot(opt.Root, walker)
		failures = walker.Failures()
	case opt.File != "":
		var record Record

		record, err = collectFile(opt.File)
		records = []Record{record}
	default:
		return nil, ErrNoTarget
	}

	if err != nil {
		return nil, err
	}

	Sort(records, opt.Reverse)

	return &Report{
		Records:    records,
		Failures:   failures,
		ErrorCount: len(multierr.Errors(failures)),
		Elapsed:    time.Since(start),
	}, nil
}

// collectRoot aggregates each immediate child of root.
func collectRoot(root string, walker *Walker) ([]Record, error) {
	root = filepath.Clean(root)

	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("accessing root %q: %w", root, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("root %q: %w", root, ErrNotADirectory)
	}

	entries, err := walker.readDir(root)
	if err != nil {
		return nil, fmt.Errorf("listing root %q: %w", root, err)
	}

	records := make([]Record, 0, len(entries))

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		if entry.IsDir() {
			result, err := walker.Aggregate(path, 0)
			if err != nil {
				if walker.ctx.Err() != nil {
					return nil, walker.ctx.Err()
				}

				walker.fail(path, err)

				continue
			}

			records = append(records, result.Record())

			continue
		}

		info, err := entry.Info()
		if err != nil {
			walker.fail(path, err)

			continue
		}

		walker.progress.add(sizeOf(info))

		records = append(records, newRecord(entry.Name(), info))
	}

	return records, nil
}

// collectFile builds the single record for a file target.
func collectFile(file string) (Record, error) {
	info, err := os.Stat(file)
	if err != nil {
		return Record{}, fmt.Errorf("reading file %q: %w", file, err)
	}

	if info.IsDir() {
		return Record{}, fmt.Errorf("%w: %q is a directory, consider using --root instead", ErrNotAFile, file)
	}

	return newRecord(filepath.Base(file), info), nil
}

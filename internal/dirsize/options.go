package dirsize

import (
	"errors"
	"math"
	"time"
)

const (
	// DefaultDepth is the default maximum traversal depth.
	DefaultDepth = 5
	// Unbounded is the depth value requesting an unlimited walk.
	Unbounded = -1
)

var (
	// ErrNotAFile is returned when the single-file target is a directory.
	ErrNotAFile = errors.New("not a file")
	// ErrNotADirectory is returned when a path expected to be a directory is not one.
	ErrNotADirectory = errors.New("not a directory")
	// ErrNoTarget is returned when neither a root nor a file was given.
	ErrNoTarget = errors.New("nothing to inspect: pass a root directory or --file")
)

// Options configures size collection and CLI behavior.
type Options struct {
	// Root is the directory whose immediate children are reported.
	Root string
	// File is a single file to report, only used if Root is empty.
	File string
	// Depth is the maximum traversal depth below each top-level directory (-1=unbounded).
	Depth int
	// Clean suppresses the header and timestamp column.
	Clean bool
	// Reverse keeps the ascending order (smallest first).
	Reverse bool
	// Human renders sizes in IEC units instead of bytes.
	Human bool
	// Output represents output format (table or json).
	Output string
	// Config is an optional TOML file providing defaults.
	Config string
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Version indicates whether to show version and exit.
	Version bool
	// Init names a shell whose completion script should be printed.
	Init string
}

// MaxDepth resolves Depth into the ceiling used by the walker.
// Any negative value means unbounded and maps to the largest int, so the
// depth counter can never wrap around.
func (o Options) MaxDepth() int {
	if o.Depth < 0 {
		return math.MaxInt
	}

	return o.Depth
}

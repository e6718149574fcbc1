package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirsize/internal/dirsize"
	"github.com/idelchi/dirsize/internal/logging"
)

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)

	return ok && isatty.IsTerminal(file.Fd())
}

func logic(ctx context.Context, options dirsize.Options, stdout, stderr io.Writer) error {
	enableProgress := options.Output != "json" &&
		!options.Debug &&
		isTerminal(stderr)

	// Warnings share stdout with the table, but must not corrupt JSON output.
	diagnostics := stdout
	if options.Output == "json" {
		diagnostics = stderr
	}

	log := logging.New(stderr, options.Debug)
	defer log.Sync() //nolint:errcheck // Nothing to do on failure

	hooks := dirsize.Hooks{
		Logger: log,
		Warn: func(path string, err error) {
			if enableProgress {
				fmt.Fprint(stderr, "\r\033[2K\r")
			}

			fmt.Fprintf(diagnostics, "Skipping %s: %v, continuing...\n", path, err)
		},
	}

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		hooks.Progress = func(entries, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d entries, %s",
				entries, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	report, err := dirsize.Collect(ctx, options, hooks)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	log.Debugf("collected %d records with %d skipped entries in %v",
		len(report.Records), report.ErrorCount, report.Elapsed)

	switch options.Output {
	case "json":
		return PrintJSON(report, stdout)
	case "table":
		return PrintTable(report.Records, stdout, Layout{Clean: options.Clean, Human: options.Human})
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}

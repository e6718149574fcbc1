package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/idelchi/dirsize/internal/dirsize"
)

const (
	// RulePadding is the width of the separators and header cells not covered by the columns.
	RulePadding = 13
)

// Layout selects the table variant.
type Layout struct {
	// Clean omits the header, the rule and the timestamp column.
	Clean bool
	// Human prints sizes in IEC units.
	Human bool
}

// PrintJSON outputs the report in JSON format.
func PrintJSON(report *dirsize.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs records as aligned `name - modified - size` rows.
// Columns are padded to the widest name and timestamp, measured in terminal cells.
func PrintTable(records []dirsize.Record, writer io.Writer, layout Layout) error {
	w := bufio.NewWriter(writer)

	var nameWidth, timeWidth int
	for _, r := range records {
		nameWidth = max(nameWidth, runewidth.StringWidth(r.Name))
		timeWidth = max(timeWidth, runewidth.StringWidth(r.Modified))
	}

	size := func(n uint64) string {
		if layout.Human {
			return humanize.IBytes(n)
		}

		return strconv.FormatUint(n, 10)
	}

	if layout.Clean {
		for _, r := range records {
			fmt.Fprintf(w, "%s - %s\n", runewidth.FillRight(r.Name, nameWidth), size(r.Size))
		}

		return w.Flush()
	}

	fmt.Fprintf(w, "%s - %s - %s\n",
		runewidth.FillRight("File", nameWidth), runewidth.FillRight("Last Modified", timeWidth), "Size")
	fmt.Fprintln(w, strings.Repeat("=", nameWidth+timeWidth+RulePadding))

	for _, r := range records {
		fmt.Fprintf(w, "%s - %s - %s\n",
			runewidth.FillRight(r.Name, nameWidth), runewidth.FillRight(r.Modified, timeWidth), size(r.Size))
	}

	return w.Flush()
}

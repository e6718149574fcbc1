package dirsize

import (
	"io/fs"
	"sort"
	"time"
)

// TimeLayout is the layout of Record.Modified, always rendered in local time.
const TimeLayout = "2006-01-02 15:04"

// Record is the aggregate result for one top-level entry.
type Record struct {
	// Name is the base name of the entry.
	Name string `json:"name"`
	// Modified is the formatted last-modified time of the entry itself.
	Modified string `json:"modified"`
	// Size is the aggregate size in bytes.
	Size uint64 `json:"size"`
}

// FormatTime formats t in the local time zone using TimeLayout.
func FormatTime(t time.Time) string {
	return t.Local().Format(TimeLayout)
}

// newRecord builds a record directly from file metadata.
func newRecord(name string, info fs.FileInfo) Record {
	return Record{
		Name:     name,
		Modified: FormatTime(info.ModTime()),
		Size:     sizeOf(info),
	}
}

// sizeOf returns the size reported by the filesystem, clamped at zero.
func sizeOf(info fs.FileInfo) uint64 {
	if info.Size() < 0 {
		return 0
	}

	return uint64(info.Size()) //nolint:gosec // Checked for negative values above
}

// Sort orders records largest first, or smallest first when reverse is set.
// Records of equal size keep their relative order in ascending mode and are
// flipped in descending mode, since the descending order is the ascending
// order reversed.
func Sort(records []Record, reverse bool) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Size < records[j].Size
	})

	if reverse {
		return
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
}

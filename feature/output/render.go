package output

import (
	"fmt"
	"strconv"
	"strings"

	"modlist-builder/core/modlist"

	"github.com/dustin/go-humanize"
)

// NameList renders "@" + name + ";" for every item, in order.
func NameList(items []modlist.MergedItem) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteByte('@')
		b.WriteString(item.DisplayName)
		b.WriteRune(modlist.Separator)
	}
	return b.String()
}

// IDList renders the decimal ids joined by commas, in order.
func IDList(items []modlist.MergedItem) string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = strconv.FormatUint(item.ID, 10)
	}
	return strings.Join(ids, ",")
}

// UnmatchedReport renders one "{name} ({id})" line per entry.
func UnmatchedReport(entries []modlist.UnmatchedEntry) string {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(entry.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Summary is the user facing result of a build.
type Summary struct {
	// Count is the number of items in the lists.
	Count int `json:"count"`
	// TotalBytes is the combined size of every item.
	TotalBytes uint64 `json:"total_bytes"`
}

// Summarize totals the ordered items.
func Summarize(items []modlist.MergedItem) Summary {
	s := Summary{Count: len(items)}
	for _, item := range items {
		s.TotalBytes += item.ByteSize
	}
	return s
}

// HumanSize formats TotalBytes for display (e.g. "1.2 GB").
func (s Summary) HumanSize() string {
	return humanize.Bytes(s.TotalBytes)
}

// SuccessMessage is shown once both lists were written.
func SuccessMessage(cfg Config, s Summary) string {
	cfg = cfg.withDefaults()
	return fmt.Sprintf("Successfully created %s and %s\nYour modlist is %s in total",
		cfg.NameListFile, cfg.IDListFile, s.HumanSize())
}

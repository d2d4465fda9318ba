package reconcile

import "modlist-builder/core/modlist"

// Options controls reconciliation side channels.
type Options struct {
	// OnWarning is called once per name conflict, in preset order.
	// It may be nil; warnings are always collected in Result.Warnings.
	OnWarning func(w *modlist.ConflictingDisplayNamesError)

	// OnEntry is called for every preset entry before it is looked up.
	OnEntry func(entry modlist.PresetEntry)
}

// Result is the output of a successful reconciliation.
type Result struct {
	// Merged holds matched items in preset order.
	Merged []modlist.MergedItem `json:"merged"`

	// Unmatched holds preset entries missing from the manifest, in preset order.
	Unmatched []modlist.UnmatchedEntry `json:"unmatched"`

	// Warnings holds the recoverable name conflicts.
	Warnings []*modlist.ConflictingDisplayNamesError `json:"-"`
}

// HasUnmatched reports whether any preset entry was not installed.
func (r *Result) HasUnmatched() bool {
	return len(r.Unmatched) > 0
}

// HasWarnings reports whether any name conflict was detected.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// UnmatchedError returns the unmatched entries as an error, or nil when
// every entry matched.
func (r *Result) UnmatchedError() error {
	if !r.HasUnmatched() {
		return nil
	}
	return &modlist.UnmatchedEntriesError{Entries: r.Unmatched}
}

// Summary provides aggregate counts for a reconciliation.
type Summary struct {
	// Matched is the number of merged items.
	Matched int `json:"matched"`

	// Unmatched is the number of preset entries without an installed item.
	Unmatched int `json:"unmatched"`

	// Conflicts is the number of name conflicts.
	Conflicts int `json:"conflicts"`

	// TotalBytes is the combined size of all merged items.
	TotalBytes uint64 `json:"total_bytes"`
}

// Summary computes aggregate counts for the result.
func (r *Result) Summary() Summary {
	s := Summary{
		Matched:   len(r.Merged),
		Unmatched: len(r.Unmatched),
		Conflicts: len(r.Warnings),
	}
	for _, item := range r.Merged {
		s.TotalBytes += item.ByteSize
	}
	return s
}

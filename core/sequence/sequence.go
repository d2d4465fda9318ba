package sequence

import (
	"sort"

	"modlist-builder/core/modlist"
)

// Sequence returns the items in output order. The input slice is not modified.
func Sequence(items []modlist.MergedItem) []modlist.MergedItem {
	ordered := make([]modlist.MergedItem, len(items))
	copy(ordered, items)

	sort.SliceStable(ordered, func(i, j int) bool {
		return Less(ordered[i], ordered[j])
	})

	return ordered
}

// Less reports whether a must be listed before b.
func Less(a, b modlist.MergedItem) bool {
	return Compare(a, b) < 0
}

// Compare is the three-way form of the ordering rule: negative when a comes
// first, positive when b comes first, zero when unrelated items tie on size.
func Compare(a, b modlist.MergedItem) int {
	switch {
	case a.DependsOn(b.ID):
		return 1
	case b.DependsOn(a.ID):
		return -1
	case a.ByteSize > b.ByteSize:
		return -1
	case a.ByteSize < b.ByteSize:
		return 1
	default:
		return 0
	}
}

package reconcile

import (
	"strings"

	"modlist-builder/core/modlist"
)

// Reconcile matches every preset entry against the installed items by id.
// It fails only when a matched manifest name contains modlist.Separator;
// in that case no partial result is returned.
func Reconcile(entries []modlist.PresetEntry, installed map[uint64]modlist.InstalledItem, opts Options) (*Result, error) {
	result := &Result{
		Merged:    make([]modlist.MergedItem, 0, len(entries)),
		Unmatched: []modlist.UnmatchedEntry{},
	}

	for _, entry := range entries {
		if opts.OnEntry != nil {
			opts.OnEntry(entry)
		}

		item, ok := installed[entry.ID]
		if !ok {
			result.Unmatched = append(result.Unmatched, modlist.UnmatchedEntry{
				DisplayName: entry.DisplayName,
				ID:          entry.ID,
			})
			continue
		}

		if entry.DisplayName != item.DisplayName {
			warning := &modlist.ConflictingDisplayNamesError{
				ID:           entry.ID,
				PresetName:   entry.DisplayName,
				ManifestName: item.DisplayName,
			}
			result.Warnings = append(result.Warnings, warning)
			if opts.OnWarning != nil {
				opts.OnWarning(warning)
			}
		}

		if strings.ContainsRune(item.DisplayName, modlist.Separator) {
			return nil, &modlist.NameContainsSeparatorError{ID: entry.ID, Name: item.DisplayName}
		}

		result.Merged = append(result.Merged, merge(entry, item))
	}

	return result, nil
}

// merge builds the merged record. The id comes from the preset match, every
// other field from the manifest.
func merge(entry modlist.PresetEntry, item modlist.InstalledItem) modlist.MergedItem {
	deps := make([]uint64, len(item.DependencyIDs))
	copy(deps, item.DependencyIDs)

	return modlist.MergedItem{
		ID:            entry.ID,
		DisplayName:   item.DisplayName,
		ByteSize:      item.ByteSize,
		DependencyIDs: deps,
	}
}

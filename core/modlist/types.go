package modlist

import (
	"fmt"
	"slices"
)

// Separator terminates every name in the name-list output.
// A display name containing it cannot be represented.
const Separator = ';'

// PresetEntry is a single add-on reference taken from a preset document.
type PresetEntry struct {
	// DisplayName is the name shown by the preset.
	DisplayName string `json:"display_name"`
	// ID is the workshop identifier.
	ID uint64 `json:"id"`
}

// InstalledItem is an add-on recorded in the launcher manifest.
type InstalledItem struct {
	// ID is the workshop identifier; unique within a manifest.
	ID uint64 `json:"id"`
	// DisplayName is the authoritative name of the add-on.
	DisplayName string `json:"display_name"`
	// Path is the on-disk installation path.
	Path string `json:"path"`
	// ByteSize is the size of the installation on disk.
	ByteSize uint64 `json:"byte_size"`
	// DependencyIDs lists the workshop ids this add-on requires.
	DependencyIDs []uint64 `json:"dependency_ids"`
}

// MergedItem is the reconciled record used for ordering and output.
type MergedItem struct {
	ID            uint64   `json:"id"`
	DisplayName   string   `json:"display_name"`
	ByteSize      uint64   `json:"byte_size"`
	DependencyIDs []uint64 `json:"dependency_ids"`
}

// DependsOn reports whether the item declares id as a dependency.
func (m MergedItem) DependsOn(id uint64) bool {
	return slices.Contains(m.DependencyIDs, id)
}

// UnmatchedEntry is a preset entry with no installed counterpart.
type UnmatchedEntry struct {
	DisplayName string `json:"display_name"`
	ID          uint64 `json:"id"`
}

// String renders the entry as it appears in the unmatched report.
func (u UnmatchedEntry) String() string {
	return fmt.Sprintf("%s (%d)", u.DisplayName, u.ID)
}

package builder

import (
	"context"
	"strings"

	"modlist-builder/core/modlist"
	"modlist-builder/core/reconcile"
	"modlist-builder/core/sequence"
	"modlist-builder/feature/preset"
)

// EntryStatus describes how a preset entry relates to the manifest.
type EntryStatus string

const (
	StatusInstalled EntryStatus = "installed"
	StatusRenamed   EntryStatus = "renamed"
	StatusMissing   EntryStatus = "missing"
	// StatusInvalid marks a manifest name containing the separator.
	StatusInvalid EntryStatus = "invalid"
)

// InspectedEntry is a preset entry with its manifest match status.
type InspectedEntry struct {
	modlist.PresetEntry
	Status       EntryStatus `json:"status"`
	ManifestName string      `json:"manifest_name,omitempty"`
	ByteSize     uint64      `json:"byte_size"`
}

// Inspection reports every entry of a preset without failing on bad ones.
type Inspection struct {
	Family  modlist.Family   `json:"family"`
	Name    string           `json:"name"`
	Entries []InspectedEntry `json:"entries"`
	// Order is the load order of the entries that would be written.
	Order []modlist.MergedItem `json:"order"`
}

// Count returns the number of entries with the given status.
func (i *Inspection) Count(status EntryStatus) int {
	n := 0
	for _, e := range i.Entries {
		if e.Status == status {
			n++
		}
	}
	return n
}

// Inspect matches the preset against the manifest and reports the status of
// every entry. Unlike Assemble it never stops at an entry.
func (s *Service) Inspect(ctx context.Context, doc *preset.Document) (*Inspection, error) {
	installed, err := s.manifests.Load(ctx, doc.Family)
	if err != nil {
		return nil, err
	}

	inspection := &Inspection{
		Family:  doc.Family,
		Name:    doc.Name,
		Entries: make([]InspectedEntry, 0, len(doc.Entries)),
	}
	usable := make([]modlist.PresetEntry, 0, len(doc.Entries))

	for _, entry := range doc.Entries {
		inspected := InspectedEntry{PresetEntry: entry, Status: StatusMissing}

		if item, ok := installed[entry.ID]; ok {
			inspected.ManifestName = item.DisplayName
			inspected.ByteSize = item.ByteSize

			switch {
			case strings.ContainsRune(item.DisplayName, modlist.Separator):
				inspected.Status = StatusInvalid
			case item.DisplayName != entry.DisplayName:
				inspected.Status = StatusRenamed
			default:
				inspected.Status = StatusInstalled
			}
		}

		if inspected.Status != StatusInvalid {
			usable = append(usable, entry)
		}
		inspection.Entries = append(inspection.Entries, inspected)
	}

	// Invalid entries were filtered out, so this cannot fail.
	result, err := reconcile.Reconcile(usable, installed, reconcile.Options{})
	if err != nil {
		return nil, err
	}
	inspection.Order = sequence.Sequence(result.Merged)

	return inspection, nil
}

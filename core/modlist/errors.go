package modlist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoSourceProvided is returned when no preset path was given.
	ErrNoSourceProvided = errors.New("no preset file provided")

	// ErrUnknownFamily is returned when the preset family cannot be determined.
	ErrUnknownFamily = errors.New("unable to determine preset family")

	// ErrTerminated reports that the user declined to continue.
	// It is a control outcome, not a failure.
	ErrTerminated = errors.New("terminated by user")
)

// Parse sources.
const (
	SourcePreset   = "preset"
	SourceManifest = "manifest"
)

// DirectoryNotFoundError is returned when the launcher manifest does not exist.
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("no Steam.json found at %s", e.Path)
}

// ParseError reports malformed preset or manifest content.
type ParseError struct {
	// Source is SourcePreset or SourceManifest.
	Source string
	// Reason carries the detail; a *PresetReason for presets.
	Reason error
}

func (e *ParseError) Error() string {
	switch e.Source {
	case SourcePreset:
		return fmt.Sprintf("failed to parse preset HTML file (%v)", e.Reason)
	case SourceManifest:
		return fmt.Sprintf("failed to parse Steam.json: %v", e.Reason)
	default:
		return fmt.Sprintf("failed to parse %s: %v", e.Source, e.Reason)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}

// ReasonKind enumerates why a preset document could not be interpreted.
type ReasonKind int

const (
	// ReasonNoMatches means the document has no add-on rows.
	ReasonNoMatches ReasonKind = iota
	// ReasonDisplayNameSelector means a row has no display name cell.
	ReasonDisplayNameSelector
	// ReasonLinkSelector means a row has no usable workshop link.
	ReasonLinkSelector
)

// PresetReason locates a preset parse failure.
type PresetReason struct {
	Kind ReasonKind
	// Index is the zero-based row index; unused for ReasonNoMatches.
	Index int
}

func (r *PresetReason) Error() string {
	switch r.Kind {
	case ReasonDisplayNameSelector:
		return fmt.Sprintf("DisplayName selector failed, index %d", r.Index)
	case ReasonLinkSelector:
		return fmt.Sprintf("Link selector failed, index %d", r.Index)
	default:
		return "no matches"
	}
}

// ConflictingDisplayNamesError is a recoverable warning: the preset and the
// manifest disagree on the name of the same add-on. The manifest name wins.
type ConflictingDisplayNamesError struct {
	ID           uint64
	PresetName   string
	ManifestName string
}

func (e *ConflictingDisplayNamesError) Error() string {
	return fmt.Sprintf("preset and Steam.json have conflicting display names (is the mod up to date): %q, %q; Steam.json will take precedence",
		e.PresetName, e.ManifestName)
}

// NameContainsSeparatorError is fatal: the name would corrupt the name list.
type NameContainsSeparatorError struct {
	ID   uint64
	Name string
}

func (e *NameContainsSeparatorError) Error() string {
	return fmt.Sprintf("mod name contains a semicolon: %q", e.Name)
}

// UnmatchedEntriesError lists preset entries the manifest lacks.
type UnmatchedEntriesError struct {
	Entries []UnmatchedEntry
}

func (e *UnmatchedEntriesError) Error() string {
	var b strings.Builder
	b.WriteString("preset contains mods that Steam.json lacks (are they subscribed?): ")
	for i, entry := range e.Entries {
		if i != 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q (%d)", entry.DisplayName, entry.ID)
	}
	return b.String()
}

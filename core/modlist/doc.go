// Package modlist defines the shared records of the modlist builder.
//
// A build starts from two independently sourced lists describing the same
// installed add-ons: the preset exported by a launcher (PresetEntry) and the
// launcher's local installation manifest (InstalledItem). Reconciliation
// turns matching pairs into MergedItem records and sets aside presets that
// have no installation as UnmatchedEntry records.
//
// # Families
//
// A preset belongs to one of two product lines (Family). The family decides
// which launcher directory holds the manifest to reconcile against.
//
// # Errors
//
// Failure modes keep their payload (paths, names, parse reasons, unmatched
// lists) because the CLI and HTTP surfaces render them verbatim. Use errors.Is
// for the sentinels and errors.As for the typed variants.
package modlist

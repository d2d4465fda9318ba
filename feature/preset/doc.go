// Package preset reads launcher preset documents.
//
// Both the Arma 3 and the DayZ launcher export presets as a small HTML page:
// one table row per add-on, with the display name in one cell and a Steam
// Workshop link in another. Parse extracts the rows in document order and
// detects the family from the launcher's meta tags.
//
// Selectors are compiled once, at package initialization.
//
// # Failure modes
//
//   - empty path: modlist.ErrNoSourceProvided
//   - no rows, a row without a name, a row without a usable link:
//     *modlist.ParseError carrying a *modlist.PresetReason with the row index
//   - no family meta tag and no override: modlist.ErrUnknownFamily
package preset

// Package manifest reads the launcher installation manifest (Steam.json).
//
// Each launcher keeps a Steam.json under its directory in the platform
// local data directory ("Arma 3 Launcher" or "DayZ Launcher"). The file
// lists every subscribed extension with its workshop id ("steam:<u64>"),
// display name, install path, size on disk, and dependency ids. Reader.Load
// turns it into a map keyed by workshop id.
//
// # Failure modes
//
//   - file absent: *modlist.DirectoryNotFoundError with the resolved path
//   - malformed JSON or ids: *modlist.ParseError with source "manifest"
//
// # Caching
//
// Cache wraps any Loader with a per-family TTL cache guarded by singleflight,
// so repeated HTTP builds reuse one parse of the manifest.
package manifest

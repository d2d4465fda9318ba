// Package builder runs the modlist pipeline.
//
// A build takes a parsed preset through four stages:
//
//	manifest load -> reconcile -> confirmation -> sequence
//
// Name conflicts are logged and carried in the outcome without stopping the
// build. Preset entries that are not installed stop at the confirmation
// boundary: the Confirmer decides whether the build continues without them.
// Declining yields modlist.ErrTerminated and nothing but the unmatched
// report is written.
//
// # HTTP Endpoints
//
//   - POST /modlist : builds the lists for the preset HTML in the request body.
//     Supports ?family=arma|dayz and ?allow_unmatched=true.
package builder

// Package output renders and writes the build artifacts.
//
// Three payloads exist:
//
//   - name list: "@" + name + ";" per item, no other separator ("@Alpha;@Beta;")
//   - id list: decimal ids joined by commas, no trailing comma ("1,2")
//   - unmatched report: one "{name} ({id})" line per preset entry that is not installed
//
// Writer puts them in the configured output directory. Publisher optionally
// uploads the written artifacts to S3 or MinIO under {prefix}/{family}/.
package output

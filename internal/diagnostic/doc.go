// Package diagnostic provides structured, path-qualified errors and warnings
// for register definition documents.
//
// Key capabilities:
//   - Missing key and wrong shape reports pointing at the offending node
//   - Strict-mode findings (overlaps, out-of-range fields, duplicates)
//   - Promotion of warnings to errors
package diagnostic

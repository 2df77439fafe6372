// Package diagnostic provides structured, coded reports for generation
// failures and layout validation.
//
// Key capabilities:
//   - Per-struct failure records (header path + struct name)
//   - Severity levels with a combined error view
//   - Stable codes usable in tests and scripts
package diagnostic

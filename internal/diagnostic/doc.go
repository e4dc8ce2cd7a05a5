// Package diagnostic provides structured warnings and errors for the
// builder generator's schema validation stage.
//
// Key capabilities:
//   - Per-record and per-field error attribution
//   - Stable diagnostic codes for tooling
//   - Aggregation into a single error for CLI exit paths
package diagnostic

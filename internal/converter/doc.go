// Package converter orchestrates subtitle encoding conversions.
//
// A Converter re-encodes single files (ConvertFile) or whole directory trees
// (ConvertBatch). Batch runs discover candidate files, decide sequence naming
// and slug policy, convert files one by one, and aggregate per-file failures
// into a single errdefs.BatchError so one bad file never aborts the rest of
// the run unless the caller asked for fail-fast behavior.
package converter

// Package errdefs defines the flat error taxonomy shared by every subfix
// package.
//
// Errors are tagged with sentinel markers (validation, configuration, not
// found, already exists, encoding) so callers can classify failures with
// errors.Is without depending on concrete error types. The one structured
// error type, BatchError, carries the per-file failure ledger of a batch run.
package errdefs

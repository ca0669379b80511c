package converter

// Request describes a single file conversion. The zero value converts in
// place next to the source file: encoding detected, target UTF-8, no suffix,
// and collisions fatal (SlugLength 0).
type Request struct {
	// TargetDir is the destination directory; empty means the source file's
	// own directory. Must be absolute when set.
	TargetDir string
	// TargetBaseName replaces the destination base name. The extension is
	// always derived from the source file.
	TargetBaseName string
	// Suffix is appended between base name and extension.
	Suffix string
	// SourceEncoding skips detection when set.
	SourceEncoding string
	// TargetEncoding overrides the configured target encoding when set.
	TargetEncoding string
	// SlugLength enables collision disambiguation when positive.
	SlugLength int
}

// BatchOptions configure a directory-wide conversion run.
type BatchOptions struct {
	// TargetDir collects every converted file when set; empty writes each
	// file next to its original. Setting it forces sequence naming.
	TargetDir string
	// SourceEncoding skips per-file detection when set.
	SourceEncoding string
	// TargetEncoding overrides the configured target encoding when set.
	TargetEncoding string
	// FixedBaseName names every converted file identically. Setting it
	// forces sequence naming.
	FixedBaseName string
	// SequenceNaming suffixes converted files with their 1-based position.
	SequenceNaming bool
	// Suffix is appended to every file name, after any sequence number.
	Suffix string
	// SlugLength overrides the disambiguation slug policy. nil applies the
	// configured default when sequence naming is off; an explicit 0 disables
	// slug retries and makes collisions fatal for that file.
	SlugLength *int
	// Extensions lists accepted file name endings; nil uses the configured
	// default. Matching is case-insensitive.
	Extensions []string
	// FailFast aborts the batch on the first per-file failure instead of
	// recording it in the ledger and continuing.
	FailFast bool
}

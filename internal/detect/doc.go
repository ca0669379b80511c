// Package detect decides the source encoding of subtitle files.
//
// The byte-level classifier is consumed as a black box behind the Classifier
// interface; the Oracle applies the acceptance policy on top of it: accept
// verdicts at or above a confidence threshold (normalizing UTF-8 labels to
// the canonical form) and map everything else to a fixed fallback encoding.
package detect

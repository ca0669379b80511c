// Package config loads, normalizes, and validates subfix configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes the encoding
// policy knobs (target, fallback, confidence threshold) and naming defaults
// so the CLI and library see one sanitized view of them.
package config

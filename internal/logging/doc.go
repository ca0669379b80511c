// Package logging constructs the slog loggers used across subfix.
//
// It offers a compact console format for interactive runs and a JSON format
// for automation, plus attribute helpers and standardized field names so
// every component logs run ids and file paths the same way.
package logging

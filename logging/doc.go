// Package logging wraps log/slog with the structured fields used across
// bluenoise: sampling runs, index kinds and candidate counts.
package logging

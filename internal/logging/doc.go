// Package logging provides a unified logging interface for the recurrence
// programs. It abstracts zerolog behind a small Logger interface so that
// components log structured fields without depending on the backend.
// All output goes to the writer the caller supplies, which is stderr for the
// programs: standard output is reserved for computed values.
package logging

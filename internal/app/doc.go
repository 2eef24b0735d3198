// Package app wires configuration, logging, metrics and progress display
// around a driver.Program and maps the outcome to a process exit code.
//
// Each binary under cmd/ builds a Command and hands it to New; everything
// else is shared.
package app

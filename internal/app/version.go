package app

import (
	"fmt"
	"io"
)

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/agbru/recur/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether args request the version. Only the exact
// forms --version and -version are recognised, so that the flag never
// reaches the FlagSet.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes "<name> <version>" to w.
func PrintVersion(w io.Writer, name string) {
	fmt.Fprintf(w, "%s %s\n", name, Version)
}

// Package buildinfo exposes version information stamped at build time via
// -ldflags, e.g.:
//
//	go build -ldflags "-X .../internal/buildinfo.Version=1.2.0 \
//	  -X .../internal/buildinfo.Date=2026-08-31 \
//	  -X .../internal/buildinfo.Commit=abc1234"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBuildData writes the stamped build metadata to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}

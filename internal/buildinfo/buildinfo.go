// Package buildinfo carries the version stamped in by the linker:
//
//	go build -ldflags "-X lcdtris/internal/buildinfo.Version=v1.2.0 -X lcdtris/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title and boot log.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full build line printed by the version command.
func String() string {
	return "lcdtris " + Short() + " (version " + Version + ", commit " + Commit + ", built " + Date + ")"
}

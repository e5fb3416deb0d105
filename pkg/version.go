// Package rolecheck checks that Go types and role definitions conform
// to declared roles (interfaces).
package rolecheck

var (
	// Version of rolecheck, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)

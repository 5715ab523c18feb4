//go:build !linux && !darwin

package cmd

import "os"

// isTerminal reports whether f is attached to a terminal. Without a
// platform probe we assume it is not, which disables color.
func isTerminal(_ *os.File) bool {
	return false
}

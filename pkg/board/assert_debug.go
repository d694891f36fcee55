//go:build !release

package board

import "fmt"

// assert panics with a formatted message when cond is false. Compiled out
// entirely in release builds (build tag "release") per spec §7: illegal
// moves passed to makeMove are undefined behavior in release, but debug
// builds assert on "no piece at source" and "captured piece kind
// unresolvable".
func assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

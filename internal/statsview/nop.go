//go:build !statsview

package statsview

import "io"

// Address is where the viewer would listen.
const Address = ""

// Launch does nothing without the statsview build tag.
func Launch(io.Writer) {}

// Available reports whether the viewer was compiled in.
func Available() bool {
	return false
}

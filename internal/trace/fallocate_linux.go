//go:build linux

package trace

import (
	"os"

	"golang.org/x/sys/unix"
)

// fallocateFile pre-allocates disk blocks for the file, so writes through
// the mapping cannot SIGBUS on a full filesystem.
func fallocateFile(f *os.File, size int64) error {
	return unix.Fallocate(int(f.Fd()), 0, 0, size)
}

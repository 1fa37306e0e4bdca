//go:build !linux

package trace

import "os"

// fallocateFile is a no-op on platforms without fallocate; the file has
// already been sized with Truncate and sparse writes are acceptable there.
func fallocateFile(f *os.File, size int64) error {
	return nil
}

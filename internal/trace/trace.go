// Package trace reads and writes binary access-trace files: flat arrays of
// int64 embedding row indices captured from (or synthesized for) an
// embedding pipeline. Traces are consumed by cmd/bench and produced by
// cmd/gentrace.
//
// File layout (all integers little-endian):
//
//	[0:8)        magic
//	[8:12)       version
//	[12:16)      reserved (zero)
//	[16:24)      record count n
//	[24:24+8n)   int64 records
//	[24+8n:+8)   xxHash64 of the record bytes
package trace

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"

	lazydperrors "github.com/VIA-Research/LazyDP/errors"
)

const (
	magic      = 0x454341525450444C // "LDPTRACE"
	version    = 1
	headerSize = 24
	footerSize = 8
)

// Write creates (or truncates) path and writes keys as a trace file. The
// file is sized up front and filled through a shared mapping, so a short
// write cannot leave a silently truncated record section; readers detect any
// interrupted write via the checksum.
func Write(path string, keys []int64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	total := int64(headerSize + 8*len(keys) + footerSize)
	if err := f.Truncate(total); err != nil {
		return fmt.Errorf("size trace: %w", err)
	}
	// Pre-allocate disk blocks (prevents SIGBUS on disk full).
	if err := fallocateFile(f, total); err != nil {
		return fmt.Errorf("pre-allocate trace: %w", err)
	}

	m, err := mmap.MapRegion(f, int(total), mmap.RDWR, 0, 0)
	if err != nil {
		return fmt.Errorf("mmap trace: %w", err)
	}
	defer func() {
		if uerr := m.Unmap(); uerr != nil && err == nil {
			err = uerr
		}
	}()

	binary.LittleEndian.PutUint64(m[0:8], magic)
	binary.LittleEndian.PutUint32(m[8:12], version)
	binary.LittleEndian.PutUint32(m[12:16], 0)
	binary.LittleEndian.PutUint64(m[16:24], uint64(len(keys)))
	for i, k := range keys {
		binary.LittleEndian.PutUint64(m[headerSize+8*i:], uint64(k))
	}
	payload := m[headerSize : headerSize+8*len(keys)]
	binary.LittleEndian.PutUint64(m[total-footerSize:], xxhash.Sum64(payload))

	return m.Flush()
}

// Read opens a trace file and returns its records. The file is mapped
// read-only with a sequential-access hint; the header, size, and checksum
// are validated before any record is decoded.
func Read(path string) (_ []int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat trace: %w", err)
	}
	size := fi.Size()
	if size < headerSize+footerSize {
		return nil, lazydperrors.ErrTruncatedFile
	}
	fadviseSequential(int(f.Fd()), 0, size)

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap trace: %w", err)
	}
	defer func() {
		if uerr := m.Unmap(); uerr != nil && err == nil {
			err = uerr
		}
	}()

	if binary.LittleEndian.Uint64(m[0:8]) != magic {
		return nil, lazydperrors.ErrInvalidMagic
	}
	if v := binary.LittleEndian.Uint32(m[8:12]); v != version {
		return nil, fmt.Errorf("%w: version %d", lazydperrors.ErrInvalidVersion, v)
	}
	count := binary.LittleEndian.Uint64(m[16:24])
	if count > (uint64(size)-headerSize-footerSize)/8 {
		return nil, lazydperrors.ErrTruncatedFile
	}

	payload := m[headerSize : headerSize+8*count]
	want := binary.LittleEndian.Uint64(m[headerSize+8*count:])
	if xxhash.Sum64(payload) != want {
		return nil, lazydperrors.ErrChecksumFailed
	}

	keys := make([]int64, count)
	for i := range keys {
		keys[i] = int64(binary.LittleEndian.Uint64(payload[8*i:]))
	}
	return keys, nil
}

// IsCorrupt reports whether err indicates a damaged or foreign file rather
// than an I/O failure.
func IsCorrupt(err error) bool {
	return errors.Is(err, lazydperrors.ErrInvalidMagic) ||
		errors.Is(err, lazydperrors.ErrInvalidVersion) ||
		errors.Is(err, lazydperrors.ErrChecksumFailed) ||
		errors.Is(err, lazydperrors.ErrTruncatedFile)
}

// Package errors defines all exported error sentinels for the lazydp library.
//
// This is the single source of truth for error values. Both the top-level
// lazydp package and internal kernel packages import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Contract violations. All are detected eagerly, before any parallel work
// starts; a rejected call produces no partial results.
var (
	ErrInvalidWorkers   = errors.New("lazydp: workers must be at least 1")
	ErrNegativeExtra    = errors.New("lazydp: extra row count cannot be negative")
	ErrInvalidDim       = errors.New("lazydp: dim must be at least 1")
	ErrNegativeRows     = errors.New("lazydp: row count cannot be negative")
	ErrEmptyStd         = errors.New("lazydp: per-row std vector is empty")
	ErrShapeMismatch    = errors.New("lazydp: indices/values shape mismatch")
	ErrInvalidLayout    = errors.New("lazydp: malformed sparse layout")
	ErrIndexOutOfRange  = errors.New("lazydp: sparse index outside [0, numEmbeddings)")
	ErrUnknownStrategy  = errors.New("lazydp: unknown coalesce strategy")
	ErrUnknownAlgorithm = errors.New("lazydp: unknown dedup algorithm")
)

// Trace file errors
var (
	ErrInvalidMagic   = errors.New("lazydp: invalid trace magic number")
	ErrInvalidVersion = errors.New("lazydp: unsupported trace version")
	ErrChecksumFailed = errors.New("lazydp: trace checksum verification failed")
	ErrTruncatedFile  = errors.New("lazydp: trace file is truncated")
)

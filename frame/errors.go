package frame

import "errors"

// Sentinel errors for frame assembly.
var (
	// ErrFieldMismatch indicates records whose field sets differ without a
	// declared repair policy, or a record with duplicate field names.
	ErrFieldMismatch = errors.New("frame: record field sets do not match")

	// ErrKeyCount indicates identity labels that do not recycle to the row
	// count.
	ErrKeyCount = errors.New("frame: key labels do not match row count")

	// ErrRowCount indicates frames whose row counts are neither equal nor 1.
	ErrRowCount = errors.New("frame: row counts are not recyclable")
)

// Package somscan locates the start-of-message marker in a byte stream:
// the first position at which the preceding 14 bytes are pairwise
// distinct.
//
// # Basic Usage
//
//	pos, err := somscan.FindMarker([]byte("mjqjpqmgbljsphdztnvjfqwrcgsmlb"))
//	if err != nil {
//	    // errs.ErrShortInput or errs.ErrNoMarker
//	}
//	// pos == 19
//
// # Package Structure
//
// This package is a convenience wrapper around the marker package, which
// provides six interchangeable finder strategies trading data structure
// choice and incremental-update technique for speed. FindMarker uses the
// fastest of them; for strategy selection and the benchmark comparisons
// between them, use the marker package directly.
package somscan

import "github.com/arloliu/somscan/marker"

// MarkerLen is the marker window length in bytes.
const MarkerLen = marker.Len

// FindMarker returns the 1-based count of bytes consumed up to and
// including the first window of MarkerLen pairwise distinct bytes.
//
// It delegates to the fastest strategy (marker.FindBitmaskSkip), which
// assumes an input alphabet free of mod-32 byte collisions; see the
// marker package doc for the exact constraint.
//
// Returns:
//   - int: The marker position.
//   - error: errs.ErrShortInput when len(data) < MarkerLen, or
//     errs.ErrNoMarker when the input holds no distinct window.
func FindMarker(data []byte) (int, error) {
	return marker.FindBitmaskSkip(data)
}

package marker

import (
	"math/bits"

	"github.com/arloliu/somscan/errs"
)

// FindBitmask locates the marker with an incremental 32-bit presence mask
// carried across windows instead of per-window state.
//
// Each byte maps to mask bit (byte % 32). Bits are XOR-toggled rather than
// set: two occurrences of the same value cancel, so within a window a bit
// is set iff bytes mapping to it occur an odd number of times. A popcount
// of Len therefore forces Len distinct bit values among Len bytes, which
// for a mod-32 collision free alphabet means Len distinct bytes.
//
// The mask is primed with the first Len-1 bytes. Each step then toggles in
// the byte entering the window, tests popcount == Len, and toggles out the
// byte leaving it, giving O(1) work per window transition.
//
// See the package doc for the mod-32 input domain constraint.
func FindBitmask(data []byte) (int, error) {
	if len(data) < Len {
		return 0, errs.ErrShortInput
	}

	var filter uint32
	for _, c := range data[:Len-1] {
		filter ^= 1 << (c % 32)
	}

	for i := 0; i+Len <= len(data); i++ {
		filter ^= 1 << (data[i+Len-1] % 32) // entering byte
		if bits.OnesCount32(filter) == Len {
			return i + Len, nil
		}
		filter ^= 1 << (data[i] % 32) // leaving byte
	}

	return 0, errs.ErrNoMarker
}

// FindBitmaskSkip locates the marker by scanning each candidate window
// from back to front over a fresh presence mask, then restarting past the
// duplicate it found.
//
// Scanning in reverse, the first position whose bit is already set is the
// earlier half of the rightmost duplicate pair in the window. No window
// starting at or before that position can be distinct, so the cursor jumps
// straight past it instead of advancing by one. A window with no duplicate
// is the answer.
//
// This is the fastest strategy on realistic input: failing windows advance
// the cursor by several offsets per scan, and the scan itself usually
// terminates within a few bytes.
//
// See the package doc for the mod-32 input domain constraint.
func FindBitmaskSkip(data []byte) (int, error) {
	if len(data) < Len {
		return 0, errs.ErrShortInput
	}

	idx := 0
	for idx+Len <= len(data) {
		win := data[idx : idx+Len]

		var state uint32
		dup := -1
		for j := Len - 1; j >= 0; j-- {
			bit := uint32(1) << (win[j] % 32)
			if state&bit != 0 {
				dup = j
				break
			}
			state |= bit
		}

		if dup < 0 {
			return idx + Len, nil
		}
		idx += dup + 1
	}

	return 0, errs.ErrNoMarker
}

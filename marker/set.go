package marker

import "github.com/arloliu/somscan/errs"

// FindSet locates the marker by materializing a set per candidate window.
//
// For each window start offset in increasing order it inserts all Len bytes
// into a fresh map and accepts the window when the map holds Len entries.
// This is the exhaustive baseline the faster strategies are measured
// against: O(n·Len) window work plus map overhead for every window,
// including ones an early duplicate would have disqualified.
//
// Parameters:
//   - data: Input byte sequence; never mutated.
//
// Returns:
//   - int: 1-based marker position (first distinct window offset + Len).
//   - error: errs.ErrShortInput or errs.ErrNoMarker.
func FindSet(data []byte) (int, error) {
	if len(data) < Len {
		return 0, errs.ErrShortInput
	}

	for i := 0; i+Len <= len(data); i++ {
		seen := make(map[byte]struct{}, Len)
		for _, c := range data[i : i+Len] {
			seen[c] = struct{}{}
		}
		if len(seen) == Len {
			return i + Len, nil
		}
	}

	return 0, errs.ErrNoMarker
}

// FindSetEarly is FindSet with an early exit: the window check aborts on
// the first byte already present in the set instead of always building the
// full map. Average window cost drops sharply on realistic input, where
// most windows fail within the first few bytes.
func FindSetEarly(data []byte) (int, error) {
	if len(data) < Len {
		return 0, errs.ErrShortInput
	}

window:
	for i := 0; i+Len <= len(data); i++ {
		seen := make(map[byte]struct{}, Len)
		for _, c := range data[i : i+Len] {
			if _, dup := seen[c]; dup {
				continue window
			}
			seen[c] = struct{}{}
		}

		return i + Len, nil
	}

	return 0, errs.ErrNoMarker
}

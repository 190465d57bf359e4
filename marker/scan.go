package marker

import (
	"bytes"

	"github.com/arloliu/somscan/errs"
)

// FindLinear locates the marker with early exit like FindSetEarly, but
// replaces the map with a linear membership scan over a small slice.
//
// With only Len elements per window the O(Len) scan beats hashing on
// constant factors: no hashing, no bucket lookups, and bytes.IndexByte
// compiles to an optimized byte search.
func FindLinear(data []byte) (int, error) {
	if len(data) < Len {
		return 0, errs.ErrShortInput
	}

	buf := make([]byte, 0, Len)

window:
	for i := 0; i+Len <= len(data); i++ {
		buf = buf[:0]
		for _, c := range data[i : i+Len] {
			if bytes.IndexByte(buf, c) >= 0 {
				continue window
			}
			buf = append(buf, c)
		}

		return i + Len, nil
	}

	return 0, errs.ErrNoMarker
}

// FindArray is FindLinear with the growable slice replaced by a
// stack-allocated [Len]byte and an explicit fill count. No allocation
// happens per call or per window.
func FindArray(data []byte) (int, error) {
	if len(data) < Len {
		return 0, errs.ErrShortInput
	}

window:
	for i := 0; i+Len <= len(data); i++ {
		var arr [Len]byte
		n := 0
		for _, c := range data[i : i+Len] {
			for j := 0; j < n; j++ {
				if arr[j] == c {
					continue window
				}
			}
			arr[n] = c
			n++
		}

		return i + Len, nil
	}

	return 0, errs.ErrNoMarker
}

//go:build nobuild

package corpus

import (
	"github.com/valyala/gozstd"
)

// decompressZstd decompresses Zstd-compressed sample data using the cgo
// gozstd backend.
func decompressZstd(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}

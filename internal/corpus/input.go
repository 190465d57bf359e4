package corpus

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
)

// ReadInput reads a sample file, decompressing it transparently based on
// its extension:
//   - .zst: Zstandard
//   - .s2:  S2
//   - .lz4: LZ4 frame
//
// Any other extension is returned as-is. The returned bytes are owned by
// the caller.
func ReadInput(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}

	var data []byte
	switch filepath.Ext(path) {
	case ".zst":
		data, err = decompressZstd(raw)
	case ".s2":
		data, err = io.ReadAll(s2.NewReader(bytes.NewReader(raw)))
	case ".lz4":
		data, err = io.ReadAll(lz4.NewReader(bytes.NewReader(raw)))
	default:
		return raw, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}

	return data, nil
}

// Package corpus provides the benchmark and test inputs for the marker
// finders: the fixed reference samples, a deterministic generator for
// large worst-case inputs, and a loader for on-disk sample files with
// transparent decompression.
package corpus

import (
	"math/rand/v2"

	"github.com/arloliu/somscan/internal/hash"
	"github.com/arloliu/somscan/marker"
)

// Sample is one reference input with its known marker position.
type Sample struct {
	Name   string
	Data   []byte
	Marker int
}

// Samples returns the reference messages with their expected marker
// positions. Every finder strategy must agree with these.
func Samples() []Sample {
	return []Sample{
		{Name: "mjq", Data: []byte("mjqjpqmgbljsphdztnvjfqwrcgsmlb"), Marker: 19},
		{Name: "bvw", Data: []byte("bvwbjplbgvbhsrlpgdmjqwftvncz"), Marker: 23},
		{Name: "nzn", Data: []byte("nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg"), Marker: 29},
	}
}

// bodyAlphabet holds 13 letters. A window drawn entirely from it can never
// contain marker.Len distinct bytes, so generated bodies keep every finder
// scanning to the end.
const bodyAlphabet = "abcdefghijklm"

// tail is marker.Len pairwise distinct letters. Appended after a body
// drawn from bodyAlphabet it forms the only distinct window in the input:
// any window overlapping body and tail needs k body bytes distinct from
// the first marker.Len-k tail letters, and bodyAlphabet leaves fewer than
// k candidates for them.
const tail = "abcdefghijklmn"

// Generate returns size bytes of deterministic worst-case input whose
// first (and only) marker ends exactly at the final byte.
//
// The RNG is seeded from the xxHash64 of name, so the same name and size
// always produce the same bytes. size must be at least marker.Len; smaller
// requests are clamped to marker.Len.
//
// Parameters:
//   - name: Corpus name, hashed into the RNG seed.
//   - size: Total output length in bytes.
//
// Returns:
//   - []byte: Generated input; a fresh slice owned by the caller.
func Generate(name string, size int) []byte {
	if size < marker.Len {
		size = marker.Len
	}

	seed := hash.Seed(name)
	rng := rand.New(rand.NewPCG(seed, seed))

	data := make([]byte, size)
	body := data[:size-marker.Len]
	for i := range body {
		body[i] = bodyAlphabet[rng.IntN(len(bodyAlphabet))]
	}
	copy(data[size-marker.Len:], tail)

	return data
}

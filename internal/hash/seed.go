package hash

import "github.com/cespare/xxhash/v2"

// Seed computes the xxHash64 of the given name.
//
// It is used to derive deterministic RNG seeds for named benchmark
// corpora: the same name always yields the same seed, across runs and
// platforms.
func Seed(name string) uint64 {
	return xxhash.Sum64String(name)
}

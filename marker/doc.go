// Package marker finds the start-of-message marker in a byte stream: the
// first position at which the preceding 14 bytes are pairwise distinct.
//
// The package provides six interchangeable strategies that share one
// contract and differ only in speed. All of them return the 1-based count
// of bytes consumed up to and including the first distinct window, or a
// sentinel error when no such window exists.
//
// # Strategies
//
// In increasing order of sophistication:
//
//   - FindSet: materializes a map per window and checks its size.
//   - FindSetEarly: same map, but aborts the window on the first duplicate.
//   - FindLinear: replaces the map with a linear scan over a small slice;
//     asymptotically worse, faster in practice for 14 elements.
//   - FindArray: linear scan over a stack-allocated [14]byte, zero
//     allocations per window.
//   - FindBitmask: incremental XOR-toggled 32-bit presence mask carried
//     across windows, accepting on popcount == 14.
//   - FindBitmaskSkip: per-window reverse scan over a fresh presence mask,
//     skipping the cursor past the earlier half of the last duplicate pair
//     found, so failing windows advance the search by several offsets at
//     once.
//
// Every strategy returns identical results for identical input; pick by
// performance (FindBitmaskSkip is the fastest, and what the top-level
// somscan.FindMarker uses).
//
// # Input domain
//
// The bitmask strategies reduce byte values modulo 32 before mapping them
// to mask bits. Two distinct byte values that are congruent mod 32 (for
// example 'a' (0x61) and 'A' (0x41)) therefore share a bit and are treated
// as the same value. This matches the reference behavior and is correct
// for inputs drawn from an alphabet in which no two members collide mod
// 32, such as the lowercase ASCII letters. Callers feeding a wider
// alphabet should use one of the set or scan based strategies instead.
package marker

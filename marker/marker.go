package marker

import (
	"fmt"

	"github.com/arloliu/somscan/errs"
)

// Len is the marker window length: the number of pairwise distinct bytes
// that constitute a start-of-message marker. It is a property of the
// marker format, not a tunable.
const Len = 14

// Finder is the contract shared by every strategy: given a read-only byte
// sequence, return the smallest pos such that data[pos-Len:pos] contains
// Len pairwise distinct bytes.
//
// All implementations in this package are pure functions: they never
// mutate data, retain no state between calls, and return identical results
// for identical input.
//
// Error behavior is uniform across strategies:
//   - errs.ErrShortInput when len(data) < Len
//   - errs.ErrNoMarker when no distinct window exists
type Finder func(data []byte) (int, error)

// Kind identifies one of the finder strategies.
type Kind uint8

const (
	KindSet         Kind = iota + 1 // KindSet selects FindSet.
	KindSetEarly                    // KindSetEarly selects FindSetEarly.
	KindLinear                      // KindLinear selects FindLinear.
	KindArray                       // KindArray selects FindArray.
	KindBitmask                     // KindBitmask selects FindBitmask.
	KindBitmaskSkip                 // KindBitmaskSkip selects FindBitmaskSkip.
)

func (k Kind) String() string {
	switch k {
	case KindSet:
		return "Set"
	case KindSetEarly:
		return "SetEarly"
	case KindLinear:
		return "Linear"
	case KindArray:
		return "Array"
	case KindBitmask:
		return "Bitmask"
	case KindBitmaskSkip:
		return "BitmaskSkip"
	default:
		return "Unknown"
	}
}

// Finder returns the strategy implementation for the kind, or nil for an
// unknown kind.
func (k Kind) Finder() Finder {
	switch k {
	case KindSet:
		return FindSet
	case KindSetEarly:
		return FindSetEarly
	case KindLinear:
		return FindLinear
	case KindArray:
		return FindArray
	case KindBitmask:
		return FindBitmask
	case KindBitmaskSkip:
		return FindBitmaskSkip
	default:
		return nil
	}
}

// Kinds returns every registered strategy kind, slowest first. The order
// is stable; the benchmark driver reports strategies in this order.
func Kinds() []Kind {
	return []Kind{KindSet, KindSetEarly, KindLinear, KindArray, KindBitmask, KindBitmaskSkip}
}

// Lookup resolves a strategy kind by its String() name.
//
// Returns:
//   - Kind: The matching kind.
//   - error: errs.ErrUnknownKind (wrapped with the offending name) when no
//     strategy matches.
func Lookup(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownKind, name)
}

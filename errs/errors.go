// Package errs defines the sentinel errors returned by somscan packages.
//
// All errors are plain sentinel values so callers can test them with
// errors.Is. Functions that add context wrap these sentinels with %w.
package errs

import "errors"

var (
	// ErrShortInput indicates the input holds fewer bytes than one marker
	// window, so no window can be formed at all.
	ErrShortInput = errors.New("input shorter than marker window")

	// ErrNoMarker indicates the input contains no window of pairwise
	// distinct bytes.
	ErrNoMarker = errors.New("no start-of-message marker found")

	// ErrUnknownKind indicates a finder kind name that does not match any
	// registered strategy.
	ErrUnknownKind = errors.New("unknown finder kind")
)

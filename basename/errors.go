package basename

import "errors"

var (
	// ErrNegativeRadix is returned when a negative radix reaches the resolver.
	// Strip the sign first; Namer does.
	ErrNegativeRadix = errors.New("negative radix")

	// ErrRadixOutOfRange is returned for radixes whose magnitude does not fit in an int64.
	ErrRadixOutOfRange = errors.New("radix out of range")

	// ErrUnknownRoot means a radix resolved as a root has no morpheme.
	// It indicates a corrupted memo table.
	ErrUnknownRoot = errors.New("no morpheme for root radix")

	// ErrInvariant reports a factorization that contradicts the primality oracle.
	ErrInvariant = errors.New("factorization invariant violated")
)

package basename

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/on-the-ground/namebase/pure"
	"github.com/on-the-ground/namebase/store"
)

// FactorRecord is the memoized factorization of a radix.
type FactorRecord struct {
	// Roots is the number of root morphemes needed to name the radix.
	Roots int64
	// BestFactor is the radix itself for roots, 1 for primes, and otherwise the
	// smaller member of the chosen factor pair.
	BestFactor int64
}

// Resolver finds and memoizes the best factorization of each radix.
type Resolver struct {
	table   *pure.Table[int64, FactorRecord]
	sieve   *Sieve
	logger  *zap.Logger
	resolve func(int64) (FactorRecord, error)
}

// NewResolver seeds s with the root radixes and returns a resolver over it.
func NewResolver(
	s store.Store[int64, FactorRecord],
	sieve *Sieve,
	logger *zap.Logger,
) (*Resolver, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sieve == nil {
		sieve = NewSieve(logger)
	}
	r := &Resolver{
		table:  pure.NewTable(s),
		sieve:  sieve,
		logger: logger,
	}
	for _, radix := range Roots() {
		rec := FactorRecord{Roots: rootCost(radix), BestFactor: radix}
		if _, err := r.table.Seed(radix, rec); err != nil {
			return nil, fmt.Errorf("failed to seed radix %d: %w", radix, err)
		}
	}
	r.resolve = pure.Tableize(r.table, r.factorize)
	return r, nil
}

// Resolve returns the factorization of n, computing and storing it on first use.
func (r *Resolver) Resolve(n int64) (FactorRecord, error) {
	if n < 0 {
		return FactorRecord{}, fmt.Errorf("%w: %d", ErrNegativeRadix, n)
	}
	return r.resolve(n)
}

// Len reports the number of memoized radixes.
func (r *Resolver) Len() (int, error) {
	return r.table.Len()
}

// factorize computes the record of a radix that is not a root. Dependencies are
// strictly smaller than n, so the recursion always bottoms out at the roots.
func (r *Resolver) factorize(n int64) (FactorRecord, error) {
	best := FactorRecord{Roots: math.MaxInt64}
	var bestSpread int64
	for i := isqrt(n); i >= 2; i-- {
		if n%i != 0 {
			continue
		}
		left, err := r.resolve(i)
		if err != nil {
			return FactorRecord{}, err
		}
		right, err := r.resolve(n / i)
		if err != nil {
			return FactorRecord{}, err
		}
		roots := left.Roots + right.Roots
		spread := n/i - i
		if roots < best.Roots || (roots == best.Roots && spread < bestSpread) {
			best = FactorRecord{Roots: roots, BestFactor: i}
			bestSpread = spread
		}
	}

	if best.BestFactor == 0 {
		if !r.sieve.IsPrime(n) {
			return FactorRecord{}, fmt.Errorf("%w: %d has no factor pair but is not prime", ErrInvariant, n)
		}
		prev, err := r.resolve(n - 1)
		if err != nil {
			return FactorRecord{}, err
		}
		best = FactorRecord{Roots: prev.Roots, BestFactor: 1}
	}

	r.logger.Debug("resolved radix",
		zap.Int64("radix", n),
		zap.Int64("roots", best.Roots),
		zap.Int64("best_factor", best.BestFactor),
	)
	return best, nil
}

package basename

import (
	"math"
	"slices"
	"sync"

	"go.uber.org/zap"
)

const (
	// minSegment is the smallest sieve segment.
	minSegment = 1000
	// maxSegment bounds the memory of a single segment.
	maxSegment = 1 << 20
	// maxSquarable is the largest int64 whose square fits in an int64.
	maxSquarable = 3037000499
)

// Sieve is an incremental prime oracle. Known primes and the tested threshold
// survive between calls, so repeated queries share the sieving work.
type Sieve struct {
	mu     sync.Mutex
	primes []int64 // ascending, every prime below tested
	tested int64
	logger *zap.Logger
}

func NewSieve(logger *zap.Logger) *Sieve {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sieve{
		primes: []int64{2, 3, 5, 7, 11, 13, 17, 19},
		tested: 20,
		logger: logger,
	}
}

// IsPrime reports whether n is prime. Values below 2 are not.
func (s *Sieve) IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	root := isqrt(n)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.extend(root)
	if n < s.tested {
		_, found := slices.BinarySearch(s.primes, n)
		return found
	}
	for _, p := range s.primes {
		if p > root {
			break
		}
		if n%p == 0 {
			return false
		}
	}
	return true
}

// extend sieves segments until every prime up to limit is known.
// Must be called with s.mu held.
func (s *Sieve) extend(limit int64) {
	segment := min(max(minSegment, limit), maxSegment)
	for s.tested <= limit {
		lo := s.tested
		hi := lo + segment
		// Below lo² every composite has a prime factor under lo, all of them known.
		if lo <= maxSquarable && lo*lo < hi {
			hi = lo * lo
		}

		composite := make([]bool, hi-lo)
		for _, p := range s.primes {
			if p*p >= hi {
				break
			}
			start := max(p*p, (lo+p-1)/p*p)
			for m := start; m < hi; m += p {
				composite[m-lo] = true
			}
		}

		found := 0
		for i, c := range composite {
			if !c {
				s.primes = append(s.primes, lo+int64(i))
				found++
			}
		}
		s.tested = hi
		s.logger.Debug("sieve extended",
			zap.Int64("tested", hi),
			zap.Int("found", found),
			zap.Int("known", len(s.primes)),
		)
	}
}

// Known reports how many primes the sieve holds.
func (s *Sieve) Known() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.primes)
}

// isqrt returns ⌊√n⌋ for n ≥ 0.
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	r := int64(math.Sqrt(float64(n)))
	for r > maxSquarable || r*r > n {
		r--
	}
	for r < maxSquarable && (r+1)*(r+1) <= n {
		r++
	}
	return r
}

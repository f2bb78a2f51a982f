package basename

import (
	"fmt"
	"math"

	ristretto "github.com/dgraph-io/ristretto/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/namebase/store"
)

const (
	negativeName   = "nega"
	negativeAbbrev = "n"

	defaultShards = 16
)

// Names bundles every form of a radix's name.
type Names struct {
	Value        int64  `yaml:"value"`
	Name         string `yaml:"name"`
	Prefix       string `yaml:"prefix"`
	Abbreviation string `yaml:"abbreviation"`
	Roots        int64  `yaml:"roots"`
}

// Namer names radixes. It owns a memo table of factorizations that grows for
// its whole lifetime; create one per process, or one per test.
type Namer struct {
	id       string
	resolver *Resolver
	names    *ristretto.Cache[int64, Names]
	logger   *zap.Logger
}

type options struct {
	logger        *zap.Logger
	store         store.Store[int64, FactorRecord]
	sieve         *Sieve
	nameCacheSize int64
}

type Option func(*options)

// WithLogger sets the logger. Resolutions are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithStore sets the backing store of the memo table.
// The default is a sharded in-memory store.
func WithStore(s store.Store[int64, FactorRecord]) Option {
	return func(o *options) { o.store = s }
}

// WithSieve shares a primality oracle between namers.
func WithSieve(s *Sieve) Option {
	return func(o *options) { o.sieve = s }
}

// WithNameCache keeps up to size rendered Names in a ristretto cache.
// Zero, the default, disables it.
func WithNameCache(size int64) Option {
	return func(o *options) { o.nameCacheSize = size }
}

func New(opts ...Option) (*Namer, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.store == nil {
		o.store = store.NewInMemoryStore[int64, FactorRecord](defaultShards)
	}

	id := uuid.New().String()
	logger := o.logger.With(zap.String("namer", id))
	if o.sieve == nil {
		o.sieve = NewSieve(logger)
	}

	resolver, err := NewResolver(o.store, o.sieve, logger)
	if err != nil {
		return nil, err
	}
	n := &Namer{id: id, resolver: resolver, logger: logger}

	if o.nameCacheSize > 0 {
		n.names, err = ristretto.NewCache(&ristretto.Config[int64, Names]{
			NumCounters: 10 * o.nameCacheSize,
			MaxCost:     o.nameCacheSize,
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create name cache: %w", err)
		}
	}

	logger.Debug("namer created", zap.Int64("name_cache", o.nameCacheSize))
	return n, nil
}

// ID identifies the namer in logs.
func (n *Namer) ID() string {
	return n.id
}

// Resolver exposes the memo table behind the namer.
func (n *Namer) Resolver() *Resolver {
	return n.resolver
}

// Close releases the name cache. The namer must not be used afterwards.
func (n *Namer) Close() {
	if n.names != nil {
		n.names.Close()
	}
}

// Name returns the full name of radix, e.g. "dozenal" for 12 and "negabinary" for -2.
func (n *Namer) Name(radix int64) (string, error) {
	abs, negative, err := magnitude(radix)
	if err != nil {
		return "", err
	}
	name, err := n.resolver.render(abs, suffixForm)
	if err != nil {
		return "", fmt.Errorf("failed to name %d: %w", radix, err)
	}
	name = fixStandalone(name)
	if negative {
		name = Join(negativeName, name)
	}
	return name, nil
}

// Prefix returns the combining form of radix, e.g. "doza" for 12.
func (n *Namer) Prefix(radix int64) (string, error) {
	abs, negative, err := magnitude(radix)
	if err != nil {
		return "", err
	}
	prefix, err := n.resolver.render(abs, prefixForm)
	if err != nil {
		return "", fmt.Errorf("failed to name %d: %w", radix, err)
	}
	if negative {
		prefix = Join(negativeName, prefix)
	}
	return prefix, nil
}

// Abbreviation returns the short code of radix, e.g. "QTSX" for 24.
func (n *Namer) Abbreviation(radix int64) (string, error) {
	abs, negative, err := magnitude(radix)
	if err != nil {
		return "", err
	}
	abbrev, err := n.resolver.render(abs, abbrevForm)
	if err != nil {
		return "", fmt.Errorf("failed to name %d: %w", radix, err)
	}
	if negative {
		abbrev = negativeAbbrev + abbrev
	}
	return abbrev, nil
}

// Roots returns the number of root morphemes in the name of |radix|.
func (n *Namer) Roots(radix int64) (int64, error) {
	abs, _, err := magnitude(radix)
	if err != nil {
		return 0, err
	}
	rec, err := n.resolver.Resolve(abs)
	if err != nil {
		return 0, err
	}
	return rec.Roots, nil
}

// Describe returns every form at once, from the name cache when enabled.
func (n *Namer) Describe(radix int64) (Names, error) {
	if n.names != nil {
		if names, ok := n.names.Get(radix); ok {
			return names, nil
		}
	}

	names := Names{Value: radix}
	var err error
	if names.Name, err = n.Name(radix); err != nil {
		return Names{}, err
	}
	if names.Prefix, err = n.Prefix(radix); err != nil {
		return Names{}, err
	}
	if names.Abbreviation, err = n.Abbreviation(radix); err != nil {
		return Names{}, err
	}
	if names.Roots, err = n.Roots(radix); err != nil {
		return Names{}, err
	}

	if n.names != nil {
		n.names.Set(radix, names, 1)
	}
	return names, nil
}

func magnitude(radix int64) (abs int64, negative bool, err error) {
	switch {
	case radix == math.MinInt64:
		return 0, false, fmt.Errorf("%w: %d", ErrRadixOutOfRange, radix)
	case radix < 0:
		return -radix, true, nil
	default:
		return radix, false, nil
	}
}

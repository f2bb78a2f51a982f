package pure

import (
	"golang.org/x/sync/singleflight"

	"github.com/on-the-ground/namebase/shared/helper"
	"github.com/on-the-ground/namebase/store"
)

// Table memoizes a pure function of one comparable argument.
// Every key is computed at most once, even under concurrent callers, and a
// stored value is never replaced.
type Table[K comparable, V any] struct {
	store  store.Store[K, V]
	flight singleflight.Group
}

func NewTable[K comparable, V any](s store.Store[K, V]) *Table[K, V] {
	if s == nil {
		panic("store should not be nil")
	}
	return &Table[K, V]{store: s}
}

// Load returns the memoized value for key without computing anything.
func (t *Table[K, V]) Load(key K) (V, bool, error) {
	return t.store.Load(key)
}

// Seed stores value for key unless the key is already known.
func (t *Table[K, V]) Seed(key K, value V) (bool, error) {
	_, inserted, err := t.store.InsertIfAbsent(key, value)
	return inserted, err
}

// Len reports how many keys are memoized.
func (t *Table[K, V]) Len() (int, error) {
	return t.store.Len()
}

// Do returns the value for key, calling pureFn on first use. Callers racing on
// the same key share one call. Failed calls leave nothing behind.
func (t *Table[K, V]) Do(key K, pureFn func(K) (V, error)) (V, error) {
	if v, ok, err := t.store.Load(key); err != nil || ok {
		return v, err
	}
	return helper.GetTypedValueOf[V](func() (any, error) {
		v, err, _ := t.flight.Do(store.KeyOf(key), func() (any, error) {
			// Another flight may have finished between the load above and now.
			if v, ok, err := t.store.Load(key); err != nil || ok {
				return v, err
			}
			v, err := pureFn(key)
			if err != nil {
				return nil, err
			}
			actual, _, err := t.store.InsertIfAbsent(key, v)
			return actual, err
		})
		return v, err
	})
}

package store

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/on-the-ground/namebase/shared/helper"
)

type inMemStore[K comparable, V any] struct {
	shards []*sync.Map
}

// NewInMemoryStore returns a Store spread over numShards sync.Maps. Keys are
// assigned to shards by the xxhash of KeyOf(key).
func NewInMemoryStore[K comparable, V any](numShards int) Store[K, V] {
	if numShards <= 0 {
		panic("numShards should be greater than 0")
	}
	shards := make([]*sync.Map, numShards)
	for i := range shards {
		shards[i] = &sync.Map{}
	}
	return inMemStore[K, V]{shards: shards}
}

func (s inMemStore[K, V]) shardOf(key K) *sync.Map {
	return s.shards[indexByHash(KeyOf(key), len(s.shards))]
}

func (s inMemStore[K, V]) Load(key K) (v V, ok bool, err error) {
	v, ok = helper.GetTypedValueOf2[V](func() (any, bool) {
		return s.shardOf(key).Load(key)
	})
	return
}

func (s inMemStore[K, V]) InsertIfAbsent(key K, value V) (actual V, inserted bool, err error) {
	raw, loaded := s.shardOf(key).LoadOrStore(key, value)
	return raw.(V), !loaded, nil
}

func (s inMemStore[K, V]) Len() (int, error) {
	n := 0
	for _, shard := range s.shards {
		shard.Range(func(_, _ any) bool {
			n++
			return true
		})
	}
	return n, nil
}

func indexByHash(key string, numShards int) int {
	switch numShards {
	case 0:
		panic("number of shards cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(key) % uint64(numShards))
	}
}

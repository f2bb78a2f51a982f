// Package store holds the backing maps used by memo tables.
//
// A Store is append-only: InsertIfAbsent never replaces a value that is already
// present, and nothing is ever deleted. Two implementations are provided, a
// sharded sync.Map and a go-memdb table.
package store

import (
	"fmt"
	"strconv"
)

// Store is a write-once key/value map.
type Store[K comparable, V any] interface {
	// Load returns the value stored for key.
	Load(key K) (value V, ok bool, err error)
	// InsertIfAbsent stores value unless key already has one. It returns the value
	// held by the store afterwards and whether this call inserted it.
	InsertIfAbsent(key K, value V) (actual V, inserted bool, err error)
	// Len reports the number of stored keys.
	Len() (int, error)
}

// KeyOf renders a key as a string, for hashing and for indexes that only accept
// strings. Stringers win over the default formatting.
func KeyOf[K comparable](key K) string {
	switch k := any(key).(type) {
	case fmt.Stringer:
		return k.String()
	case string:
		return k
	case int64:
		return strconv.FormatInt(k, 10)
	case int:
		return strconv.Itoa(k)
	case uint64:
		return strconv.FormatUint(k, 10)
	default:
		return fmt.Sprint(k)
	}
}

package store

import (
	"fmt"

	memdb "github.com/hashicorp/go-memdb"
)

const (
	memoTable = "memo"
	memoIndex = "id"
)

// memoRow is the single row type of the memo table.
type memoRow struct {
	Key   string
	Value any
}

type memDBStore[K comparable, V any] struct {
	db *memdb.MemDB
}

// NewMemDBStore returns a Store backed by an in-memory go-memdb database.
// Readers work on immutable snapshots and never wait for writers.
func NewMemDBStore[K comparable, V any]() (Store[K, V], error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memoTable: {
				Name: memoTable,
				Indexes: map[string]*memdb.IndexSchema{
					memoIndex: {
						Name:    memoIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create memdb: %w", err)
	}
	return memDBStore[K, V]{db: db}, nil
}

func (m memDBStore[K, V]) Load(key K) (v V, ok bool, err error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	return first[V](txn, KeyOf(key))
}

func (m memDBStore[K, V]) InsertIfAbsent(key K, value V) (actual V, inserted bool, err error) {
	txn := m.db.Txn(true)
	defer txn.Abort()

	k := KeyOf(key)
	if old, ok, err := first[V](txn, k); err != nil {
		return actual, false, err
	} else if ok {
		return old, false, nil
	}

	if err := txn.Insert(memoTable, &memoRow{Key: k, Value: value}); err != nil {
		return actual, false, fmt.Errorf("failed to insert %s: %w", k, err)
	}
	txn.Commit()
	return value, true, nil
}

func (m memDBStore[K, V]) Len() (int, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(memoTable, memoIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to scan %s: %w", memoTable, err)
	}
	n := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		n++
	}
	return n, nil
}

func first[V any](txn *memdb.Txn, key string) (v V, ok bool, err error) {
	raw, err := txn.First(memoTable, memoIndex, key)
	if err != nil {
		return v, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if raw == nil {
		return v, false, nil
	}
	v, ok = raw.(*memoRow).Value.(V)
	if !ok {
		return v, false, fmt.Errorf("unexpected type for %s: %T", key, raw.(*memoRow).Value)
	}
	return v, true, nil
}

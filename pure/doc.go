// Package pure memoizes pure functions.
//
// A Table is a lazy, append-only lookup table in front of a function that
// depends on nothing but its argument. Treating a computation as a table is
// only sound when the function really is pure: no I/O, no clock, no hidden
// state. The backing map is a store.Store, so the same table can live in a
// sharded sync.Map or in go-memdb.
//
// Tableize turns a function into its memoized form, and the memoized form may
// be called recursively from inside the function for smaller arguments:
//
//	var fib func(int64) (int64, error)
//	fib = pure.Tableize(table, func(n int64) (int64, error) {
//	    if n < 2 {
//	        return n, nil
//	    }
//	    a, _ := fib(n - 1)
//	    b, _ := fib(n - 2)
//	    return a + b, nil
//	})
//
// WARNING: Do not tableize impure functions.
package pure

package pure

// Tableize wraps pureFn so that every call goes through t.
// pureFn may call the returned function for other keys; recursion on the key
// being computed would wait on itself and must not happen.
func Tableize[K comparable, V any](
	t *Table[K, V],
	pureFn func(K) (V, error),
) func(K) (V, error) {
	return func(key K) (V, error) {
		return t.Do(key, pureFn)
	}
}

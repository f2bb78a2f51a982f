package pure_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/namebase/pure"
	"github.com/on-the-ground/namebase/store"
)

func newTable() *pure.Table[int64, int64] {
	return pure.NewTable(store.NewInMemoryStore[int64, int64](4))
}

func TestTable_DoCaches(t *testing.T) {
	table := newTable()
	count := 0
	double := func(n int64) (int64, error) {
		count++
		return n * 2, nil
	}

	v, err := table.Do(2, double)
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)

	v, err = table.Do(2, double) // cached
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)
	assert.Equal(t, 1, count)
}

func TestTable_SeedWins(t *testing.T) {
	table := newTable()
	inserted, err := table.Seed(10, 100)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = table.Seed(10, 5)
	require.NoError(t, err)
	assert.False(t, inserted)

	v, err := table.Do(10, func(int64) (int64, error) {
		t.Fatal("seeded key must not be computed")
		return 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), v)
}

func TestTable_ErrorsAreNotMemoized(t *testing.T) {
	table := newTable()
	boom := errors.New("boom")

	_, err := table.Do(3, func(int64) (int64, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	_, ok, err := table.Load(3)
	require.NoError(t, err)
	assert.False(t, ok)

	v, err := table.Do(3, func(int64) (int64, error) { return 9, nil })
	require.NoError(t, err)
	assert.Equal(t, int64(9), v)
}

func TestTable_ConcurrentCallsComputeOnce(t *testing.T) {
	table := newTable()
	var calls atomic.Int32
	release := make(chan struct{})
	slow := func(n int64) (int64, error) {
		calls.Add(1)
		<-release
		return n + 1, nil
	}

	var wg sync.WaitGroup
	results := make([]int64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := table.Do(41, slow)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, int64(42), v)
	}
}

func TestTableize_Recursive(t *testing.T) {
	table := newTable()
	var calls atomic.Int32
	var fib func(int64) (int64, error)
	fib = pure.Tableize(table, func(n int64) (int64, error) {
		calls.Add(1)
		if n < 2 {
			return n, nil
		}
		a, err := fib(n - 1)
		if err != nil {
			return 0, err
		}
		b, err := fib(n - 2)
		if err != nil {
			return 0, err
		}
		return a + b, nil
	})

	v, err := fib(50)
	require.NoError(t, err)
	assert.Equal(t, int64(12586269025), v)
	assert.Equal(t, int32(51), calls.Load(), "each argument computed once")

	n, err := table.Len()
	require.NoError(t, err)
	assert.Equal(t, 51, n)
}

func TestNewTable_PanicsOnNilStore(t *testing.T) {
	assert.Panics(t, func() {
		pure.NewTable[int64, int64](nil)
	})
}

package cli_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/namebase/basename"
	"github.com/on-the-ground/namebase/internal/cli"
)

type fakeDescriber struct {
	failAt int64
}

var errFake = errors.New("fake failure")

func (f fakeDescriber) Describe(radix int64) (basename.Names, error) {
	if f.failAt != 0 && radix == f.failAt {
		return basename.Names{}, errFake
	}
	return basename.Names{Value: radix, Name: fmt.Sprintf("r%d", radix)}, nil
}

func collect(t *testing.T, d cli.Describer, ranges []cli.Range, workers int) ([]int64, error) {
	t.Helper()
	var got []int64
	err := cli.Run(context.Background(), d, ranges, workers, func(n basename.Names) error {
		got = append(got, n.Value)
		return nil
	})
	return got, err
}

func TestRun_InputOrder(t *testing.T) {
	ranges := []cli.Range{{First: 1, Last: 300}, {First: 5, Last: 3}, {First: -4, Last: -2}, {First: 7, Last: 7}}

	var want []int64
	for i := int64(1); i <= 300; i++ {
		want = append(want, i)
	}
	want = append(want, -4, -3, -2, 7)

	for _, workers := range []int{1, 3, 16} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			got, err := collect(t, fakeDescriber{}, ranges, workers)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestRun_RangeEndingAtMaxInt64(t *testing.T) {
	const maxInt64 = int64(^uint64(0) >> 1)
	got, err := collect(t, fakeDescriber{}, []cli.Range{{First: maxInt64 - 1, Last: maxInt64}}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{maxInt64 - 1, maxInt64}, got)
}

func TestRun_DescribeError(t *testing.T) {
	_, err := collect(t, fakeDescriber{failAt: 42}, []cli.Range{{First: 1, Last: 100}}, 4)
	require.ErrorIs(t, err, errFake)
}

func TestRun_EmitError(t *testing.T) {
	errEmit := errors.New("emit failed")
	err := cli.Run(context.Background(), fakeDescriber{}, []cli.Range{{First: 1, Last: 10}}, 2,
		func(basename.Names) error { return errEmit })
	require.ErrorIs(t, err, errEmit)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := cli.Run(ctx, fakeDescriber{}, []cli.Range{{First: 1, Last: 10}}, 2,
		func(basename.Names) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestFormatLine(t *testing.T) {
	names := basename.Names{Value: 24, Name: "tetraseximal", Prefix: "tetrahexa", Abbreviation: "QTSX", Roots: 2}

	assert.Equal(t, "tetraseximal", cli.FormatLine(names, cli.Columns{}))
	assert.Equal(t, "24 | tetraseximal | QTSX | tetrahexa | 2",
		cli.FormatLine(names, cli.Columns{Value: true, Abbreviation: true, Prefix: true, Roots: true}))
	assert.Equal(t, "tetraseximal | 2", cli.FormatLine(names, cli.Columns{Roots: true}))
}

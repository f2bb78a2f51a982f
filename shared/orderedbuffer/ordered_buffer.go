package orderedbuffer

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrClosedBuffer = errors.New("buffer is closed")
	ErrDuplicateSeq = errors.New("sequence number already taken")
	ErrGap          = errors.New("buffer closed with missing sequence numbers")
)

type item[T any] struct {
	seq uint64
	val T
}

// SequenceBuffer releases values in sequence-number order no matter in which
// order they are inserted. Values wait in the buffer until every smaller
// sequence number has been released.
type SequenceBuffer[T any] struct {
	mu      sync.Mutex
	pending []item[T] // ascending by seq, all > next
	next    uint64
	sink    func(T) error
	closed  bool
}

// NewSequenceBuffer releases values to sink, starting at sequence number 0.
// sink runs with the buffer locked, one value at a time.
func NewSequenceBuffer[T any](sink func(T) error) *SequenceBuffer[T] {
	return &SequenceBuffer[T]{sink: sink}
}

// Insert adds val at position seq and releases whatever became contiguous.
// A sink error stops the release and is returned.
func (b *SequenceBuffer[T]) Insert(seq uint64, val T) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosedBuffer
	}
	if seq < b.next {
		return fmt.Errorf("%w: %d", ErrDuplicateSeq, seq)
	}

	idx := sort.Search(len(b.pending), func(i int) bool {
		return b.pending[i].seq >= seq
	})
	if idx < len(b.pending) && b.pending[idx].seq == seq {
		return fmt.Errorf("%w: %d", ErrDuplicateSeq, seq)
	}
	b.pending = append(b.pending, item[T]{})
	copy(b.pending[idx+1:], b.pending[idx:])
	b.pending[idx] = item[T]{seq: seq, val: val}

	for len(b.pending) > 0 && b.pending[0].seq == b.next {
		head := b.pending[0]
		b.pending = b.pending[1:]
		b.next++
		if err := b.sink(head.val); err != nil {
			return err
		}
	}
	return nil
}

// Pending reports how many values wait for a smaller sequence number.
func (b *SequenceBuffer[T]) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Close refuses further inserts. It fails if values are still waiting.
func (b *SequenceBuffer[T]) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	if len(b.pending) > 0 {
		return fmt.Errorf("%w: next %d, %d waiting", ErrGap, b.next, len(b.pending))
	}
	return nil
}

package search

// frontier is a FIFO queue or LIFO stack over a single slice.
type frontier[T any] struct {
	lifo  bool
	items []T
	head  int // first live index in FIFO mode
}

func newFrontier[T any](s Strategy) *frontier[T] {
	return &frontier[T]{lifo: s == DepthFirst}
}

func (f *frontier[T]) len() int { return len(f.items) - f.head }

func (f *frontier[T]) push(v T) { f.items = append(f.items, v) }

// pop removes the next item. The caller checks len() first.
func (f *frontier[T]) pop() T {
	var zero T
	if f.lifo {
		last := len(f.items) - 1
		v := f.items[last]
		f.items[last] = zero
		f.items = f.items[:last]
		return v
	}
	v := f.items[f.head]
	f.items[f.head] = zero
	f.head++
	// reclaim the consumed prefix once it dominates the slice
	if f.head > 1024 && f.head*2 > len(f.items) {
		n := copy(f.items, f.items[f.head:])
		f.items = f.items[:n]
		f.head = 0
	}

	return v
}

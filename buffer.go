package vector

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports any by-value copy.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer is an exclusive owner of zero or one heap-allocated block of T.
// It has no notion of logical size; the block extent is fixed when the
// block is allocated. A Buffer must not be copied; ownership moves only
// through Release, Swap or FromRaw.
type Buffer[T any] struct {
	_    noCopy
	data []T // owned block, nil when empty
}

// NewBuffer allocates a block of exactly n zero-valued elements.
// If n <= 0, the buffer holds no allocation.
func NewBuffer[T any](n int) *Buffer[T] {
	b := &Buffer[T]{}
	if n > 0 {
		b.data = make([]T, n)
	}
	return b
}

// FromRaw takes ownership of an already allocated block. A nil or
// zero-length block yields an empty buffer. The caller must not use raw
// afterwards.
func FromRaw[T any](raw []T) *Buffer[T] {
	b := &Buffer[T]{}
	if len(raw) > 0 {
		b.data = raw
	}
	return b
}

// Release gives up ownership of the block and returns it.
// The buffer is empty afterwards; the caller now owns the block.
func (b *Buffer[T]) Release() []T {
	data := b.data
	b.data = nil
	return data
}

// At returns a pointer to the element at offset i. There is no logical
// bounds check; indexing past the block (or into an empty buffer) panics
// in the Go runtime.
func (b *Buffer[T]) At(i int) *T {
	return &b.data[i]
}

// Valid reports whether the buffer currently owns a block.
func (b *Buffer[T]) Valid() bool {
	return b.data != nil
}

// Get returns the owned block without transferring ownership.
func (b *Buffer[T]) Get() []T {
	return b.data
}

// Len returns the extent of the owned block, or 0 if empty.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Swap exchanges the owned blocks of b and other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
}

// Free drops the owned block. Elements are zeroed first so anything they
// reference can be collected even if a stale view of the block survives.
func (b *Buffer[T]) Free() {
	if b.data == nil {
		return
	}
	clear(b.data)
	b.data = nil
}

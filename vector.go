package vector

import (
	"fmt"
	"iter"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// ErrOutOfRange is returned by the checked accessors when the index is not
// within [0, Len()).
var ErrOutOfRange = errors.New("vector: index out of range")

// Vector is a growable contiguous sequence backed by a single Buffer.
// Not goroutine-safe. A Vector must not be copied by value; use Clone,
// Move or Assign instead.
type Vector[T any] struct {
	size     int
	capacity int
	buf      Buffer[T] // extent is always exactly capacity

	logger  log.Logger
	growths int
}

// New returns an empty vector with no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// Make returns a vector of n zero-valued elements with capacity n.
func Make[T any](n int) *Vector[T] {
	if n < 0 {
		panic("vector: negative size")
	}
	v := &Vector[T]{size: n, capacity: n}
	v.buf.Swap(NewBuffer[T](n))
	return v
}

// Filled returns a vector of n copies of value with capacity n.
func Filled[T any](n int, value T) *Vector[T] {
	v := Make[T](n)
	data := v.buf.Get()
	for i := range data {
		data[i] = value
	}
	return v
}

// Clone returns an independent copy of v. The copy's capacity equals
// v.Len().
func (v *Vector[T]) Clone() *Vector[T] {
	c := Make[T](v.size)
	copy(c.buf.Get(), v.Data())
	c.logger = v.logger
	return c
}

// Move transfers the contents of src into a new vector whose capacity
// equals src.Len(). The block is handed over as is when src has no spare
// capacity; otherwise the elements are moved into an exactly sized block.
// src is left empty with no allocation and remains usable.
func Move[T any](src *Vector[T]) *Vector[T] {
	v := &Vector[T]{
		size:     src.size,
		capacity: src.size,
		logger:   src.logger,
		growths:  src.growths,
	}
	if src.capacity == src.size {
		v.buf.Swap(&src.buf)
	} else {
		nb := NewBuffer[T](src.size)
		copy(nb.Get(), src.Data())
		v.buf.Swap(nb)
		src.Free()
	}
	src.size, src.capacity, src.growths = 0, 0, 0
	return v
}

// Assign replaces the contents of v with a copy of src. The copy is built
// before v is touched, so v's old storage is only dropped once the new
// storage is complete. Assigning a vector to itself does nothing.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.Swap(tmp)
	tmp.Free()
}

// MoveAssign replaces the contents of v with those of src as Move does,
// leaving src empty. Assigning a vector to itself does nothing.
func (v *Vector[T]) MoveAssign(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := Move(src)
	v.Swap(tmp)
	tmp.Free()
}

// Reserve grows the capacity to exactly n if n exceeds the current
// capacity. It never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.capacity {
		return
	}
	v.realloc(n, "reserve")
}

// PushBack appends value at the end of v.
func (v *Vector[T]) PushBack(value T) {
	v.Insert(v.End(), value)
}

// Insert places value at position pos, shifting the elements at and after
// pos one slot towards the end, and returns the position of the inserted
// value. pos must be within [0, Len()]; otherwise Insert panics.
//
// When the vector is full, the capacity doubles (0 becomes 1). Insert
// always rebuilds the elements into a fresh block of the resulting
// capacity, so v is unchanged until the new block is complete.
func (v *Vector[T]) Insert(pos int, value T) int {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range [0, %d]", pos, v.size))
	}
	capacity := v.capacity
	if v.size == v.capacity {
		capacity = max(1, 2*v.capacity)
	}

	nb := NewBuffer[T](capacity)
	dst, src := nb.Get(), v.Data()
	copy(dst, src[:pos])
	dst[pos] = value
	copy(dst[pos+1:], src[pos:])

	v.adopt(nb, "insert")
	v.size++
	return pos
}

// Erase removes the element at pos, shifting the following elements one
// slot towards the front in place, and returns pos, which now refers to
// the following element (or End()). pos must be within [0, Len());
// otherwise Erase panics.
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("vector: erase position %d out of range [0, %d)", pos, v.size))
	}
	data := v.buf.Get()
	copy(data[pos:v.size], data[pos+1:v.size])
	v.size--
	var zero T
	data[v.size] = zero
	return pos
}

// PopBack removes the last element. Panics if v is empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.Erase(v.End() - 1)
}

// Swap exchanges the contents and storage of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.buf.Swap(&other.buf)
}

// Clear sets the length to zero. Capacity and storage are kept.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize changes the length to n. Shrinking only truncates. Growing within
// capacity zero-fills the new tail in place; growing past capacity
// reallocates to max(n, 2*Cap()).
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic("vector: negative size")
	}
	switch {
	case n <= v.size:
	case n <= v.capacity:
		clear(v.buf.Get()[v.size:n])
	default:
		v.realloc(max(n, 2*v.capacity), "resize")
	}
	v.size = n
}

// Free drops the storage. v is left empty with no allocation.
func (v *Vector[T]) Free() {
	v.buf.Free()
	v.size, v.capacity = 0, 0
}

// Get returns the element at i without checking it against Len().
func (v *Vector[T]) Get(i int) T {
	return *v.buf.At(i)
}

// Ref returns a pointer to the element at i without checking it against
// Len(). The pointer is invalidated by any reallocation.
func (v *Vector[T]) Ref(i int) *T {
	return v.buf.At(i)
}

// Set stores value at i without checking it against Len().
func (v *Vector[T]) Set(i int, value T) {
	*v.buf.At(i) = value
}

// At returns the element at i, or an error wrapping ErrOutOfRange if i is
// not within [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	p, err := v.AtRef(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// AtRef is the checked form of Ref.
func (v *Vector[T]) AtRef(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d, size %d", i, v.size)
	}
	return v.buf.At(i), nil
}

// MustAt is like At but panics on an out-of-range index.
func (v *Vector[T]) MustAt(i int) T {
	x, err := v.At(i)
	if err != nil {
		panic(err)
	}
	return x
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return v.capacity }

// IsEmpty reports whether v has no elements.
func (v *Vector[T]) IsEmpty() bool { return v.size == 0 }

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() int { return 0 }

// End returns the position one past the last element.
func (v *Vector[T]) End() int { return v.size }

// Data returns the live elements. The slice aliases v's storage and is
// capped at Len(), so appending to it never writes into v. It is
// invalidated by any reallocation.
func (v *Vector[T]) Data() []T {
	return v.buf.Get()[:v.size:v.size]
}

// All returns an iterator over positions and elements.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.buf.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.buf.At(i)) {
				return
			}
		}
	}
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Data())
}

// SetLogger installs the logger reallocations are reported to at debug
// level. A nil logger disables logging.
func (v *Vector[T]) SetLogger(logger log.Logger) {
	v.logger = logger
}

func (v *Vector[T]) log() log.Logger {
	if v.logger == nil {
		return log.NewNopLogger()
	}
	return v.logger
}

// realloc moves the live elements into a fresh block of n slots.
func (v *Vector[T]) realloc(n int, reason string) {
	nb := NewBuffer[T](n)
	copy(nb.Get(), v.Data())
	v.adopt(nb, reason)
}

// adopt swaps a fully populated block in. The previous block is dropped.
func (v *Vector[T]) adopt(nb *Buffer[T], reason string) {
	old := v.capacity
	v.buf.Swap(nb)
	v.capacity = v.buf.Len()
	if v.capacity > old {
		v.growths++
		level.Debug(v.log()).Log(
			"msg", "vector grew",
			"reason", reason,
			"old_capacity", old,
			"new_capacity", v.capacity,
			"size", v.size,
		)
	}
}

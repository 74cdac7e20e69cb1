package vector

// Of returns a vector holding vals in order, with capacity len(vals).
// vals is copied.
func Of[T any](vals ...T) *Vector[T] {
	v := Make[T](len(vals))
	copy(v.buf.Get(), vals)
	return v
}

// ReserveHint carries a requested capacity for NewReserved.
type ReserveHint struct {
	Capacity int
}

// Reserve returns a hint requesting the given capacity.
func Reserve(capacity int) ReserveHint {
	return ReserveHint{Capacity: capacity}
}

// NewReserved returns an empty vector with capacity h.Capacity.
// A non-positive capacity yields a vector with no allocation.
func NewReserved[T any](h ReserveHint) *Vector[T] {
	v := New[T]()
	v.Reserve(h.Capacity)
	return v
}

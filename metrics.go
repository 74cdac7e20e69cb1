package vector

import (
	"fmt"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// ElemSize returns the size in bytes of one element slot.
func (v *Vector[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SizeInUse returns the number of bytes held by live elements.
// Memory referenced by the elements is not counted.
func (v *Vector[T]) SizeInUse() int {
	return v.size * v.ElemSize()
}

// Reserved returns the number of bytes in the allocated block.
func (v *Vector[T]) Reserved() int {
	return v.capacity * v.ElemSize()
}

// Utilization returns the ratio of length to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Growths returns how many times the capacity has increased.
func (v *Vector[T]) Growths() int {
	return v.growths
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.size,
		Cap:         v.capacity,
		ElemSize:    v.ElemSize(),
		SizeInUse:   v.SizeInUse(),
		Reserved:    v.Reserved(),
		Growths:     v.growths,
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Number of elements
	Cap         int     // Number of allocated slots
	ElemSize    int     // Bytes per slot
	SizeInUse   int     // Bytes held by live elements
	Reserved    int     // Bytes allocated
	Growths     int     // Capacity increases so far
	Utilization float64 // Ratio of Len to Cap (0.0-1.0)
}

func (m VectorMetrics) String() string {
	return fmt.Sprintf("len=%d cap=%d in_use=%s reserved=%s utilization=%.2f%% growths=%d",
		m.Len, m.Cap,
		humanize.IBytes(uint64(m.SizeInUse)),
		humanize.IBytes(uint64(m.Reserved)),
		m.Utilization*100, m.Growths)
}

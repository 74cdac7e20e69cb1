// Package vector implements a growable contiguous sequence container with
// explicit capacity management.
//
// # Overview
//
// Two types make up the package:
//
//   - Buffer is the exclusive owner of one heap block of elements. It
//     knows nothing about logical length; it allocates, hands out raw
//     element access, releases and swaps its block.
//   - Vector is a sequence built on one Buffer. It tracks length and
//     capacity separately and owns the growth policy.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	v.PushBack(1)
//	v.PushBack(3)
//	v.Insert(1, 2) // [1 2 3]
//
//	x, err := v.At(5) // errors.Is(err, vector.ErrOutOfRange)
//
//	v.Erase(0)  // [2 3]
//	v.Resize(4) // [2 3 0 0]
//	v.Clear()   // length 0, capacity kept
//
// Vectors can also be built from values or with reserved capacity:
//
//	a := vector.Of(1, 2, 3)
//	b := vector.NewReserved[string](vector.Reserve(64))
//
// # Growth
//
// When an insertion finds the vector full, the capacity doubles; an empty
// vector grows to 1. Repeated PushBack calls from empty observe capacities
// 1, 2, 4, 4, 8, 8, 8, 8, 16 and so on. Reserve grows to exactly the
// requested capacity. Resize past capacity grows to the larger of the new
// length and twice the old capacity. Capacity never shrinks.
//
// Every reallocation builds the new block completely before swapping it
// in, so a vector is never observed half-updated.
//
// # Positions
//
// Positions are plain indexes. Begin is 0 and End is Len. Insert accepts
// [Begin, End]; Erase accepts [Begin, End). Out-of-range positions are
// programming errors and panic.
//
// # Access
//
// Get, Ref and Set do no length check and are meant for loops whose
// bounds are already known. At and AtRef check the index against Len and
// return an error wrapping ErrOutOfRange.
//
// # Copying
//
// Vectors and Buffers must not be copied by value; go vet reports it.
// Clone makes an independent copy, Move transfers storage and leaves the
// source empty, and Assign and MoveAssign replace a vector's contents
// without exposing a partially built state.
//
// # Thread Safety
//
// Vector is not safe for concurrent use.
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Println(m) // len=3 cap=4 in_use=24 B reserved=32 B utilization=75.00% growths=3
//
// Growth events are reported at debug level to a go-kit logger installed
// with SetLogger.
package vector

package vector

import (
	"testing"
)

func TestVectorMetrics(t *testing.T) {
	v := New[int64]()

	// Test initial state
	if v.SizeInUse() != 0 {
		t.Errorf("Initial SizeInUse = %d, want 0", v.SizeInUse())
	}
	if v.Reserved() != 0 {
		t.Errorf("Initial Reserved = %d, want 0", v.Reserved())
	}
	if v.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", v.Utilization())
	}
	if v.ElemSize() != 8 {
		t.Errorf("ElemSize = %d, want 8", v.ElemSize())
	}

	for i := range 3 {
		v.PushBack(int64(i))
	}

	if v.SizeInUse() != 24 {
		t.Errorf("SizeInUse = %d, want 24", v.SizeInUse())
	}
	if v.Reserved() != 32 {
		t.Errorf("Reserved = %d, want 32", v.Reserved())
	}
	if v.Utilization() != 0.75 {
		t.Errorf("Utilization = %f, want 0.75", v.Utilization())
	}
	if v.Growths() != 3 {
		t.Errorf("Growths = %d, want 3", v.Growths())
	}

	// Clear keeps the reservation
	v.Clear()
	if v.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Clear = %d, want 0", v.SizeInUse())
	}
	if v.Reserved() != 32 {
		t.Errorf("Reserved after Clear = %d, want 32", v.Reserved())
	}
}

func TestMetricsSnapshot(t *testing.T) {
	v := Of[int32](1, 2, 3, 4)
	v.Reserve(8)

	m := v.Metrics()
	want := VectorMetrics{
		Len:         4,
		Cap:         8,
		ElemSize:    4,
		SizeInUse:   16,
		Reserved:    32,
		Growths:     1,
		Utilization: 0.5,
	}
	if m != want {
		t.Errorf("Metrics() = %+v, want %+v", m, want)
	}

	// Snapshot must not track later changes
	v.PushBack(5)
	if m.Len != 4 {
		t.Errorf("snapshot Len changed to %d", m.Len)
	}
}

func TestMetricsString(t *testing.T) {
	tests := []struct {
		name string
		m    VectorMetrics
		want string
	}{
		{
			"empty",
			New[int64]().Metrics(),
			"len=0 cap=0 in_use=0 B reserved=0 B utilization=0.00% growths=0",
		},
		{
			"kibibytes",
			VectorMetrics{Len: 256, Cap: 512, ElemSize: 8, SizeInUse: 2048, Reserved: 4096, Growths: 10, Utilization: 0.5},
			"len=256 cap=512 in_use=2.0 KiB reserved=4.0 KiB utilization=50.00% growths=10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMetricsAfterMove(t *testing.T) {
	a := Of(1, 2, 3)
	a.PushBack(4)
	b := Move(a)

	if a.Growths() != 0 || a.Reserved() != 0 {
		t.Errorf("moved-from vector metrics = %+v, want zero", a.Metrics())
	}
	if b.Growths() != 1 {
		t.Errorf("Growths after Move = %d, want 1", b.Growths())
	}
}

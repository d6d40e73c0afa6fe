package nvstore

import (
	"bytes"
	"fmt"
	"testing"
)

// helper to attach a vector over a fresh in-memory region
func newTestVector(t *testing.T, capacity, elemSize int) *Vector {
	t.Helper()
	r := NewMemoryRegion(VectorStorageSize(capacity, elemSize))
	v, err := AttachVector(r, 0, capacity, elemSize)
	if err != nil {
		t.Fatalf("failed to attach vector: %v", err)
	}
	return v
}

func TestVectorFreshAttach(t *testing.T) {
	v := newTestVector(t, 4, 8)

	if v.Len() != 0 {
		t.Fatalf("fresh vector should be empty, got len %d", v.Len())
	}
	if !v.Empty() || v.Full() {
		t.Fatalf("fresh vector: empty=%v full=%v", v.Empty(), v.Full())
	}
	if v.Cap() != 4 || v.ElemSize() != 8 {
		t.Fatalf("geometry mismatch: cap=%d elem=%d", v.Cap(), v.ElemSize())
	}
	if v.Stats().Recovered {
		t.Fatalf("fresh attach must not report recovery")
	}
}

func TestVectorZeroCapacity(t *testing.T) {
	v := newTestVector(t, 0, 8)

	if !v.Empty() || !v.Full() {
		t.Fatalf("zero-capacity vector should be both empty and full")
	}
	if v.PushBack(make([]byte, 8)) {
		t.Fatalf("push into zero-capacity vector must fail")
	}
	if v.PopBack() {
		t.Fatalf("pop from zero-capacity vector must fail")
	}
}

func TestVectorFillToCapacity(t *testing.T) {
	const (
		capacity = 5
		elemSize = 8
	)
	v := newTestVector(t, capacity, elemSize)

	for i := 0; i < capacity; i++ {
		payload := bytes.Repeat([]byte{byte('a' + i)}, elemSize)
		if !v.PushBack(payload) {
			t.Fatalf("push #%d should succeed", i)
		}
	}
	if !v.Full() {
		t.Fatalf("vector should be full after %d pushes", capacity)
	}
	if v.PushBack(bytes.Repeat([]byte{'x'}, elemSize)) {
		t.Fatalf("push into full vector must fail")
	}
	if v.Len() != capacity {
		t.Fatalf("rejected push changed len to %d", v.Len())
	}

	for i := 0; i < capacity; i++ {
		want := bytes.Repeat([]byte{byte('a' + i)}, elemSize)
		if !bytes.Equal(v.At(i), want) {
			t.Fatalf("element %d mismatch: got %q want %q", i, v.At(i), want)
		}
	}

	st := v.Stats()
	if st.Pushes != capacity || st.RejectedPushes != 1 {
		t.Fatalf("unexpected stats after fill, got %+v", st)
	}
}

func TestVectorPushPopSlotReuse(t *testing.T) {
	v := newTestVector(t, 3, 4)

	if !v.PushBack([]byte("aaaa")) || !v.PushBack([]byte("bbbb")) {
		t.Fatalf("setup pushes failed")
	}
	before := v.Len()

	if !v.PushBack([]byte("cccc")) {
		t.Fatalf("push failed")
	}
	if !v.PopBack() {
		t.Fatalf("pop failed")
	}
	if v.Len() != before {
		t.Fatalf("push+pop should restore len %d, got %d", before, v.Len())
	}

	// the vacated slot is overwritten by the next push
	if !v.PushBack([]byte("dddd")) {
		t.Fatalf("push after pop failed")
	}
	if !bytes.Equal(v.At(before), []byte("dddd")) {
		t.Fatalf("slot reuse failed: got %q", v.At(before))
	}
}

func TestVectorPopEmpty(t *testing.T) {
	v := newTestVector(t, 2, 4)

	if v.PopBack() {
		t.Fatalf("pop from empty vector must fail")
	}
	if st := v.Stats(); st.RejectedPops != 1 {
		t.Fatalf("expected rejected pop in stats, got %+v", st)
	}
}

func TestVectorAtAliasesStorage(t *testing.T) {
	v := newTestVector(t, 2, 4)
	if !v.PushBack([]byte("abcd")) {
		t.Fatalf("push failed")
	}
	// writes through the window persist
	copy(v.At(0), []byte("wxyz"))
	if !bytes.Equal(v.At(0), []byte("wxyz")) {
		t.Fatalf("in-place write not visible: got %q", v.At(0))
	}
}

func TestVectorStorageSize(t *testing.T) {
	const headerBytes = 4 + 8 // signature + size
	cases := []struct{ capacity, elemSize int }{
		{0, 1}, {1, 1}, {3, 8}, {100, 48},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("cap%d_elem%d", c.capacity, c.elemSize), func(t *testing.T) {
			got := VectorStorageSize(c.capacity, c.elemSize)
			want := headerBytes + c.capacity*c.elemSize
			if got != want {
				t.Fatalf("storage size: got %d want %d", got, want)
			}
		})
	}
}

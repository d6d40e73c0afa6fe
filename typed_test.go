package nvstore

import (
	"bytes"
	"testing"
)

func TestTypedQueueFIFO(t *testing.T) {
	codec := Uint32Codec{}
	r := NewMemoryRegion(QueueStorageSize(4, codec.Size()))

	q, err := AttachTypedQueue[uint32](r, 0, 4, codec)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}

	values := []uint32{7, 0xDEADBEEF, 42, 1 << 30}
	for _, v := range values {
		if !q.Push(v) {
			t.Fatalf("push %d failed", v)
		}
	}
	if !q.Full() || q.Push(99) {
		t.Fatalf("full typed queue must reject pushes")
	}

	for _, want := range values {
		if got := q.Front(); got != want {
			t.Fatalf("front: got %d want %d", got, want)
		}
		if !q.Pop() {
			t.Fatalf("pop %d failed", want)
		}
	}
	if !q.Empty() || q.Pop() {
		t.Fatalf("drained typed queue must reject pops")
	}
}

func TestTypedVectorSetAt(t *testing.T) {
	codec := Int64Codec{}
	r := NewMemoryRegion(VectorStorageSize(3, codec.Size()))

	v, err := AttachTypedVector[int64](r, 0, 3, codec)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}

	if !v.PushBack(-5) || !v.PushBack(123456789) {
		t.Fatalf("pushes failed")
	}
	if v.At(0) != -5 || v.At(1) != 123456789 {
		t.Fatalf("decode mismatch: %d %d", v.At(0), v.At(1))
	}

	v.Set(0, 77)
	if v.At(0) != 77 {
		t.Fatalf("set not visible: %d", v.At(0))
	}

	if !v.PopBack() || v.Len() != 1 {
		t.Fatalf("pop failed, len=%d", v.Len())
	}
}

func TestRawCodecDecodeCopies(t *testing.T) {
	codec := RawCodec{N: 4}
	r := NewMemoryRegion(QueueStorageSize(2, codec.Size()))

	q, err := AttachTypedQueue[[]byte](r, 0, 2, codec)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if !q.Push([]byte("abcd")) {
		t.Fatalf("push failed")
	}

	got := q.Front()
	got[0] = 'X' // mutating the decoded copy must not touch storage
	if !bytes.Equal(q.Front(), []byte("abcd")) {
		t.Fatalf("RawCodec.Decode must copy, storage now %q", q.Front())
	}
}

// TestTypedRestart checks that a typed queue written in one session decodes in
// the next.
func TestTypedRestart(t *testing.T) {
	codec := Uint64Codec{}
	r := NewMemoryRegion(QueueStorageSize(2, codec.Size()))

	q, err := AttachTypedQueue[uint64](r, 0, 2, codec)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	q.Push(1 << 40)
	q = nil

	q2, err := AttachTypedQueue[uint64](r, 0, 2, codec)
	if err != nil {
		t.Fatalf("reattach: %v", err)
	}
	if q2.Len() != 1 || q2.Front() != 1<<40 {
		t.Fatalf("typed state not preserved: len=%d front=%d", q2.Len(), q2.Front())
	}
}

package nvstore

import (
	"encoding/binary"
	"fmt"
)

// Vector is a fixed-capacity linear container persisted in a region window.
//
// Every element is a fixed-size byte record. All mutations apply directly to
// the backing bytes, so state survives a reattach over the same offset with
// the same geometry. A Vector is an owned handle: exactly one Vector may be
// attached to a given byte range at a time, and handles must not be copied.
type Vector struct {
	buf      []byte // full storage block window
	capacity int
	elemSize int
	stats    ContainerStats
}

// AttachVector maps a vector onto region at offset.
//
// If the block does not carry a valid signature (first use, or a corrupted or
// foreign block) the header is initialized to the empty state; otherwise the
// persisted size and contents are reused unchanged.
//
// capacity and elemSize must match the values used when the block was first
// initialized — the block itself does not record them, so a mismatch silently
// misreads the layout. Use Region.VerifyPlan for a cross-session guard.
func AttachVector(r *Region, offset int64, capacity, elemSize int) (*Vector, error) {
	if capacity < 0 || elemSize <= 0 {
		return nil, fmt.Errorf("geometri vector tidak valid: capacity %d elemSize %d", capacity, elemSize)
	}
	buf, err := r.Window(offset, int64(VectorStorageSize(capacity, elemSize)))
	if err != nil {
		return nil, fmt.Errorf("vector window: %w", err)
	}
	v := &Vector{buf: buf, capacity: capacity, elemSize: elemSize}
	if binary.LittleEndian.Uint32(buf[0:sigBytes]) != blockSignature {
		binary.LittleEndian.PutUint32(buf[0:sigBytes], blockSignature)
		v.setLen(0)
	} else {
		v.stats.Recovered = true
	}
	return v, nil
}

// Len returns the number of elements currently stored.
func (v *Vector) Len() int {
	return int(binary.LittleEndian.Uint64(v.buf[sigBytes : sigBytes+lenBytes]))
}

func (v *Vector) setLen(n int) {
	binary.LittleEndian.PutUint64(v.buf[sigBytes:sigBytes+lenBytes], uint64(n))
}

// Cap returns the capacity supplied at attach.
func (v *Vector) Cap() int { return v.capacity }

// ElemSize returns the element record size in bytes.
func (v *Vector) ElemSize() int { return v.elemSize }

// Empty reports whether the vector holds no elements.
func (v *Vector) Empty() bool { return v.Len() == 0 }

// Full reports whether the vector is at capacity.
func (v *Vector) Full() bool { return v.Len() == v.capacity }

// At returns the live record window of the element at pos.
//
// The slice aliases the backing storage: writes through it persist. pos must
// be in [0, Len()) — this is an unchecked fast path; indexing past capacity
// panics on the window bounds, and indexing a slot beyond Len but within
// capacity returns whatever stale bytes the slot holds.
func (v *Vector) At(pos int) []byte {
	off := vectorHeaderBytes + pos*v.elemSize
	return v.buf[off : off+v.elemSize : off+v.elemSize]
}

// PushBack appends value at the end of the vector.
//
// Returns false, leaving the vector unmodified, when it is already full.
// value must be exactly ElemSize bytes; shorter values leave the slot's tail
// bytes unchanged.
func (v *Vector) PushBack(value []byte) bool {
	if v.Full() {
		v.stats.RejectedPushes++
		return false
	}
	n := v.Len()
	copy(v.At(n), value)
	v.setLen(n + 1)
	v.stats.Pushes++
	return true
}

// PopBack removes the last element.
//
// Returns false when the vector is empty. The vacated slot's bytes are not
// erased; the next PushBack overwrites them.
func (v *Vector) PopBack() bool {
	if v.Empty() {
		v.stats.RejectedPops++
		return false
	}
	v.setLen(v.Len() - 1)
	v.stats.Pops++
	return true
}

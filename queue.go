package nvstore

import (
	"encoding/binary"
	"fmt"
)

// queue header field offsets inside the block
const (
	qBeginOff = sigBytes
	qEndOff   = sigBytes + ringBytes
	qLenOff   = sigBytes + ringBytes + ringBytes
)

// Queue is a fixed-capacity circular queue persisted in a region window.
//
// Logical element i (0-indexed from the front) lives at physical slot
// (begin + i) mod capacity; begin and end are always < capacity. Like Vector,
// a Queue is an owned handle over its byte range and must not be copied.
type Queue struct {
	buf      []byte
	capacity int
	elemSize int
	stats    ContainerStats
}

// AttachQueue maps a queue onto region at offset.
//
// Signature semantics match AttachVector: a fresh or foreign block gets
// begin, end and size zeroed; a recognized block is reused unchanged. The
// same capacity/elemSize contract applies across sessions.
func AttachQueue(r *Region, offset int64, capacity, elemSize int) (*Queue, error) {
	if capacity < 0 || elemSize <= 0 {
		return nil, fmt.Errorf("geometri queue tidak valid: capacity %d elemSize %d", capacity, elemSize)
	}
	buf, err := r.Window(offset, int64(QueueStorageSize(capacity, elemSize)))
	if err != nil {
		return nil, fmt.Errorf("queue window: %w", err)
	}
	q := &Queue{buf: buf, capacity: capacity, elemSize: elemSize}
	if binary.LittleEndian.Uint32(buf[0:sigBytes]) != blockSignature {
		binary.LittleEndian.PutUint32(buf[0:sigBytes], blockSignature)
		q.setBegin(0)
		q.setEnd(0)
		q.setLen(0)
	} else {
		q.stats.Recovered = true
	}
	return q, nil
}

func (q *Queue) begin() uint32 {
	return binary.LittleEndian.Uint32(q.buf[qBeginOff : qBeginOff+ringBytes])
}

func (q *Queue) setBegin(i uint32) {
	binary.LittleEndian.PutUint32(q.buf[qBeginOff:qBeginOff+ringBytes], i)
}

func (q *Queue) end() uint32 {
	return binary.LittleEndian.Uint32(q.buf[qEndOff : qEndOff+ringBytes])
}

func (q *Queue) setEnd(i uint32) {
	binary.LittleEndian.PutUint32(q.buf[qEndOff:qEndOff+ringBytes], i)
}

// Len returns the number of live elements.
func (q *Queue) Len() int {
	return int(binary.LittleEndian.Uint64(q.buf[qLenOff : qLenOff+lenBytes]))
}

func (q *Queue) setLen(n int) {
	binary.LittleEndian.PutUint64(q.buf[qLenOff:qLenOff+lenBytes], uint64(n))
}

// Cap returns the capacity supplied at attach.
func (q *Queue) Cap() int { return q.capacity }

// ElemSize returns the element record size in bytes.
func (q *Queue) ElemSize() int { return q.elemSize }

// Empty reports whether the queue holds no elements.
func (q *Queue) Empty() bool { return q.Len() == 0 }

// Full reports whether the queue is at capacity.
func (q *Queue) Full() bool { return q.Len() == q.capacity }

// slot returns the record window at physical slot i.
func (q *Queue) slot(i int) []byte {
	off := queueHeaderBytes + i*q.elemSize
	return q.buf[off : off+q.elemSize : off+q.elemSize]
}

// Front returns the live record window of the front element.
//
// The slice aliases the backing storage. Calling Front on an empty queue is a
// caller-contract violation: it returns whatever stale bytes the front slot
// holds (check Empty first). This is an unchecked fast path.
func (q *Queue) Front() []byte {
	return q.slot(int(q.begin()))
}

// Push appends value at the end of the queue.
//
// Returns false, leaving the queue unmodified, when it is already full.
// value must be exactly ElemSize bytes.
func (q *Queue) Push(value []byte) bool {
	if q.Full() {
		q.stats.RejectedPushes++
		return false
	}
	end := q.end()
	copy(q.slot(int(end)), value)
	q.setEnd(wrapInc(end, q.capacity))
	q.setLen(q.Len() + 1)
	q.stats.Pushes++
	return true
}

// Pop removes the front element.
//
// Returns false when the queue is empty. The vacated slot's bytes are not
// erased; a later Push reuses the slot after wraparound.
func (q *Queue) Pop() bool {
	if q.Empty() {
		q.stats.RejectedPops++
		return false
	}
	q.setBegin(wrapInc(q.begin(), q.capacity))
	q.setLen(q.Len() - 1)
	q.stats.Pops++
	return true
}

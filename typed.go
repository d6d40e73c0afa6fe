package nvstore

import "encoding/binary"

// Codec encodes a fixed-size element type to and from its record bytes.
// Encodings are little-endian by convention, matching the block headers, so a
// block written on one host decodes identically on another.
type Codec[T any] interface {
	// Size returns the record size in bytes; it must be constant.
	Size() int
	// Encode writes v into dst, which is exactly Size() bytes.
	Encode(dst []byte, v T)
	// Decode reads a value out of src, which is exactly Size() bytes.
	Decode(src []byte) T
}

// Stock codecs for fixed-width integers.
type (
	Uint16Codec struct{}
	Uint32Codec struct{}
	Uint64Codec struct{}
	Int64Codec  struct{}
)

func (Uint16Codec) Size() int { return 2 }

func (Uint16Codec) Encode(dst []byte, v uint16) { binary.LittleEndian.PutUint16(dst, v) }

func (Uint16Codec) Decode(src []byte) uint16 { return binary.LittleEndian.Uint16(src) }

func (Uint32Codec) Size() int { return 4 }

func (Uint32Codec) Encode(dst []byte, v uint32) { binary.LittleEndian.PutUint32(dst, v) }

func (Uint32Codec) Decode(src []byte) uint32 { return binary.LittleEndian.Uint32(src) }

func (Uint64Codec) Size() int { return 8 }

func (Uint64Codec) Encode(dst []byte, v uint64) { binary.LittleEndian.PutUint64(dst, v) }

func (Uint64Codec) Decode(src []byte) uint64 { return binary.LittleEndian.Uint64(src) }

func (Int64Codec) Size() int { return 8 }

func (Int64Codec) Encode(dst []byte, v int64) { binary.LittleEndian.PutUint64(dst, uint64(v)) }

func (Int64Codec) Decode(src []byte) int64 { return int64(binary.LittleEndian.Uint64(src)) }

// RawCodec passes fixed-size byte records through unchanged. Decode copies,
// so the returned slice does not alias the backing storage.
type RawCodec struct{ N int }

func (c RawCodec) Size() int { return c.N }

func (c RawCodec) Encode(dst []byte, v []byte) { copy(dst, v) }

func (c RawCodec) Decode(src []byte) []byte {
	out := make([]byte, c.N)
	copy(out, src)
	return out
}

// TypedQueue adapts a Queue to a concrete element type through a Codec.
// Outcomes mirror the byte-level API: mutating operations return bool.
type TypedQueue[T any] struct {
	q       *Queue
	codec   Codec[T]
	scratch []byte // reused encode buffer, keeps Push allocation-free
}

// AttachTypedQueue maps a typed queue onto region at offset; the element size
// is taken from the codec.
func AttachTypedQueue[T any](r *Region, offset int64, capacity int, codec Codec[T]) (*TypedQueue[T], error) {
	q, err := AttachQueue(r, offset, capacity, codec.Size())
	if err != nil {
		return nil, err
	}
	return &TypedQueue[T]{q: q, codec: codec, scratch: make([]byte, codec.Size())}, nil
}

func (t *TypedQueue[T]) Len() int    { return t.q.Len() }
func (t *TypedQueue[T]) Cap() int    { return t.q.Cap() }
func (t *TypedQueue[T]) Empty() bool { return t.q.Empty() }
func (t *TypedQueue[T]) Full() bool  { return t.q.Full() }

// Front decodes the front element. Same caller contract as Queue.Front:
// check Empty first.
func (t *TypedQueue[T]) Front() T { return t.codec.Decode(t.q.Front()) }

// Push appends v; returns false when full.
func (t *TypedQueue[T]) Push(v T) bool {
	t.codec.Encode(t.scratch, v)
	return t.q.Push(t.scratch)
}

// Pop removes the front element; returns false when empty.
func (t *TypedQueue[T]) Pop() bool { return t.q.Pop() }

// Stats mengambil snapshot statistik queue di baliknya.
func (t *TypedQueue[T]) Stats() ContainerStats { return t.q.Stats() }

// TypedVector adapts a Vector to a concrete element type through a Codec.
type TypedVector[T any] struct {
	v       *Vector
	codec   Codec[T]
	scratch []byte
}

// AttachTypedVector maps a typed vector onto region at offset; the element
// size is taken from the codec.
func AttachTypedVector[T any](r *Region, offset int64, capacity int, codec Codec[T]) (*TypedVector[T], error) {
	v, err := AttachVector(r, offset, capacity, codec.Size())
	if err != nil {
		return nil, err
	}
	return &TypedVector[T]{v: v, codec: codec, scratch: make([]byte, codec.Size())}, nil
}

func (t *TypedVector[T]) Len() int    { return t.v.Len() }
func (t *TypedVector[T]) Cap() int    { return t.v.Cap() }
func (t *TypedVector[T]) Empty() bool { return t.v.Empty() }
func (t *TypedVector[T]) Full() bool  { return t.v.Full() }

// At decodes the element at pos. Same caller contract as Vector.At:
// pos must be in [0, Len()).
func (t *TypedVector[T]) At(pos int) T { return t.codec.Decode(t.v.At(pos)) }

// Set overwrites the element at pos in place. Same caller contract as At.
func (t *TypedVector[T]) Set(pos int, v T) { t.codec.Encode(t.v.At(pos), v) }

// PushBack appends v; returns false when full.
func (t *TypedVector[T]) PushBack(v T) bool {
	t.codec.Encode(t.scratch, v)
	return t.v.PushBack(t.scratch)
}

// PopBack removes the last element; returns false when empty.
func (t *TypedVector[T]) PopBack() bool { return t.v.PopBack() }

// Stats mengambil snapshot statistik vector di baliknya.
func (t *TypedVector[T]) Stats() ContainerStats { return t.v.Stats() }

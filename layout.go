package nvstore

// storage block layout (little-endian), identical across hosts:
//
//	vector: [signature u32][size u64][elem_0 .. elem_{cap-1}]
//	queue:  [signature u32][begin u32][end u32][size u64][elem_0 .. elem_{cap-1}]
//
// capacity and element size are NOT persisted in the block; they must be
// supplied identically on every attach (see manifest.go for the optional
// cross-session guard).

const (
	// blockSignature marks a byte range as holding a validly initialized
	// container. The same constant is used for both container kinds; callers
	// keep track of which kind lives at which offset.
	blockSignature uint32 = 0xa2bedef9

	sigBytes  = 4
	ringBytes = 4 // begin / end ring indices
	lenBytes  = 8 // element count, fixed u64 on the wire

	vectorHeaderBytes = sigBytes + lenBytes
	queueHeaderBytes  = sigBytes + ringBytes + ringBytes + lenBytes
)

// VectorStorageSize returns the exact number of bytes a vector with the given
// geometry occupies starting at its offset, header included. There is no
// padding, so two blocks placed at offsets computed from this function never
// overlap.
func VectorStorageSize(capacity, elemSize int) int {
	return vectorHeaderBytes + capacity*elemSize
}

// QueueStorageSize returns the exact number of bytes a queue with the given
// geometry occupies starting at its offset, header included.
func QueueStorageSize(capacity, elemSize int) int {
	return queueHeaderBytes + capacity*elemSize
}

// wrapInc advances a ring index by one, wrapping to zero at capacity.
func wrapInc(idx uint32, capacity int) uint32 {
	idx++
	if idx == uint32(capacity) {
		return 0
	}
	return idx
}

// Placement records the geometry of one container inside a region. The JSON
// form is what the sidecar manifest persists.
type Placement struct {
	Kind     string `json:"kind"` // "queue" or "vector"
	Offset   int64  `json:"offset"`
	Capacity int    `json:"capacity"`
	ElemSize int    `json:"elem_size"`
}

const (
	kindQueue  = "queue"
	kindVector = "vector"
)

// Plan hands out adjacent, non-overlapping offsets for a sequence of
// containers, using the storage-size functions. Typical use:
//
//	p := nvstore.NewPlan()
//	qOff := p.Queue(128, 8)
//	vOff := p.Vector(64, 16)
//	r, _ := nvstore.OpenFileRegion(path, p.Size(), opts)
//	_ = r.VerifyPlan(p)
type Plan struct {
	placements []Placement
	next       int64
}

// NewPlan returns an empty plan starting at offset 0.
func NewPlan() *Plan { return &Plan{} }

// Queue reserves space for a queue and returns its offset.
func (p *Plan) Queue(capacity, elemSize int) int64 {
	return p.reserve(kindQueue, capacity, elemSize, QueueStorageSize(capacity, elemSize))
}

// Vector reserves space for a vector and returns its offset.
func (p *Plan) Vector(capacity, elemSize int) int64 {
	return p.reserve(kindVector, capacity, elemSize, VectorStorageSize(capacity, elemSize))
}

func (p *Plan) reserve(kind string, capacity, elemSize, storage int) int64 {
	off := p.next
	p.placements = append(p.placements, Placement{
		Kind:     kind,
		Offset:   off,
		Capacity: capacity,
		ElemSize: elemSize,
	})
	p.next += int64(storage)
	return off
}

// Size returns the total number of bytes the planned containers occupy; a
// region of at least this size holds them all.
func (p *Plan) Size() int64 { return p.next }

// Placements returns a copy of the reserved placements in reservation order.
func (p *Plan) Placements() []Placement {
	out := make([]Placement, len(p.placements))
	copy(out, p.placements)
	return out
}

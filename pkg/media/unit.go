// Package media defines the data model for compressed video handed to the
// decoder binding.
package media

// BufferDescriptor references a fragment of compressed bitstream inside a
// caller-owned byte slice. The descriptor does not own the bytes; they remain
// valid only as long as the caller keeps the backing slice alive.
type BufferDescriptor struct {
	Data   []byte
	Offset int
	Length int
}

// DecodeUnit is one compressed frame's bitstream as an ordered sequence of
// buffer fragments. It is immutable once constructed and owned by the caller
// until submitted to the renderer.
type DecodeUnit struct {
	buffers    []BufferDescriptor
	dataLength int
}

// NewDecodeUnit builds a decode unit from fragments in submission order.
// The total logical length is the sum of the fragment lengths.
func NewDecodeUnit(buffers []BufferDescriptor) *DecodeUnit {
	total := 0
	bufs := make([]BufferDescriptor, len(buffers))
	copy(bufs, buffers)
	for _, b := range bufs {
		total += b.Length
	}
	return &DecodeUnit{buffers: bufs, dataLength: total}
}

// NewSingleBufferUnit wraps one contiguous byte slice into a decode unit.
func NewSingleBufferUnit(data []byte) *DecodeUnit {
	return NewDecodeUnit([]BufferDescriptor{{Data: data, Offset: 0, Length: len(data)}})
}

// Buffers returns the fragments in submission order. The returned slice must
// not be modified.
func (u *DecodeUnit) Buffers() []BufferDescriptor {
	return u.buffers
}

// DataLength returns the total logical length of the unit in bytes.
func (u *DecodeUnit) DataLength() int {
	return u.dataLength
}

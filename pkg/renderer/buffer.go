package renderer

import "github.com/user/streamview/pkg/media"

// defaultScratchCapacity is the largest decode unit the reusable input buffer
// accepts before falling back to a one-off allocation. Typical live-stream
// units are well under this.
const defaultScratchCapacity = 92 * 1024

// inputBuffer is the reusable scratch region handed to the decoder binding.
// Submissions are sequential, so the region is never shared between two
// in-flight units.
type inputBuffer struct {
	buf      []byte
	capacity int
	padding  int
}

func newInputBuffer(capacity, padding int) *inputBuffer {
	return &inputBuffer{
		buf:      make([]byte, capacity+padding),
		capacity: capacity,
		padding:  padding,
	}
}

// pack lays the unit's fragments out contiguously from position zero and
// returns the backing slice to hand to the binding. Units within capacity
// reuse the scratch region; oversized units get a fresh allocation of exactly
// DataLength()+padding bytes.
func (b *inputBuffer) pack(unit *media.DecodeUnit) []byte {
	data := b.buf
	if unit.DataLength() > b.capacity {
		data = make([]byte, unit.DataLength()+b.padding)
	}

	offset := 0
	for _, d := range unit.Buffers() {
		offset += copy(data[offset:], d.Data[d.Offset:d.Offset+d.Length])
	}
	return data
}

package renderer

import (
	"bytes"
	"testing"

	"github.com/user/streamview/pkg/media"
)

const testPadding = 64

func fragmented(chunks ...[]byte) *media.DecodeUnit {
	backing := bytes.Join(chunks, nil)
	var descs []media.BufferDescriptor
	offset := 0
	for _, c := range chunks {
		descs = append(descs, media.BufferDescriptor{Data: backing, Offset: offset, Length: len(c)})
		offset += len(c)
	}
	return media.NewDecodeUnit(descs)
}

func TestPack_CopiesFragmentsInOrder(t *testing.T) {
	buf := newInputBuffer(64, testPadding)

	unit := fragmented([]byte{1, 2, 3}, []byte{4, 5}, []byte{6, 7, 8, 9})
	data := buf.pack(unit)

	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if !bytes.Equal(data[:unit.DataLength()], want) {
		t.Errorf("packed bytes: expected %v, got %v", want, data[:unit.DataLength()])
	}
	if len(data) != 64+testPadding {
		t.Errorf("scratch path: expected backing slice of %d bytes, got %d", 64+testPadding, len(data))
	}
}

func TestPack_ReusesScratchAcrossSubmissions(t *testing.T) {
	buf := newInputBuffer(64, testPadding)

	first := buf.pack(media.NewSingleBufferUnit([]byte{0xAA, 0xBB, 0xCC, 0xDD}))
	second := buf.pack(media.NewSingleBufferUnit([]byte{0x11, 0x22}))

	if &first[0] != &second[0] {
		t.Error("scratch path: expected both submissions to reuse the same backing region")
	}
	// Write position is reset: the second unit starts at offset zero.
	if !bytes.Equal(second[:2], []byte{0x11, 0x22}) {
		t.Errorf("second submission: expected bytes at offset zero, got %v", second[:2])
	}
}

func TestPack_OversizedUnitAllocatesExactly(t *testing.T) {
	buf := newInputBuffer(8, testPadding)

	payload := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	unit := fragmented(payload[:5], payload[5:])
	data := buf.pack(unit)

	if len(data) != unit.DataLength()+testPadding {
		t.Errorf("fallback path: expected allocation of exactly %d bytes, got %d",
			unit.DataLength()+testPadding, len(data))
	}
	if !bytes.Equal(data[:unit.DataLength()], payload) {
		t.Errorf("fallback path: expected %v, got %v", payload, data[:unit.DataLength()])
	}
	if &data[0] == &buf.buf[0] {
		t.Error("fallback path: oversized unit must not use the scratch region")
	}
}

func TestPack_CapacityBoundaryUsesScratch(t *testing.T) {
	buf := newInputBuffer(8, testPadding)

	unit := media.NewSingleBufferUnit([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	data := buf.pack(unit)

	if &data[0] != &buf.buf[0] {
		t.Error("unit of exactly scratch capacity must use the scratch path")
	}

	over := media.NewSingleBufferUnit([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	data = buf.pack(over)
	if &data[0] == &buf.buf[0] {
		t.Error("unit one byte over capacity must use the fallback path")
	}
}

func TestPack_FragmentsWithNonZeroOffsets(t *testing.T) {
	buf := newInputBuffer(64, testPadding)

	backing := []byte{0xFF, 0xFF, 1, 2, 3, 0xFF, 4, 5, 0xFF}
	unit := media.NewDecodeUnit([]media.BufferDescriptor{
		{Data: backing, Offset: 2, Length: 3},
		{Data: backing, Offset: 6, Length: 2},
	})

	data := buf.pack(unit)
	want := []byte{1, 2, 3, 4, 5}
	if !bytes.Equal(data[:unit.DataLength()], want) {
		t.Errorf("offsets honored: expected %v, got %v", want, data[:unit.DataLength()])
	}
}

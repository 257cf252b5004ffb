package mp4source

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/user/streamview/pkg/media"
)

func lengthPrefixed(nalus ...[]byte) []byte {
	var buf bytes.Buffer
	for _, n := range nalus {
		var l [4]byte
		binary.BigEndian.PutUint32(l[:], uint32(len(n)))
		buf.Write(l[:])
		buf.Write(n)
	}
	return buf.Bytes()
}

func annexB(nalus ...[]byte) []byte {
	var buf bytes.Buffer
	for _, n := range nalus {
		buf.Write([]byte{0x00, 0x00, 0x00, 0x01})
		buf.Write(n)
	}
	return buf.Bytes()
}

func flatten(u *media.DecodeUnit) []byte {
	out := make([]byte, 0, u.DataLength())
	for _, d := range u.Buffers() {
		out = append(out, d.Data[d.Offset:d.Offset+d.Length]...)
	}
	return out
}

func TestSampleToUnit_ConvertsToAnnexB(t *testing.T) {
	idr := []byte{0x65, 0x11, 0x22}
	sei := []byte{0x06, 0x01}

	unit, err := SampleToUnit(lengthPrefixed(sei, idr))
	if err != nil {
		t.Fatalf("SampleToUnit failed: %v", err)
	}

	want := annexB(sei, idr)
	if !bytes.Equal(flatten(unit), want) {
		t.Errorf("expected %v, got %v", want, flatten(unit))
	}
	if unit.DataLength() != len(want) {
		t.Errorf("DataLength: expected %d, got %d", len(want), unit.DataLength())
	}
}

func TestSampleToUnit_ReferencesSampleInPlace(t *testing.T) {
	sample := lengthPrefixed([]byte{0x65, 0xAA, 0xBB})

	unit, err := SampleToUnit(sample)
	if err != nil {
		t.Fatalf("SampleToUnit failed: %v", err)
	}

	naluFrag := unit.Buffers()[1]
	if &naluFrag.Data[0] != &sample[0] {
		t.Error("NALU fragment must reference the sample buffer, not a copy")
	}
	if naluFrag.Offset != 4 || naluFrag.Length != 3 {
		t.Errorf("NALU fragment: expected offset 4 length 3, got offset %d length %d",
			naluFrag.Offset, naluFrag.Length)
	}
}

func TestSampleToUnit_RejectsMalformedSamples(t *testing.T) {
	cases := map[string][]byte{
		"empty":            {},
		"truncated length": {0x00, 0x00},
		"length overruns":  {0x00, 0x00, 0x00, 0x05, 0x65},
		"zero length":      {0x00, 0x00, 0x00, 0x00},
	}
	for name, sample := range cases {
		if _, err := SampleToUnit(sample); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParameterSetUnit(t *testing.T) {
	sps := []byte{0x67, 0x01}
	pps := []byte{0x68, 0x02}

	unit := parameterSetUnit([][]byte{sps}, [][]byte{pps})
	if unit == nil {
		t.Fatal("expected a parameter set unit")
	}
	if !bytes.Equal(flatten(unit), annexB(sps, pps)) {
		t.Errorf("expected SPS then PPS in Annex-B framing, got %v", flatten(unit))
	}

	if unit := parameterSetUnit(nil, nil); unit != nil {
		t.Error("expected nil unit without parameter sets")
	}
}

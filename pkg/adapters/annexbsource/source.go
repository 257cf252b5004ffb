// Package annexbsource reads Annex-B framed H.264 from a file and yields one
// decode unit per access unit.
package annexbsource

import (
	"fmt"
	"io"
	"os"

	"github.com/bluenviron/mediacommon/v2/pkg/codecs/h264"

	"github.com/user/streamview/pkg/media"
	"github.com/user/streamview/pkg/ports"
)

// startCode is the long-form Annex-B prefix re-attached to every NALU as its
// own fragment.
var startCode = []byte{0x00, 0x00, 0x00, 0x01}

// Source yields decode units from an Annex-B elementary stream. The whole
// stream is NALU-split up front; NALUs are grouped so that each unit ends
// with one VCL NALU, with any parameter sets riding in the same unit ahead
// of it.
type Source struct {
	units  []*media.DecodeUnit
	next   int
	width  int
	height int
}

// Open reads and parses an Annex-B file.
func Open(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open annex-b stream: %w", err)
	}
	return New(data)
}

// New parses an Annex-B buffer into decode units. Dimensions are taken from
// the first parseable SPS; streams without one report zeros.
func New(data []byte) (*Source, error) {
	var annexB h264.AnnexB
	if err := annexB.Unmarshal(data); err != nil {
		return nil, fmt.Errorf("parse annex-b stream: %w", err)
	}

	s := &Source{}
	var pending []media.BufferDescriptor

	for _, nalu := range annexB {
		if len(nalu) == 0 {
			continue
		}
		typ := h264.NALUType(nalu[0] & 0x1F)

		if typ == h264.NALUTypeSPS && s.width == 0 {
			var sps h264.SPS
			if err := sps.Unmarshal(nalu); err == nil {
				s.width = sps.Width()
				s.height = sps.Height()
			}
		}

		pending = append(pending,
			media.BufferDescriptor{Data: startCode, Offset: 0, Length: len(startCode)},
			media.BufferDescriptor{Data: nalu, Offset: 0, Length: len(nalu)},
		)
		if isVCL(typ) {
			s.units = append(s.units, media.NewDecodeUnit(pending))
			pending = nil
		}
	}
	if len(pending) > 0 {
		s.units = append(s.units, media.NewDecodeUnit(pending))
	}
	if len(s.units) == 0 {
		return nil, fmt.Errorf("annex-b stream contains no NAL units")
	}
	return s, nil
}

// isVCL reports whether the NALU carries coded picture data.
func isVCL(t h264.NALUType) bool {
	return t >= h264.NALUTypeNonIDR && t <= h264.NALUTypeIDR
}

// NextUnit returns the next access unit, or io.EOF at end of stream.
func (s *Source) NextUnit() (*media.DecodeUnit, error) {
	if s.next >= len(s.units) {
		return nil, io.EOF
	}
	u := s.units[s.next]
	s.next++
	return u, nil
}

// Dimensions returns the geometry parsed from the SPS, or zeros.
func (s *Source) Dimensions() (int, int) {
	return s.width, s.height
}

// Close is a no-op; the stream is fully parsed at construction.
func (s *Source) Close() error {
	return nil
}

var _ ports.UnitSource = (*Source)(nil)

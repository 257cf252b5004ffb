// Package mp4source extracts H.264 decode units from fragmented MP4 files.
package mp4source

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/streamview/pkg/media"
	"github.com/user/streamview/pkg/ports"
)

var startCode = []byte{0x00, 0x00, 0x00, 0x01}

// Source yields decode units from the video track of a fragmented MP4.
// The first unit carries the SPS/PPS from the avcC sample entry so the
// decoder is configured before the first sample arrives.
type Source struct {
	units  []*media.DecodeUnit
	next   int
	width  int
	height int
}

// Open reads and parses a fragmented MP4 file.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mp4: %w", err)
	}
	defer f.Close()
	return New(f)
}

// New parses a fragmented MP4 stream into decode units.
func New(r io.ReadSeeker) (*Source, error) {
	mp4File, err := mp4.DecodeFile(r)
	if err != nil {
		return nil, fmt.Errorf("decode mp4: %w", err)
	}
	if !mp4File.IsFragmented() {
		return nil, fmt.Errorf("progressive MP4 not supported, use fragmented MP4")
	}

	s := &Source{}

	// Find the video track, its geometry, and its parameter sets.
	var videoTrackID uint32
	var trex *mp4.TrexBox
	if mp4File.Init != nil && mp4File.Init.Moov != nil {
		for _, trak := range mp4File.Init.Moov.Traks {
			if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
				continue
			}
			videoTrackID = trak.Tkhd.TrackID
			if trak.Mdia.Minf != nil && trak.Mdia.Minf.Stbl != nil && trak.Mdia.Minf.Stbl.Stsd != nil {
				if avcx := trak.Mdia.Minf.Stbl.Stsd.AvcX; avcx != nil {
					s.width = int(avcx.Width)
					s.height = int(avcx.Height)
					if avcx.AvcC != nil {
						if unit := parameterSetUnit(avcx.AvcC.SPSnalus, avcx.AvcC.PPSnalus); unit != nil {
							s.units = append(s.units, unit)
						}
					}
				}
			}
			break
		}
		if mp4File.Init.Moov.Mvex != nil {
			for _, t := range mp4File.Init.Moov.Mvex.Trexs {
				if t.TrackID == videoTrackID {
					trex = t
					break
				}
			}
		}
	}
	if videoTrackID == 0 {
		return nil, fmt.Errorf("no video track found")
	}

	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd.TrackID != videoTrackID {
					continue
				}
				samples, err := frag.GetFullSamples(trex)
				if err != nil {
					return nil, fmt.Errorf("get samples: %w", err)
				}
				for _, sample := range samples {
					unit, err := SampleToUnit(sample.Data)
					if err != nil {
						return nil, fmt.Errorf("sample to decode unit: %w", err)
					}
					s.units = append(s.units, unit)
				}
			}
		}
	}

	if len(s.units) == 0 {
		return nil, fmt.Errorf("no video samples found")
	}
	return s, nil
}

// parameterSetUnit builds one decode unit carrying all SPS and PPS NALUs in
// Annex-B framing. Returns nil when there are none.
func parameterSetUnit(spsNALUs, ppsNALUs [][]byte) *media.DecodeUnit {
	var bufs []media.BufferDescriptor
	for _, nalu := range append(append([][]byte{}, spsNALUs...), ppsNALUs...) {
		if len(nalu) == 0 {
			continue
		}
		bufs = append(bufs,
			media.BufferDescriptor{Data: startCode, Offset: 0, Length: len(startCode)},
			media.BufferDescriptor{Data: nalu, Offset: 0, Length: len(nalu)},
		)
	}
	if len(bufs) == 0 {
		return nil
	}
	return media.NewDecodeUnit(bufs)
}

// SampleToUnit converts one AVCC length-prefixed sample into a decode unit
// of alternating start-code and NALU fragments. NALU bytes are referenced in
// place, not copied; the fragments index into the sample buffer at their
// original offsets.
func SampleToUnit(sample []byte) (*media.DecodeUnit, error) {
	var bufs []media.BufferDescriptor
	for off := 0; off < len(sample); {
		if off+4 > len(sample) {
			return nil, fmt.Errorf("truncated NALU length at offset %d", off)
		}
		n := int(binary.BigEndian.Uint32(sample[off:]))
		off += 4
		if n <= 0 || off+n > len(sample) {
			return nil, fmt.Errorf("NALU length %d out of range at offset %d", n, off)
		}
		bufs = append(bufs,
			media.BufferDescriptor{Data: startCode, Offset: 0, Length: len(startCode)},
			media.BufferDescriptor{Data: sample, Offset: off, Length: n},
		)
		off += n
	}
	if len(bufs) == 0 {
		return nil, fmt.Errorf("empty sample")
	}
	return media.NewDecodeUnit(bufs), nil
}

// NextUnit returns the next decode unit, or io.EOF at end of stream.
func (s *Source) NextUnit() (*media.DecodeUnit, error) {
	if s.next >= len(s.units) {
		return nil, io.EOF
	}
	u := s.units[s.next]
	s.next++
	return u, nil
}

// Dimensions returns the geometry from the avc1 sample entry.
func (s *Source) Dimensions() (int, int) {
	return s.width, s.height
}

// Close is a no-op; the file is fully parsed at construction.
func (s *Source) Close() error {
	return nil
}

var _ ports.UnitSource = (*Source)(nil)

package mocks

import (
	"io"

	"github.com/user/streamview/pkg/media"
	"github.com/user/streamview/pkg/ports"
)

// UnitSource is a mock implementation of ports.UnitSource that yields a
// fixed list of decode units.
type UnitSource struct {
	Units  []*media.DecodeUnit
	Width  int
	Height int

	next        int
	CloseCalled bool
}

func (m *UnitSource) NextUnit() (*media.DecodeUnit, error) {
	if m.next >= len(m.Units) {
		return nil, io.EOF
	}
	u := m.Units[m.next]
	m.next++
	return u, nil
}

func (m *UnitSource) Dimensions() (int, int) {
	return m.Width, m.Height
}

func (m *UnitSource) Close() error {
	m.CloseCalled = true
	return nil
}

var _ ports.UnitSource = (*UnitSource)(nil)

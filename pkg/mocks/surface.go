package mocks

import (
	"image"
	"sync"

	"github.com/user/streamview/pkg/ports"
)

// Surface is a mock implementation of ports.Surface.
// Safe for concurrent use by the presentation goroutine and the test.
type Surface struct {
	SizeFunc func() (int, int)
	BlitFunc func(src image.Image, dst image.Rectangle)

	mu    sync.Mutex
	blits []BlitCall
}

// BlitCall records one call to Blit.
type BlitCall struct {
	SrcBounds image.Rectangle
	Dst       image.Rectangle
}

func (m *Surface) Size() (int, int) {
	if m.SizeFunc != nil {
		return m.SizeFunc()
	}
	return 640, 480
}

func (m *Surface) Blit(src image.Image, dst image.Rectangle) {
	m.mu.Lock()
	m.blits = append(m.blits, BlitCall{SrcBounds: src.Bounds(), Dst: dst})
	m.mu.Unlock()

	if m.BlitFunc != nil {
		m.BlitFunc(src, dst)
	}
}

// BlitCalls returns a copy of the recorded Blit calls.
func (m *Surface) BlitCalls() []BlitCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]BlitCall(nil), m.blits...)
}

var _ ports.Surface = (*Surface)(nil)

//go:build !cgo

package avcdecoder

import "github.com/user/streamview/pkg/ports"

// stubDecoder stands in when the binary was built without cgo. Every
// initialization fails, making the missing codec a construction-time error.
type stubDecoder struct{}

func newPlatformDecoder() platformDecoder {
	return &stubDecoder{}
}

func (d *stubDecoder) init(width, height int, flags ports.InitFlags, threadCount int) error {
	return ErrPlatformNotSupported
}

func (d *stubDecoder) decode(data []byte, offset, length int) error {
	return ErrPlatformNotSupported
}

func (d *stubDecoder) readFrameInto(dst []byte) bool {
	return false
}

func (d *stubDecoder) inputPadding() int {
	return fallbackInputPadding
}

func (d *stubDecoder) destroy() {}

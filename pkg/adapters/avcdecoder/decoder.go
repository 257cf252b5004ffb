// Package avcdecoder binds the ffmpeg H.264 software decoder behind the
// ports.StreamDecoder contract. Builds with cgo link libavcodec and
// libswscale directly; builds without cgo get a stub that fails
// initialization.
package avcdecoder

import (
	"errors"

	"github.com/user/streamview/pkg/ports"
)

var (
	// ErrNotInitialized is returned when decoder methods are called before
	// a successful Init.
	ErrNotInitialized = errors.New("avcdecoder: decoder not initialized")

	// ErrDecodeFailed is returned when the codec rejects a unit.
	ErrDecodeFailed = errors.New("avcdecoder: decode failed")

	// ErrPlatformNotSupported is returned when the binary was built without
	// cgo and no decoder is available.
	ErrPlatformNotSupported = errors.New("avcdecoder: built without cgo, no decoder available")
)

// fallbackInputPadding mirrors AV_INPUT_BUFFER_PADDING_SIZE for use before
// initialization and in the stub.
const fallbackInputPadding = 64

// Decoder implements ports.StreamDecoder on top of a build-selected platform
// implementation.
type Decoder struct {
	impl platformDecoder
}

// platformDecoder is implemented by the cgo and stub variants.
type platformDecoder interface {
	init(width, height int, flags ports.InitFlags, threadCount int) error
	decode(data []byte, offset, length int) error
	readFrameInto(dst []byte) bool
	inputPadding() int
	destroy()
}

// New creates an uninitialized decoder.
func New() *Decoder {
	return &Decoder{}
}

// Init opens the H.264 codec for the given stream geometry.
func (d *Decoder) Init(width, height int, flags ports.InitFlags, threadCount int) error {
	impl := newPlatformDecoder()
	if err := impl.init(width, height, flags, threadCount); err != nil {
		return err
	}
	d.impl = impl
	return nil
}

// Decode feeds one packed decode unit to the codec.
func (d *Decoder) Decode(data []byte, offset, length int) error {
	if d.impl == nil {
		return ErrNotInitialized
	}
	return d.impl.decode(data, offset, length)
}

// ReadFrameInto copies the most recent decoded frame as RGBA into dst.
func (d *Decoder) ReadFrameInto(dst []byte) bool {
	if d.impl == nil {
		return false
	}
	return d.impl.readFrameInto(dst)
}

// InputPadding returns the padding the codec requires after input buffers.
func (d *Decoder) InputPadding() int {
	if d.impl == nil {
		return fallbackInputPadding
	}
	return d.impl.inputPadding()
}

// Destroy releases codec resources. Safe to call more than once.
func (d *Decoder) Destroy() {
	if d.impl != nil {
		d.impl.destroy()
		d.impl = nil
	}
}

var _ ports.StreamDecoder = (*Decoder)(nil)

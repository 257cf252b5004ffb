//go:build cgo

package avcdecoder

/*
#cgo pkg-config: libavcodec libavutil libswscale

#include <errno.h>
#include <libavcodec/avcodec.h>
#include <libavutil/imgutils.h>
#include <libswscale/swscale.h>

// cgo cannot evaluate ffmpeg's error macros.
static const int avErrEAGAIN = AVERROR(EAGAIN);
static const int avErrEOF = AVERROR_EOF;
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/user/streamview/pkg/ports"
)

// ffmpegDecoder drives libavcodec's software H.264 decoder and converts its
// output to RGBA with libswscale.
//
// The mutex is what gives ReadFrameInto its cross-thread guarantee: decode
// runs on the submission thread while the presentation goroutine reads the
// latest frame, and the rgba store is the only state they share.
type ffmpegDecoder struct {
	codecCtx *C.AVCodecContext
	frame    *C.AVFrame
	packet   *C.AVPacket
	swsCtx   *C.struct_SwsContext

	width  int
	height int

	mu      sync.Mutex
	rgba    []byte
	haveNew bool
}

func newPlatformDecoder() platformDecoder {
	return &ffmpegDecoder{}
}

func (d *ffmpegDecoder) init(width, height int, flags ports.InitFlags, threadCount int) error {
	codec := C.avcodec_find_decoder(C.AV_CODEC_ID_H264)
	if codec == nil {
		return fmt.Errorf("avcdecoder: no H.264 decoder in libavcodec")
	}

	d.codecCtx = C.avcodec_alloc_context3(codec)
	if d.codecCtx == nil {
		return fmt.Errorf("avcdecoder: allocate codec context")
	}
	d.codecCtx.thread_count = C.int(threadCount)
	if flags&ports.LowLatency != 0 {
		d.codecCtx.flags |= C.AV_CODEC_FLAG_LOW_DELAY
	}

	if ret := C.avcodec_open2(d.codecCtx, codec, nil); ret < 0 {
		d.destroy()
		return fmt.Errorf("avcdecoder: open codec: error %d", int(ret))
	}

	d.frame = C.av_frame_alloc()
	d.packet = C.av_packet_alloc()
	if d.frame == nil || d.packet == nil {
		d.destroy()
		return fmt.Errorf("avcdecoder: allocate frame and packet")
	}

	d.width = width
	d.height = height
	d.rgba = make([]byte, width*height*4)
	return nil
}

func (d *ffmpegDecoder) decode(data []byte, offset, length int) error {
	if length <= 0 || offset < 0 || offset+length > len(data) {
		return ErrDecodeFailed
	}

	d.packet.data = (*C.uint8_t)(unsafe.Pointer(&data[offset]))
	d.packet.size = C.int(length)

	if ret := C.avcodec_send_packet(d.codecCtx, d.packet); ret < 0 {
		return fmt.Errorf("%w: send_packet error %d", ErrDecodeFailed, int(ret))
	}

	// Drain every frame this packet produced; the store keeps the newest.
	for {
		ret := C.avcodec_receive_frame(d.codecCtx, d.frame)
		if ret == C.avErrEAGAIN || ret == C.avErrEOF {
			return nil
		}
		if ret < 0 {
			return fmt.Errorf("%w: receive_frame error %d", ErrDecodeFailed, int(ret))
		}
		d.storeFrame()
	}
}

// storeFrame converts the current AVFrame to RGBA at the session geometry
// and publishes it to the frame store.
func (d *ffmpegDecoder) storeFrame() {
	d.swsCtx = C.sws_getCachedContext(d.swsCtx,
		d.frame.width, d.frame.height, C.enum_AVPixelFormat(d.frame.format),
		C.int(d.width), C.int(d.height), C.AV_PIX_FMT_RGBA,
		C.SWS_FAST_BILINEAR, nil, nil, nil)
	if d.swsCtx == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	dstData := (*C.uint8_t)(unsafe.Pointer(&d.rgba[0]))
	dstStride := C.int(d.width * 4)
	C.sws_scale(d.swsCtx,
		&d.frame.data[0], &d.frame.linesize[0], 0, d.frame.height,
		&dstData, &dstStride)
	d.haveNew = true
}

func (d *ffmpegDecoder) readFrameInto(dst []byte) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.haveNew || len(dst) < len(d.rgba) {
		return false
	}
	copy(dst, d.rgba)
	d.haveNew = false
	return true
}

func (d *ffmpegDecoder) inputPadding() int {
	return C.AV_INPUT_BUFFER_PADDING_SIZE
}

func (d *ffmpegDecoder) destroy() {
	if d.swsCtx != nil {
		C.sws_freeContext(d.swsCtx)
		d.swsCtx = nil
	}
	if d.packet != nil {
		C.av_packet_free(&d.packet)
	}
	if d.frame != nil {
		C.av_frame_free(&d.frame)
	}
	if d.codecCtx != nil {
		C.avcodec_free_context(&d.codecCtx)
	}
}

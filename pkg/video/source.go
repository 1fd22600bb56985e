package video

import (
	"errors"
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"
)

var (
	// ErrNotFound indicates the source path does not exist
	ErrNotFound = errors.New("video file not found")

	// ErrUnreadable indicates the container could not be opened or demuxed
	ErrUnreadable = errors.New("cannot open video file")

	// ErrEndOfStream indicates no further frame is decodable at the current
	// position (past the last frame, corrupt tail, or decoder exhaustion)
	ErrEndOfStream = errors.New("end of stream")
)

// Source wraps an opened video file and exposes seek-by-frame-index and
// sequential decoding. A Source is owned by a single extraction call; it is
// not safe for concurrent use.
type Source struct {
	path   string
	cap    *gocv.VideoCapture
	mat    gocv.Mat
	meta   Metadata
	closed bool
}

// Open opens a video file and reads its metadata.
func Open(path string) (*Source, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnreadable, path)
	}

	frameCount := int64(capture.Get(gocv.VideoCaptureFrameCount))
	fps := capture.Get(gocv.VideoCaptureFPS)

	return &Source{
		path: path,
		cap:  capture,
		mat:  gocv.NewMat(),
		meta: Metadata{
			Width:      int(capture.Get(gocv.VideoCaptureFrameWidth)),
			Height:     int(capture.Get(gocv.VideoCaptureFrameHeight)),
			FPS:        fps,
			FrameCount: frameCount,
			Duration:   durationOf(frameCount, fps),
		},
	}, nil
}

// Path returns the source file path.
func (s *Source) Path() string {
	return s.path
}

// Metadata returns the properties read at open time.
func (s *Source) Metadata() Metadata {
	return s.meta
}

// Seek positions the decoder at the given frame index. Out-of-range indices
// are not an error here; the next DecodeNext reports ErrEndOfStream instead.
func (s *Source) Seek(frameIndex int64) {
	s.cap.Set(gocv.VideoCapturePosFrames, float64(frameIndex))
}

// DecodeNext decodes the frame at the current position and advances.
func (s *Source) DecodeNext() (image.Image, error) {
	if s.closed {
		return nil, ErrEndOfStream
	}
	if ok := s.cap.Read(&s.mat); !ok || s.mat.Empty() {
		return nil, ErrEndOfStream
	}

	img, err := s.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}
	return img, nil
}

// Close releases the decoder handle and the scratch frame buffer. Safe to
// call more than once.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.mat.Close()
	return s.cap.Close()
}

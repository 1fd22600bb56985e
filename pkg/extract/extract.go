package extract

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/video-system/go-frame-extract/pkg/encode"
	"github.com/video-system/go-frame-extract/pkg/video"
)

// Source is the decoding capability the driver needs from an opened video.
// *video.Source satisfies it; tests substitute a stub.
type Source interface {
	Metadata() video.Metadata
	Seek(frameIndex int64)
	DecodeNext() (image.Image, error)
	Close() error
}

// Frame records one successfully written output image.
type Frame struct {
	OutputIndex int
	FrameIndex  int64
	Path        string
}

// Options configures a single extraction run.
type Options struct {
	OutputDir string
	Encoder   encode.Encoder
	Quality   int // JPEG quality, 0 means encoder default

	// OnFrame, when set, is called after each frame is written. Purely
	// observational; the driver works identically without it.
	OnFrame func(Frame)

	Logger *zap.Logger
}

// Run drives a plan against a source: seek, decode, encode, write, in order.
// A stream that ends before the plan does yields a shorter result, not an
// error; a single-frame timestamp plan has no partial result and fails with
// ErrNoFrameAtTimestamp instead. Decode errors are treated like end of
// stream: a corrupt frame in VFR footage means the rest of the stream is not
// to be trusted, so the driver stops rather than skipping past it.
//
// The caller keeps ownership of src and closes it; Run holds at most one
// decoded frame in memory at a time.
func Run(ctx context.Context, src Source, plan Plan, opts Options) ([]Frame, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var written []Frame
	for _, entry := range plan.Entries {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		src.Seek(entry.FrameIndex)
		img, err := src.DecodeNext()
		if err != nil {
			if plan.Single() {
				return nil, fmt.Errorf("%w: %q", ErrNoFrameAtTimestamp, plan.Label)
			}
			if !errors.Is(err, video.ErrEndOfStream) {
				log.Warn("decode failed, stopping early",
					zap.Int64("frame_index", entry.FrameIndex),
					zap.Error(err))
			}
			break
		}

		name := FrameName(entry.OutputIndex, plan.PadTotal, opts.Encoder.Extension())
		if plan.Single() {
			name = TimestampName(plan.Label, opts.Encoder.Extension())
		}
		path := filepath.Join(opts.OutputDir, name)

		if err := writeFrame(path, img, opts); err != nil {
			return written, err
		}

		frame := Frame{
			OutputIndex: entry.OutputIndex,
			FrameIndex:  entry.FrameIndex,
			Path:        path,
		}
		written = append(written, frame)
		if opts.OnFrame != nil {
			opts.OnFrame(frame)
		}
	}

	log.Debug("extraction finished",
		zap.Int("planned", len(plan.Entries)),
		zap.Int("written", len(written)))

	return written, nil
}

func writeFrame(path string, img image.Image, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}

	if err := opts.Encoder.Encode(f, img, encode.Options{Quality: opts.Quality}); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, path, err)
	}
	return nil
}

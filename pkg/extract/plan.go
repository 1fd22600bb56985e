package extract

import (
	"fmt"
	"strconv"

	"github.com/video-system/go-frame-extract/pkg/video"
)

// intervalPadTotal fixes the padding width for interval-mode names. The plan
// length is not known until decoding finishes, so the width cannot be derived
// from it; three digits covers any realistic batch.
const intervalPadTotal = 999

// Entry maps one output image to the frame index it is decoded from.
type Entry struct {
	OutputIndex int   // 1-based, drives the output filename
	FrameIndex  int64 // 0-based position in the stream
}

// Plan is the ordered list of frame indices an extraction pass intends to
// decode. Frame indices are monotonically non-decreasing. A plan may name
// more frames than the stream can actually deliver; the driver truncates on
// the first end-of-stream.
type Plan struct {
	Entries  []Entry
	PadTotal int    // width source for numbered output names
	Label    string // literal timestamp text, set only for single-frame plans
}

// Single reports whether this is a single-frame timestamp plan, where an
// early end of stream is a hard failure instead of a short result.
func (p Plan) Single() bool {
	return p.Label != ""
}

// Mode is one of the three frame selection strategies. Exactly one mode
// backs an extraction request.
type Mode interface {
	Plan(meta video.Metadata) (Plan, error)
}

// Interval selects a frame every Seconds seconds.
type Interval struct {
	Seconds float64
}

// Count selects exactly N evenly spaced frames.
type Count struct {
	N int
}

// Timestamp selects the single frame nearest to a point in time. Label holds
// the user's literal input for the output filename.
type Timestamp struct {
	Seconds float64
	Label   string
}

// Plan computes interval-mode frame indices. The step is derived from the
// actual frame count combined with a duration estimate, never from fps alone:
// variable-frame-rate sources report an average fps that does not match real
// frame spacing, and a step computed as fps*interval can collapse to 1 and
// extract every single frame.
func (m Interval) Plan(meta video.Metadata) (Plan, error) {
	return PlanInterval(meta.FrameCount, meta.Duration, m.Seconds)
}

// Plan computes count-mode frame indices.
func (m Count) Plan(meta video.Metadata) (Plan, error) {
	return PlanCount(meta.FrameCount, m.N)
}

// Plan computes the single timestamp-mode frame index.
func (m Timestamp) Plan(meta video.Metadata) (Plan, error) {
	return PlanTimestamp(meta.FPS, m.Seconds, m.Label), nil
}

// PlanInterval plans one frame every intervalSeconds across the stream.
func PlanInterval(frameCount int64, duration, intervalSeconds float64) (Plan, error) {
	if intervalSeconds <= 0 {
		return Plan{}, fmt.Errorf("%w: interval must be positive, got %g", ErrInvalidArgument, intervalSeconds)
	}

	estimated := int64(duration / intervalSeconds)
	if estimated < 1 {
		estimated = 1
	}

	step := frameCount / estimated
	if step < 1 {
		step = 1
	}

	var entries []Entry
	out := 1
	for pos := int64(0); pos < frameCount; pos += step {
		entries = append(entries, Entry{OutputIndex: out, FrameIndex: pos})
		out++
	}

	return Plan{Entries: entries, PadTotal: intervalPadTotal}, nil
}

// PlanCount plans exactly count evenly spaced frames. When count exceeds the
// frame count, trailing entries clamp to the final frame and the driver will
// write duplicate-content images under distinct names; that is deliberate,
// the caller asked for count files.
func PlanCount(frameCount int64, count int) (Plan, error) {
	if count < 1 {
		return Plan{}, fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidArgument, count)
	}

	step := frameCount / int64(count)
	if step < 1 {
		step = 1
	}

	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		pos := int64(i) * step
		if pos > frameCount-1 {
			pos = frameCount - 1
		}
		entries = append(entries, Entry{OutputIndex: i + 1, FrameIndex: pos})
	}

	return Plan{Entries: entries, PadTotal: count}, nil
}

// PlanTimestamp plans the single frame at targetSeconds. fps is acceptable
// here despite its unreliability on VFR sources: the decoder's seek lands on
// the nearest available frame either way. An index past the end of the
// stream is not validated here; the driver's decode surfaces it.
func PlanTimestamp(fps, targetSeconds float64, label string) Plan {
	if label == "" {
		label = strconv.FormatFloat(targetSeconds, 'f', -1, 64)
	}
	return Plan{
		Entries:  []Entry{{OutputIndex: 1, FrameIndex: int64(targetSeconds * fps)}},
		PadTotal: 1,
		Label:    label,
	}
}

package video

import "fmt"

// Metadata holds the properties of an opened video, read once at open time.
type Metadata struct {
	Width      int
	Height     int
	FPS        float64
	FrameCount int64
	Duration   float64 // seconds, 0 when fps is unknown
}

// Resolution returns a resolution string like "1920x1080"
func (m Metadata) Resolution() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// durationOf derives duration from frame count and fps. Reported fps can be
// zero or a misleading average on variable-frame-rate sources, so the result
// is an estimate, never an authority for frame spacing.
func durationOf(frameCount int64, fps float64) float64 {
	if fps <= 0 {
		return 0
	}
	return float64(frameCount) / fps
}

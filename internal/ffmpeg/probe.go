package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/video-system/go-frame-extract/pkg/video"
)

// ProbeResult holds raw ffprobe output
type ProbeResult struct {
	Format  ProbeFormat   `json:"format"`
	Streams []ProbeStream `json:"streams"`
}

// ProbeFormat holds format-level information
type ProbeFormat struct {
	Filename   string `json:"filename"`
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
}

// ProbeStream holds stream-level information
type ProbeStream struct {
	Index        int    `json:"index"`
	CodecName    string `json:"codec_name"`
	CodecType    string `json:"codec_type"` // video, audio
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	FrameRate    string `json:"r_frame_rate,omitempty"`
	AvgFrameRate string `json:"avg_frame_rate,omitempty"`
	NbFrames     string `json:"nb_frames,omitempty"`
	Duration     string `json:"duration,omitempty"`
}

// Probe analyzes a video file and returns raw metadata
func (p *Prober) Probe(ctx context.Context, path string) (*ProbeResult, error) {
	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	}

	cmd := exec.CommandContext(ctx, p.probePath, args...)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	var result ProbeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}

	return &result, nil
}

// VideoInfo probes a file and reduces the first video stream to the same
// metadata shape the decoder reports, so callers can swap one for the other.
func (p *Prober) VideoInfo(ctx context.Context, path string) (video.Metadata, error) {
	probe, err := p.Probe(ctx, path)
	if err != nil {
		return video.Metadata{}, err
	}

	var meta video.Metadata

	// Find video stream
	for _, stream := range probe.Streams {
		if stream.CodecType != "video" {
			continue
		}
		meta.Width = stream.Width
		meta.Height = stream.Height

		// Parse framerate (format: "30/1" or "30000/1001")
		if stream.AvgFrameRate != "" {
			meta.FPS = parseFramerate(stream.AvgFrameRate)
		} else if stream.FrameRate != "" {
			meta.FPS = parseFramerate(stream.FrameRate)
		}

		if stream.NbFrames != "" {
			meta.FrameCount, _ = strconv.ParseInt(stream.NbFrames, 10, 64)
		}
		break
	}

	// Duration from format, falling back to the stream
	if probe.Format.Duration != "" {
		meta.Duration, _ = strconv.ParseFloat(probe.Format.Duration, 64)
	}

	// Some containers do not carry nb_frames; estimate from duration
	if meta.FrameCount == 0 && meta.FPS > 0 {
		meta.FrameCount = int64(meta.Duration * meta.FPS)
	}

	return meta, nil
}

// parseFramerate parses a framerate string like "30/1" or "30000/1001"
func parseFramerate(s string) float64 {
	var num, den int
	if n, _ := fmt.Sscanf(s, "%d/%d", &num, &den); n == 2 && den != 0 {
		return float64(num) / float64(den)
	}
	// Try parsing as plain number
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return 0
}

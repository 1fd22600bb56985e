package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Prober wraps ffprobe binary execution. It is the secondary metadata
// source, used when the decoder's own reporting is unusable.
type Prober struct {
	probePath string
}

// NewProber locates ffprobe and returns a wrapper around it
func NewProber() (*Prober, error) {
	path, err := findBinary("ffprobe")
	if err != nil {
		return nil, fmt.Errorf("ffprobe not found: %w", err)
	}
	return &Prober{probePath: path}, nil
}

// findBinary locates a binary in PATH or common locations
func findBinary(name string) (string, error) {
	// Try PATH first
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	// Common locations by OS
	var paths []string
	switch runtime.GOOS {
	case "darwin":
		paths = []string{
			"/opt/homebrew/bin/" + name,
			"/usr/local/bin/" + name,
		}
	case "linux":
		paths = []string{
			"/usr/bin/" + name,
			"/usr/local/bin/" + name,
		}
	case "windows":
		paths = []string{
			"C:\\ffmpeg\\bin\\" + name + ".exe",
			"C:\\Program Files\\ffmpeg\\bin\\" + name + ".exe",
		}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%s not found in PATH or common locations", name)
}

// Version returns the ffprobe version string
func (p *Prober) Version(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, p.probePath, "-version")
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	lines := strings.Split(string(output), "\n")
	if len(lines) > 0 {
		return strings.TrimSpace(lines[0]), nil
	}
	return "", fmt.Errorf("no version output")
}

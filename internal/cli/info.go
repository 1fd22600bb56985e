package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/video-system/go-frame-extract/internal/ffmpeg"
	"github.com/video-system/go-frame-extract/pkg/video"
)

var flagForceProbe bool

var infoCmd = &cobra.Command{
	Use:   "info video...",
	Short: "Show video metadata",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&flagForceProbe, "probe", false, "Read metadata with ffprobe instead of the decoder")
}

func runInfo(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		meta, err := readMetadata(cmd, path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: %v\n", path, err)
			failed++
			continue
		}

		fmt.Printf("%s\n", filepath.Base(path))
		fmt.Printf("  Resolution:   %s\n", meta.Resolution())
		fmt.Printf("  FPS:          %.2f\n", meta.FPS)
		fmt.Printf("  Duration:     %.2fs\n", meta.Duration)
		fmt.Printf("  Total frames: %d\n", meta.FrameCount)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d videos could not be read", failed, len(args))
	}
	return nil
}

func readMetadata(cmd *cobra.Command, path string) (video.Metadata, error) {
	if flagForceProbe {
		prober, err := ffmpeg.NewProber()
		if err != nil {
			return video.Metadata{}, err
		}
		return prober.VideoInfo(cmd.Context(), path)
	}

	src, err := video.Open(path)
	if err != nil {
		return video.Metadata{}, err
	}
	defer src.Close()

	return sourceMetadata(cmd.Context(), src, true), nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/video-system/go-frame-extract/internal/ffmpeg"
	"github.com/video-system/go-frame-extract/pkg/encode"
	"github.com/video-system/go-frame-extract/pkg/extract"
	"github.com/video-system/go-frame-extract/pkg/video"
)

var (
	flagInterval  float64
	flagCount     int
	flagTimestamp string
	flagOutput    string
	flagFormat    string
	flagQuality   int
	flagConfig    string
)

var extractCmd = &cobra.Command{
	Use:   "extract [flags] video...",
	Short: "Extract frames from one or more videos",
	Long: `Extract frames from video files. Exactly one selection mode is required:

  --interval   extract a frame every N seconds
  --count      extract exactly N evenly distributed frames
  --timestamp  extract a single frame at HH:MM:SS, MM:SS, or seconds

With more than one input video, each video's frames are written to a
subdirectory of the output directory named after the video file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().Float64VarP(&flagInterval, "interval", "i", 0, "Extract a frame every N seconds")
	extractCmd.Flags().IntVarP(&flagCount, "count", "c", 0, "Extract exactly N frames, evenly distributed")
	extractCmd.Flags().StringVarP(&flagTimestamp, "timestamp", "t", "", "Extract a single frame at a timestamp")
	extractCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output directory (default \"output\")")
	extractCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output image format: jpg, png (default \"jpg\")")
	extractCmd.Flags().IntVar(&flagQuality, "quality", 0, "JPEG quality 1-100 (default 95)")
	extractCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config file")

	extractCmd.MarkFlagsMutuallyExclusive("interval", "count", "timestamp")
	extractCmd.MarkFlagsOneRequired("interval", "count", "timestamp")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outDir := cfg.Output.Dir
	if cmd.Flags().Changed("output") {
		outDir = flagOutput
	}
	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format = strings.ToLower(flagFormat)
	}
	quality := cfg.Output.JPEGQuality
	if cmd.Flags().Changed("quality") {
		quality = flagQuality
	}

	enc, err := encode.Get(format)
	if err != nil {
		return fmt.Errorf("%v (supported: %s)", err, strings.Join(encode.Formats(), ", "))
	}

	mode, err := selectMode(cmd)
	if err != nil {
		return err
	}

	// Reject the whole run up front when any input is missing
	var missing []string
	for _, path := range args {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("video files not found: %s", strings.Join(missing, ", "))
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	failed := 0
	for i, path := range args {
		if err := processVideo(cmd.Context(), path, i+1, len(args), mode, videoOptions{
			outDir:  outDir,
			batch:   len(args) > 1,
			encoder: enc,
			quality: quality,
			probe:   cfg.Probe.FallbackEnabled(),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			failed++
		}
	}

	switch {
	case failed == 0:
		fmt.Println("All videos processed successfully")
		return nil
	case failed == len(args):
		return fmt.Errorf("all %d videos failed to process", failed)
	default:
		return fmt.Errorf("%d of %d videos failed to process", failed, len(args))
	}
}

// selectMode builds the single active extraction mode from the flag set.
// Cobra already enforced that exactly one of the three flags is present.
func selectMode(cmd *cobra.Command) (extract.Mode, error) {
	switch {
	case cmd.Flags().Changed("timestamp"):
		seconds, err := extract.ParseTimestamp(flagTimestamp)
		if err != nil {
			return nil, err
		}
		return extract.Timestamp{Seconds: seconds, Label: flagTimestamp}, nil
	case cmd.Flags().Changed("count"):
		return extract.Count{N: flagCount}, nil
	default:
		return extract.Interval{Seconds: flagInterval}, nil
	}
}

type videoOptions struct {
	outDir  string
	batch   bool
	encoder encode.Encoder
	quality int
	probe   bool
}

func processVideo(ctx context.Context, path string, index, total int, mode extract.Mode, opts videoOptions) error {
	// Batch runs get a per-video subdirectory named after the video file
	dir := opts.outDir
	if opts.batch {
		dir = filepath.Join(opts.outDir, stem(path))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	src, err := video.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	meta := sourceMetadata(ctx, src, opts.probe)

	plan, err := mode.Plan(meta)
	if err != nil {
		return err
	}

	fmt.Printf("[%d/%d] %s: %d frames planned\n", index, total, filepath.Base(path), len(plan.Entries))

	frames, err := extract.Run(ctx, src, plan, extract.Options{
		OutputDir: dir,
		Encoder:   opts.encoder,
		Quality:   opts.quality,
		Logger:    log,
		OnFrame: func(f extract.Frame) {
			fmt.Printf("\r  %d/%d %s", f.OutputIndex, len(plan.Entries), filepath.Base(f.Path))
		},
	})
	if len(frames) > 0 {
		fmt.Println()
	}
	if err != nil {
		return err
	}

	fmt.Printf("  Saved %d frames to %s\n", len(frames), dir)
	return nil
}

// sourceMetadata returns the decoder's metadata, patched via ffprobe when the
// decoder reports nothing usable. Broken or exotic containers sometimes open
// fine but report zero fps or frame count.
func sourceMetadata(ctx context.Context, src *video.Source, probeFallback bool) video.Metadata {
	meta := src.Metadata()
	if !probeFallback || (meta.FrameCount > 0 && meta.Duration > 0) {
		return meta
	}

	prober, err := ffmpeg.NewProber()
	if err != nil {
		log.Debug("ffprobe unavailable, using decoder metadata as-is", zap.Error(err))
		return meta
	}

	probed, err := prober.VideoInfo(ctx, src.Path())
	if err != nil {
		log.Warn("ffprobe fallback failed", zap.String("path", src.Path()), zap.Error(err))
		return meta
	}

	if meta.FPS <= 0 {
		meta.FPS = probed.FPS
	}
	if meta.FrameCount <= 0 {
		meta.FrameCount = probed.FrameCount
	}
	if meta.Duration <= 0 {
		meta.Duration = probed.Duration
	}
	if meta.Width == 0 {
		meta.Width = probed.Width
		meta.Height = probed.Height
	}
	return meta
}

func loadConfig() (*extract.Config, error) {
	if flagConfig == "" {
		return extract.DefaultConfig(), nil
	}
	return extract.LoadConfig(flagConfig)
}

// stem returns the file name without directory or extension
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

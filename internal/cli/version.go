package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/video-system/go-frame-extract/internal/ffmpeg"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("frameextract %s\n", version)

		prober, err := ffmpeg.NewProber()
		if err != nil {
			fmt.Println("ffprobe: not found (metadata fallback disabled)")
			return
		}
		if v, err := prober.Version(cmd.Context()); err == nil {
			fmt.Printf("%s\n", v)
		}
	},
}

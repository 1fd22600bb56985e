package extract

import (
	"fmt"
	"strconv"
	"strings"
)

// FrameName produces a zero-padded, lexicographically sortable output name
// like "frame_001.jpg". The padding width comes from padTotal, computed once
// per plan, so all names in a batch share the same width.
func FrameName(outputIndex, padTotal int, ext string) string {
	width := len(strconv.Itoa(padTotal))
	return fmt.Sprintf("frame_%0*d%s", width, outputIndex, ext)
}

// TimestampName produces the output name for a single-frame extraction,
// encoding the literal timestamp with ":" replaced by "-", e.g.
// "frame_at_01-30.jpg".
func TimestampName(label, ext string) string {
	return fmt.Sprintf("frame_at_%s%s", strings.ReplaceAll(label, ":", "-"), ext)
}

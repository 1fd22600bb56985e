package extract

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimestamp converts a timestamp string into seconds. Accepted forms:
// "HH:MM:SS", "MM:SS", or a plain number of seconds ("90", "12.5").
// Negative values are not rejected here; a negative seek just clamps to the
// first frame downstream.
func ParseTimestamp(input string) (float64, error) {
	parts := strings.Split(input, ":")

	switch len(parts) {
	case 3:
		h, err1 := strconv.ParseFloat(parts[0], 64)
		m, err2 := strconv.ParseFloat(parts[1], 64)
		s, err3 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, fmt.Errorf("%w: invalid timestamp %q", ErrInvalidArgument, input)
		}
		return h*3600 + m*60 + s, nil
	case 2:
		m, err1 := strconv.ParseFloat(parts[0], 64)
		s, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return 0, fmt.Errorf("%w: invalid timestamp %q", ErrInvalidArgument, input)
		}
		return m*60 + s, nil
	case 1:
		s, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid timestamp %q", ErrInvalidArgument, input)
		}
		return s, nil
	default:
		return 0, fmt.Errorf("%w: invalid timestamp %q", ErrInvalidArgument, input)
	}
}

package extract

import "errors"

var (
	// ErrInvalidArgument indicates a malformed extraction request
	// (count below 1, non-positive interval, unparseable timestamp)
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoFrameAtTimestamp indicates the requested timestamp lies beyond
	// the end of the stream or the frame there could not be decoded
	ErrNoFrameAtTimestamp = errors.New("no frame at timestamp")

	// ErrEncode indicates an image could not be encoded or written
	ErrEncode = errors.New("encode frame")
)

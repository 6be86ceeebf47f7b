package protocol

// FramingError indicates a malformed frame: wrong size or an
// unrecognized tag byte.
type FramingError struct {
	// Reason describes what was wrong with the frame
	Reason string

	// Tag is the offending tag byte, when the tag was the problem
	Tag byte
}

func (e *FramingError) Error() string {
	return "framing error: " + e.Reason
}

// IsFramingError returns true if the error is a *FramingError.
func IsFramingError(err error) bool {
	_, ok := err.(*FramingError)
	return ok
}

package htmlqr

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the library.
var (
	// ErrClosed is returned when attempting to use a closed [Verifier].
	ErrClosed = errors.New("htmlqr: verifier is closed")

	// ErrPayloadTooLarge is returned by [Encode] when the payload does not
	// fit in the largest QR symbol at the chosen recovery level.
	ErrPayloadTooLarge = errors.New("htmlqr: data is too long for a QR code")

	// ErrNotDataURL is returned by [DecodeDataURL] for input lacking
	// the [DataURLPrefix].
	ErrNotDataURL = errors.New("htmlqr: not an HTML data URL")
)

// MinifyError reports a failure of the HTML minifier.
type MinifyError struct {
	Err error
}

func (e *MinifyError) Error() string {
	return fmt.Sprintf("htmlqr: minifying source: %v", e.Err)
}

func (e *MinifyError) Unwrap() error {
	return e.Err
}

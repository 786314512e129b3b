package htmlqr

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// RecoveryLevel is the error-correction level of every generated symbol.
// Low gives the largest data capacity.
const RecoveryLevel = qrcode.Low

// DefaultOutputFile is where the command writes its QR code.
const DefaultOutputFile = "qrcode.png"

// Encode renders payload as a PNG QR code at [RecoveryLevel].
// If cfg is nil, [DefaultImageConfig] values are used.
//
// Payloads beyond the capacity of a version 40 symbol fail with an error
// matching [ErrPayloadTooLarge].
func Encode(payload string, cfg *ImageConfig) (*Result, error) {
	q, err := qrcode.New(payload, RecoveryLevel)
	if err != nil {
		if tooLong(err) {
			return nil, fmt.Errorf("%w (%d bytes)", ErrPayloadTooLarge, len(payload))
		}
		return nil, fmt.Errorf("htmlqr: encoding QR code: %w", err)
	}

	r := cfg.resolved()
	q.DisableBorder = r.DisableBorder
	q.ForegroundColor = r.Foreground
	q.BackgroundColor = r.Background

	png, err := q.PNG(r.pngSize())
	if err != nil {
		return nil, fmt.Errorf("htmlqr: rendering PNG: %w", err)
	}
	return &Result{data: png, version: q.VersionNumber}, nil
}

// tooLong recognises go-qrcode's capacity error, which has no exported
// sentinel.
func tooLong(err error) bool {
	return strings.Contains(err.Error(), "too long")
}

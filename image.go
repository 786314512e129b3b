package htmlqr

import "image/color"

// DefaultModuleSize is the default edge length of one QR module in pixels.
const DefaultModuleSize = 4

// ImageConfig controls how a QR symbol is rasterised.
//
// A nil ImageConfig or zero-value fields will use sensible defaults:
// 4 pixels per module, black on white, with the quiet-zone border.
type ImageConfig struct {
	// ModuleSize is the edge length of a single module in pixels.
	// Defaults to 4. The image size follows from the chosen symbol version.
	ModuleSize int

	// DisableBorder removes the quiet zone around the symbol. Most
	// scanners need it, so leave it off unless the image is padded later.
	DisableBorder bool

	// Foreground is the colour of dark modules. Defaults to black.
	Foreground color.Color

	// Background is the colour of light modules. Defaults to white.
	Background color.Color
}

// DefaultImageConfig returns an ImageConfig with sensible defaults.
func DefaultImageConfig() ImageConfig {
	return ImageConfig{
		ModuleSize: DefaultModuleSize,
		Foreground: color.Black,
		Background: color.White,
	}
}

// resolved returns an ImageConfig with all zero values replaced by defaults.
func (c *ImageConfig) resolved() ImageConfig {
	d := DefaultImageConfig()
	if c == nil {
		return d
	}
	r := *c
	if r.ModuleSize <= 0 {
		r.ModuleSize = d.ModuleSize
	}
	if r.Foreground == nil {
		r.Foreground = d.Foreground
	}
	if r.Background == nil {
		r.Background = d.Background
	}
	return r
}

// pngSize returns the size argument for go-qrcode. A negative value asks
// for a fixed number of pixels per module.
func (c *ImageConfig) pngSize() int {
	return -c.resolved().ModuleSize
}

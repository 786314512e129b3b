// Package htmlqr packs an HTML document into a QR code:
//
//   - minification of HTML with embedded CSS, JS, SVG and JSON
//   - wrapping the result in a text/html data URL
//   - rendering that URL as a PNG QR code at the Low recovery level
//
// # Building a QR code
//
// The steps are plain function calls and run in order:
//
//	src, err := htmlqr.ReadSource("page.html")
//	min, err := htmlqr.NewMinifier().Minify(src)
//	u := htmlqr.DataURL(min)
//	if htmlqr.Oversize(u) {
//	    // dense symbol, may be hard to scan
//	}
//	res, err := htmlqr.Encode(u, nil)
//	err = res.WriteToFile(htmlqr.DefaultOutputFile, 0o644)
//
// Payloads too large for any QR symbol fail with [ErrPayloadTooLarge]:
//
//	if errors.Is(err, htmlqr.ErrPayloadTooLarge) { ... }
//
// Use [ImageConfig] to control module size, border and colours:
//
//	res, err := htmlqr.Encode(u, &htmlqr.ImageConfig{ModuleSize: 8})
//
// # Checking the page renders
//
// A [Verifier] opens the data URL in headless Chrome (Chrome DevTools
// Protocol) and reports the rendered title and text length:
//
//	v, err := htmlqr.NewVerifier(htmlqr.WithAutoDownload())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer v.Close()
//
//	rep, err := v.Verify(ctx, u)
//
// Chrome or Chromium must be available in PATH, or use [WithAutoDownload].
package htmlqr

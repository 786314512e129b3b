package htmlqr

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/minify/v2/svg"
)

const htmlMediaType = "text/html"

var (
	jsMediaTypes   = regexp.MustCompile(`^(application|text)/(x-)?(java|ecma)script$`)
	jsonMediaTypes = regexp.MustCompile(`[/+]json$`)
)

// Minifier shrinks HTML documents together with their embedded CSS, JS,
// SVG and JSON. The configuration is fixed: whitespace is collapsed,
// comments are dropped and optional tags are omitted.
//
// Embedded scripts the JS or JSON parser rejects are kept as written.
//
// A Minifier is safe for concurrent use.
type Minifier struct {
	m *minify.M
}

// NewMinifier returns a Minifier with the fixed aggressive configuration.
func NewMinifier() *Minifier {
	m := minify.New()
	m.Add(htmlMediaType, &html.Minifier{
		KeepComments:     false,
		KeepDocumentTags: false,
		KeepEndTags:      false,
		KeepWhitespace:   false,
		KeepQuotes:       false,
	})
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)
	m.AddFuncRegexp(jsMediaTypes, passThroughOnError(js.Minify))
	m.AddFuncRegexp(jsonMediaTypes, passThroughOnError(json.Minify))
	return &Minifier{m: m}
}

// passThroughOnError keeps an embedded script as written when fn cannot
// parse it, so one bad script does not fail the whole document.
func passThroughOnError(fn minify.MinifierFunc) minify.MinifierFunc {
	return func(m *minify.M, w io.Writer, r io.Reader, params map[string]string) error {
		src, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := fn(m, &buf, bytes.NewReader(src), params); err != nil {
			_, err = w.Write(src)
			return err
		}
		_, err = w.Write(buf.Bytes())
		return err
	}
}

// Minify returns the minified form of src. Failures are reported as
// [*MinifyError].
func (mf *Minifier) Minify(src string) (string, error) {
	out, err := mf.m.String(htmlMediaType, src)
	if err != nil {
		return "", &MinifyError{Err: err}
	}
	return out, nil
}

// ReadSource reads the HTML document at path as UTF-8 text. Invalid
// byte sequences are replaced with U+FFFD.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("htmlqr: reading source: %w", err)
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}

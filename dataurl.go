package htmlqr

import (
	"fmt"
	"net/url"
	"strings"
)

// DataURLPrefix starts every URL produced by [DataURL].
const DataURLPrefix = "data:text/html;charset=UTF-8,"

// MaxByteCapacity is the number of bytes a version 40 QR symbol holds in
// byte mode at the Low recovery level. Longer payloads still encode only
// if the encoder finds a denser segmentation, and the result is hard to scan.
const MaxByteCapacity = 2953

const upperHex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s as a URI component. ASCII letters,
// digits and - _ . ! ~ * ' ( ) are kept; every other byte of the UTF-8
// encoding becomes %XX.
func EncodeURIComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// DataURL wraps an HTML document in a text/html data URL.
func DataURL(html string) string {
	return DataURLPrefix + EncodeURIComponent(html)
}

// DecodeDataURL returns the HTML document carried by a URL built with
// [DataURL].
func DecodeDataURL(u string) (string, error) {
	payload, ok := strings.CutPrefix(u, DataURLPrefix)
	if !ok {
		return "", ErrNotDataURL
	}
	html, err := url.PathUnescape(payload)
	if err != nil {
		return "", fmt.Errorf("htmlqr: decoding data URL: %w", err)
	}
	return html, nil
}

// Oversize reports whether u is longer than [MaxByteCapacity].
func Oversize(u string) bool {
	return len(u) > MaxByteCapacity
}

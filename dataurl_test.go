package htmlqr

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeURIComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Hello", "Hello"},
		{"a b", "a%20b"},
		{"-_.!~*'()", "-_.!~*'()"},
		{"#?&=/:;,+$@", "%23%3F%26%3D%2F%3A%3B%2C%2B%24%40"},
		{"<p>Hi</p>", "%3Cp%3EHi%3C%2Fp%3E"},
		{"100%", "100%25"},
		{"é", "%C3%A9"},
		{"€", "%E2%82%AC"},
		{"😀", "%F0%9F%98%80"},
		{"a\nb\tc", "a%0Ab%09c"},
		{`"[]{}|\^` + "`", "%22%5B%5D%7B%7D%7C%5C%5E%60"},
	}
	for _, tt := range tests {
		if got := EncodeURIComponent(tt.in); got != tt.want {
			t.Errorf("EncodeURIComponent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDataURL_Prefix(t *testing.T) {
	got := DataURL("<b>x</b>")
	want := "data:text/html;charset=UTF-8,%3Cb%3Ex%3C%2Fb%3E"
	if got != want {
		t.Errorf("DataURL = %q, want %q", got, want)
	}
}

func TestDataURL_RoundTrip(t *testing.T) {
	docs := []string{
		"",
		"Hi",
		`<!doctype html><title>Ünïcödé ☃</title><p class=a>1 + 1 = 2 & 50% off`,
		"<script>if(a<b&&c>d)alert('x?y#z')</script>",
		"line1\r\nline2\ttab",
	}
	for _, doc := range docs {
		u := DataURL(doc)
		if !strings.HasPrefix(u, DataURLPrefix) {
			t.Fatalf("DataURL(%q) lacks prefix: %q", doc, u)
		}
		got, err := DecodeDataURL(u)
		if err != nil {
			t.Fatalf("DecodeDataURL(%q): %v", u, err)
		}
		if diff := cmp.Diff(doc, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDataURL_ASCIIOnly(t *testing.T) {
	u := DataURL("ñ 漢字 <a href=\"#\">")
	for i := 0; i < len(u); i++ {
		if u[i] >= 0x80 {
			t.Fatalf("byte %d of %q is not ASCII", i, u)
		}
	}
}

func TestDecodeDataURL_Errors(t *testing.T) {
	if _, err := DecodeDataURL("https://example.com"); !errors.Is(err, ErrNotDataURL) {
		t.Errorf("missing prefix: err = %v, want ErrNotDataURL", err)
	}
	if _, err := DecodeDataURL(DataURLPrefix + "%zz"); err == nil {
		t.Error("malformed escape: expected error")
	}
}

func TestOversize_Boundary(t *testing.T) {
	pad := func(n int) string {
		return DataURLPrefix + strings.Repeat("a", n-len(DataURLPrefix))
	}
	tests := []struct {
		length int
		want   bool
	}{
		{len(DataURLPrefix), false},
		{MaxByteCapacity - 1, false},
		{MaxByteCapacity, false},
		{MaxByteCapacity + 1, true},
		{2 * MaxByteCapacity, true},
	}
	for _, tt := range tests {
		u := pad(tt.length)
		if len(u) != tt.length {
			t.Fatalf("pad(%d) has length %d", tt.length, len(u))
		}
		if got := Oversize(u); got != tt.want {
			t.Errorf("Oversize(len %d) = %v, want %v", tt.length, got, tt.want)
		}
	}
}

package store_test

import (
	"strings"
	"testing"

	"plinth/internal/store"
)

func TestEncodeName_Known(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"", ""},
		{"A", "A"},
		{"My Session", "My%20Session"},
		{"a/b", "a%2Fb"},
		{"100%", "100%25"},
		{"host.example@22", "host.example@22"},
		{"tab\there", "tab%09here"},
	}
	for _, c := range cases {
		if got := store.EncodeName(c.name); got != c.want {
			t.Errorf("EncodeName(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestEncodeName_RoundTrip(t *testing.T) {
	names := []string{
		"",
		"Default Settings",
		"plain",
		"My Session",
		"!\"#$&'()*,/:;<=>?[\\]^`{|}~",
		"100% legit",
		"h\xc3\xa9llo",      // UTF-8 bytes
		"\x00\x01\xff\xfe",  // arbitrary bytes
		"%41",               // literal text that looks like an escape
		"trailing percent %",
	}
	for _, n := range names {
		enc := store.EncodeName(n)
		if got := store.DecodeName(enc); got != n {
			t.Errorf("DecodeName(EncodeName(%q)) = %q", n, got)
		}
	}
}

func TestEncodeName_SafeCharset(t *testing.T) {
	var everyByte strings.Builder
	for i := 0; i < 256; i++ {
		everyByte.WriteByte(byte(i))
	}
	enc := store.EncodeName(everyByte.String())

	isSafe := func(c byte) bool {
		return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' ||
			strings.IndexByte("+-.@_%", c) >= 0
	}
	isHexUpper := func(c byte) bool {
		return c >= '0' && c <= '9' || c >= 'A' && c <= 'F'
	}
	for i := 0; i < len(enc); i++ {
		if !isSafe(enc[i]) {
			t.Fatalf("unsafe byte %q at %d in %q", enc[i], i, enc)
		}
		if enc[i] == '%' {
			if i+2 >= len(enc) || !isHexUpper(enc[i+1]) || !isHexUpper(enc[i+2]) {
				t.Fatalf("escape at %d not followed by two uppercase hex digits", i)
			}
			i += 2
		}
	}
}

func TestEncodeName_Injective(t *testing.T) {
	seen := make(map[string]string)
	var names []string
	for i := 0; i < 256; i++ {
		names = append(names, string([]byte{byte(i)}), "%"+string([]byte{byte(i)}))
	}
	for _, n := range names {
		enc := store.EncodeName(n)
		if prev, dup := seen[enc]; dup && prev != n {
			t.Fatalf("EncodeName(%q) collides with EncodeName(%q): %q", n, prev, enc)
		}
		seen[enc] = n
	}
}

func TestDecodeName_TruncatedEscape(t *testing.T) {
	cases := []struct {
		enc  string
		want string
	}{
		{"%", "%"},
		{"%4", "%4"},
		{"abc%", "abc%"},
		{"%20", " "},
		{"%2f", "/"}, // decode accepts the value as written, either case
		{"%2F", "/"},
	}
	for _, c := range cases {
		if got := store.DecodeName(c.enc); got != c.want {
			t.Errorf("DecodeName(%q) = %q, want %q", c.enc, got, c.want)
		}
	}
}

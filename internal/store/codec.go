package store

import "strings"

// DefaultSettingsName is the profile name used when the caller has no name
// to offer, standing in for "the default profile".
const DefaultSettingsName = "Default Settings"

const hexUpper = "0123456789ABCDEF"

// EncodeName converts an arbitrary profile name into a string usable as a
// single path component. Remarkably few punctuation characters are not
// shell-special or used as separators in some file format, so safe
// characters are opted in rather than unsafe ones opted out: alphanumerics
// and +-.@_ pass through, every other byte becomes %XX with uppercase hex.
func EncodeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if safeNameByte(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(hexUpper[c>>4])
			b.WriteByte(hexUpper[c&0xF])
		}
	}
	return b.String()
}

// DecodeName reverses EncodeName. A '%' followed by two characters decodes
// as a hex byte, taken as written; a truncated escape at the end of input is
// copied through unchanged rather than read past.
func DecodeName(enc string) string {
	var b strings.Builder
	b.Grow(len(enc))
	for i := 0; i < len(enc); {
		if enc[i] == '%' && i+2 < len(enc) {
			b.WriteByte(unhex(enc[i+1])<<4 | unhex(enc[i+2]))
			i += 3
		} else {
			b.WriteByte(enc[i])
			i++
		}
	}
	return b.String()
}

func safeNameByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		return true
	case c == '+' || c == '-' || c == '.' || c == '@' || c == '_':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	}
	return 0
}

package common

import "strings"

// NormalizeEmail trims and lowercases an email so it can be compared and
// used as a natural key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// WipeByteArray overwrites b with zeros. It is used on password buffers read
// from the terminal once they have been copied into a string.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

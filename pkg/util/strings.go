package util

import "unicode/utf8"

// MaxValueSize is the default maximum size of a value printed on one line.
const MaxValueSize = 120

// Truncate truncates a string to at most maxSize bytes, appending "...(truncated)"
// if truncated. The cut never splits a UTF-8 sequence. If maxSize <= 0, uses
// MaxValueSize.
func Truncate(data string, maxSize int) string {
	if maxSize <= 0 {
		maxSize = MaxValueSize
	}
	if len(data) <= maxSize {
		return data
	}
	cut := maxSize
	for cut > 0 && !utf8.RuneStart(data[cut]) {
		cut--
	}
	return data[:cut] + "...(truncated)"
}

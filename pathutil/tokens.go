package pathutil

import "strings"

// PrefixCmp returns 0 if s starts with prefix. Otherwise it returns the
// difference between the first mismatching bytes, treating the end of s as a
// zero byte, so a short s compares negative.
func PrefixCmp(s, prefix string) int {
	for i := 0; i < len(prefix); i++ {
		if i >= len(s) {
			return -int(prefix[i])
		}
		if s[i] != prefix[i] {
			return int(s[i]) - int(prefix[i])
		}
	}
	return 0
}

// SuffixCmp returns 0 if s ends with suffix, -1 if s is shorter than suffix,
// and otherwise compares the tail of s with suffix.
func SuffixCmp(s, suffix string) int {
	if len(s) < len(suffix) {
		return -1
	}
	return strings.Compare(s[len(s)-len(suffix):], suffix)
}

// Tokenize splits src at the first byte contained in delims. The delimiter is
// consumed: rest starts after it. With no delimiter, tok is src and rest is "".
func Tokenize(src, delims string) (tok, rest string) {
	i := indexDelim(src, delims)
	if i < 0 {
		return src, ""
	}
	return src[:i], src[i+1:]
}

// TokenizeKeep is Tokenize with the delimiter kept at the end of tok.
func TokenizeKeep(src, delims string) (tok, rest string) {
	i := indexDelim(src, delims)
	if i < 0 {
		return src, ""
	}
	return src[:i+1], src[i+1:]
}

func indexDelim(src, delims string) int {
	for i := 0; i < len(src); i++ {
		if strings.IndexByte(delims, src[i]) >= 0 {
			return i
		}
	}
	return -1
}

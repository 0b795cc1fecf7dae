package pathutil

import "strings"

// Join concatenates a and b with exactly one separator at the seam.
//
// An empty a yields b unchanged. An empty b yields a with a trailing separator,
// so Join("a", "") is "a/". Leading separators of b are dropped when a is not
// empty. Separator runs anywhere else pass through untouched.
func Join(a, b string) string {
	if a == "" {
		return b
	}
	b = strings.TrimLeft(b, "/")
	var sb strings.Builder
	sb.Grow(len(a) + 1 + len(b))
	sb.WriteString(a)
	if a[len(a)-1] != '/' {
		sb.WriteByte('/')
	}
	sb.WriteString(b)
	return sb.String()
}

// AppendJoin appends Join(a, b) to dst.
func AppendJoin(dst []byte, a, b string) []byte {
	if a == "" {
		return append(dst, b...)
	}
	dst = append(dst, a...)
	if a[len(a)-1] != '/' {
		dst = append(dst, '/')
	}
	return append(dst, strings.TrimLeft(b, "/")...)
}

//go:build windows

package pathutil

// volumeLen returns 2 for a leading drive prefix such as "c:", else 0.
func volumeLen[S ~string | ~[]byte](p S) int {
	if len(p) < 2 || p[1] != ':' {
		return 0
	}
	c := p[0]
	if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
		return 2
	}
	return 0
}

//go:build !windows

package pathutil

// volumeLen is always 0: outside Windows "c:foo" is an ordinary name.
func volumeLen[S ~string | ~[]byte](p S) int {
	return 0
}

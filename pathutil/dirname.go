package pathutil

import "strings"

// Dirname returns the parent directory of p. Trailing separators are not part
// of the path, so Dirname("a/b/") is "a". An empty path or one without a
// separator yields ".".
func Dirname(p string) string {
	return Split(p, SplitPath)
}

// DirnameInto is Dirname writing into dst. See SplitInto.
func DirnameInto(dst []byte, p string) (int, error) {
	return SplitInto(dst, p, SplitPath)
}

// Basename returns the last component of p with any drive and leading
// directories removed.
//
// Unlike POSIX basename a trailing separator is significant:
// Basename("a/b/") is "", the empty name after the last separator.
func Basename(p string) string {
	return Split(p, SplitFileExt)
}

// BasenameInto is Basename writing into dst. See SplitInto.
func BasenameInto(dst []byte, p string) (int, error) {
	return SplitInto(dst, p, SplitFileExt)
}

// Topdir returns the first directory segment of p as a substring of p.
// Leading separators are skipped. ok is false when that segment is not
// followed by a separator, since a bare name has no directory.
func Topdir(p string) (dir string, ok bool) {
	start := 0
	for start < len(p) && p[start] == '/' {
		start++
	}
	i := strings.IndexByte(p[start:], '/')
	if i < 0 {
		return "", false
	}
	return p[start : start+i], true
}

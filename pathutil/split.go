package pathutil

// Mask selects which components of a path Split keeps.
type Mask uint8

const (
	SplitPath Mask = 1 << iota
	SplitFile
	SplitExt
	// SplitExtNoPeriod drops the leading '.' of a kept extension.
	SplitExtNoPeriod

	SplitPathFile = SplitPath | SplitFile
	SplitFileExt  = SplitFile | SplitExt
	SplitAll      = SplitPath | SplitFile | SplitExt
)

type span struct {
	start, end int
}

func (s span) len() int {
	return s.end - s.start
}

// components holds byte offsets into an analyzed path.
// The directory is always p[:dirEnd]; the name is p[nameStart:nameEnd],
// of which p[extStart:nameEnd] is the extension.
type components struct {
	dirEnd    int
	dirSep    bool // a '/' belongs between the directory and the name
	nameStart int
	extStart  int
	nameEnd   int
}

func analyze[S ~string | ~[]byte](p S) components {
	end := len(p)
	for end > 0 && p[end-1] == '/' {
		end--
	}
	trailing := end < len(p)
	if end == 0 {
		if trailing {
			// nothing but separators: the root
			return components{dirEnd: 1, nameStart: 1, extStart: 1, nameEnd: 1}
		}
		return components{}
	}

	vol := volumeLen(p)
	sep := end - 1
	for sep >= vol && p[sep] != '/' {
		sep--
	}

	var c components
	if sep < vol {
		c.dirEnd = vol
		c.nameStart = vol
	} else {
		c.nameStart = sep + 1
		d := sep
		for d > vol && p[d-1] == '/' {
			d--
		}
		if d == vol {
			d++ // the root keeps its separator
		}
		c.dirEnd = d
		c.dirSep = p[d-1] != '/'
	}
	c.nameEnd = end
	if trailing {
		c.nameStart = end
	}

	c.extStart = c.nameEnd
	dotsOnly := true
	for i := c.nameStart; i < c.nameEnd; i++ {
		if p[i] != '.' {
			dotsOnly = false
			break
		}
	}
	if !dotsOnly {
		// i > nameStart: a leading '.' marks a hidden file, not an extension
		for i := c.nameEnd - 1; i > c.nameStart; i-- {
			if p[i] == '.' {
				c.extStart = i
				break
			}
		}
	}
	return c
}

// plan is the output of a split as spans of the input, in output order.
type plan struct {
	dir, file, ext span
	sep            bool
	dot            bool // the output is "." and owns no bytes of the input
}

func (c components) plan(m Mask) plan {
	var l plan
	if m&(SplitPath|SplitFile|SplitExt) == SplitPath && c.dirEnd == 0 {
		l.dot = true
		return l
	}
	if m&SplitFile != 0 {
		l.file = span{c.nameStart, c.extStart}
	}
	if m&SplitExt != 0 {
		l.ext = span{c.extStart, c.nameEnd}
		if m&SplitExtNoPeriod != 0 && l.ext.len() > 0 {
			l.ext.start++
		}
	}
	if m&SplitPath != 0 {
		l.dir = span{0, c.dirEnd}
		l.sep = c.dirSep && l.file.len()+l.ext.len() > 0
	}
	return l
}

func (l plan) size() int {
	if l.dot {
		return 1
	}
	n := l.dir.len() + l.file.len() + l.ext.len()
	if l.sep {
		n++
	}
	return n
}

// view reports whether the output is one contiguous run of the input.
func (l plan) view() (span, bool) {
	parts := [4]span{l.dir, {}, l.file, l.ext}
	if l.sep {
		parts[1] = span{l.dir.end, l.dir.end + 1}
	}
	var out span
	first := true
	for _, s := range parts {
		if s.len() == 0 {
			continue
		}
		if first {
			out, first = s, false
			continue
		}
		if s.start != out.end {
			return span{}, false
		}
		out.end = s.end
	}
	return out, true
}

func (l plan) appendTo(dst []byte, p string) []byte {
	if l.dot {
		return append(dst, '.')
	}
	dst = append(dst, p[l.dir.start:l.dir.end]...)
	if l.sep {
		dst = append(dst, '/')
	}
	dst = append(dst, p[l.file.start:l.file.end]...)
	return append(dst, p[l.ext.start:l.ext.end]...)
}

// compact moves the planned spans of buf to its front and returns the new
// length. Every span's destination is at or before its source, so copying in
// output order never overwrites bytes that are still to be moved.
func (l plan) compact(buf []byte) int {
	n := copy(buf, buf[l.dir.start:l.dir.end])
	if l.sep {
		buf[n] = '/'
		n++
	}
	n += copy(buf[n:], buf[l.file.start:l.file.end])
	n += copy(buf[n:], buf[l.ext.start:l.ext.end])
	return n
}

// Split returns the components of p selected by m.
//
// A trailing run of separators is ignored when finding the directory, but it
// leaves the name empty: Split("a/b/", SplitFileExt) is "". When the directory
// is requested on its own and p has none, the result is ".".
func Split(p string, m Mask) string {
	l := analyze(p).plan(m)
	if l.dot {
		return "."
	}
	if s, ok := l.view(); ok {
		return p[s.start:s.end]
	}
	return string(l.appendTo(make([]byte, 0, l.size()), p))
}

// AppendSplit appends the components of p selected by m to dst.
func AppendSplit(dst []byte, p string, m Mask) []byte {
	return analyze(p).plan(m).appendTo(dst, p)
}

// SplitInto writes the components of p selected by m into dst and returns the
// number of bytes written. If dst is too short it returns the required length
// and a *BufferTooSmallError, leaving dst untouched.
func SplitInto(dst []byte, p string, m Mask) (int, error) {
	l := analyze(p).plan(m)
	n := l.size()
	if n > len(dst) {
		return n, &BufferTooSmallError{Required: n, Capacity: len(dst)}
	}
	l.appendTo(dst[:0], p)
	return n, nil
}

// SplitInPlace rewrites buf to hold only the components selected by m and
// returns it resliced to the new length. The result is never longer than buf,
// except that an empty buf becomes "." when only the directory is requested;
// that byte is written into buf's capacity if it has any.
func SplitInPlace(buf []byte, m Mask) []byte {
	l := analyze(buf).plan(m)
	if l.dot {
		return append(buf[:0], '.')
	}
	return buf[:l.compact(buf)]
}

package refs

import (
	"strings"

	"github.com/dendrascience/gitpath/objstore"
	"github.com/dendrascience/gitpath/pathutil"
)

const (
	// Prefix starts every reference name.
	Prefix = "refs/"
	// SymbolicPrefix starts the content of a symbolic reference.
	SymbolicPrefix = "ref: "

	lockSuffix = ".lock"
	// bytes git refuses anywhere in a name
	forbidden = " ~^:?*[\\"
)

var shortenable = []string{"refs/heads/", "refs/tags/", "refs/remotes/"}

// Ref is a reference and what it points at: an object id, or
// SymbolicPrefix followed by another reference name.
type Ref struct {
	Name   string
	Target string
}

// Symbolic reports whether r points at another reference.
func (r Ref) Symbolic() bool {
	return pathutil.PrefixCmp(r.Target, SymbolicPrefix) == 0
}

// Path returns where the loose file for name lives under gitDir.
func Path(gitDir, name string) string {
	return pathutil.Join(gitDir, name)
}

// Valid reports whether name is a well-formed reference name.
func Valid(name string) bool {
	if pathutil.PrefixCmp(name, Prefix) != 0 {
		return false
	}
	if pathutil.SuffixCmp(name, "/") == 0 || strings.Contains(name, "..") || strings.Contains(name, "@{") {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 0x20 || name[i] == 0x7f || strings.IndexByte(forbidden, name[i]) >= 0 {
			return false
		}
	}

	rest := name[len(Prefix):]
	if rest == "" {
		return false
	}
	for rest != "" {
		var comp string
		comp, rest = pathutil.Tokenize(rest, "/")
		if comp == "" || comp[0] == '.' || pathutil.SuffixCmp(comp, lockSuffix) == 0 {
			return false
		}
	}
	return true
}

// Shorten strips the well-known namespace from name, so "refs/heads/main"
// becomes "main". Other names are returned unchanged.
func Shorten(name string) string {
	for _, p := range shortenable {
		if pathutil.PrefixCmp(name, p) == 0 && len(name) > len(p) {
			return name[len(p):]
		}
	}
	return name
}

// validTarget accepts an object id or a symbolic pointer at a valid name.
func validTarget(target string) bool {
	if pathutil.PrefixCmp(target, SymbolicPrefix) == 0 {
		return Valid(target[len(SymbolicPrefix):])
	}
	return objstore.ValidOID(target)
}

package refs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/armon/go-radix"
	"github.com/dendrascience/gitpath/pathutil"
)

const packedRefsFile = "packed-refs"

// Index holds reference names and their targets in a radix tree.
type Index struct {
	tree *radix.Tree
	mu   sync.RWMutex
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{tree: radix.New()}
}

// Insert adds or replaces name. The name must be Valid and the target an
// object id or a symbolic pointer at a valid name.
func (x *Index) Insert(name, target string) error {
	if !Valid(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !validTarget(target) {
		return fmt.Errorf("%w: %q for %s", ErrInvalidTarget, target, name)
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	x.tree.Insert(name, target)
	return nil
}

// Get returns the target of name.
func (x *Index) Get(name string) (string, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	v, ok := x.tree.Get(name)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Delete removes name and reports whether it was present.
func (x *Index) Delete(name string) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	_, ok := x.tree.Delete(name)
	return ok
}

// Len returns the number of references held.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.tree.Len()
}

// List returns every reference whose name starts with prefix, sorted by name.
func (x *Index) List(prefix string) []Ref {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var out []Ref
	x.tree.WalkPrefix(prefix, func(k string, v interface{}) bool {
		out = append(out, Ref{Name: k, Target: v.(string)})
		return false
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Namespaces returns the distinct first components below "refs/", such as
// "heads" and "tags", sorted. Names with a single component below "refs/"
// (like "refs/stash") have no namespace.
func (x *Index) Namespaces() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	seen := make(map[string]struct{})
	x.tree.WalkPrefix(Prefix, func(k string, _ interface{}) bool {
		if ns, ok := pathutil.Topdir(k[len(Prefix):]); ok {
			seen[ns] = struct{}{}
		}
		return false
	})

	out := make([]string, 0, len(seen))
	for ns := range seen {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Load reads gitDir's packed-refs file, if any, then every loose reference
// under gitDir/refs. Loose references override packed ones. Files whose
// names or contents are not valid references are skipped. It returns the
// number of references the index holds afterwards.
func (x *Index) Load(gitDir string) (int, error) {
	root := filepath.Join(gitDir, "refs")
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrNotGitDir, gitDir)
	}

	if err := x.loadPacked(filepath.Join(gitDir, packedRefsFile)); err != nil {
		return x.Len(), err
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(gitDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if !Valid(name) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read reference %s: %w", name, err)
		}
		// a malformed loose file does not stop the load
		_ = x.Insert(name, strings.TrimSpace(string(data)))
		return nil
	})
	if err != nil {
		return x.Len(), fmt.Errorf("error walking %s: %w", root, err)
	}
	return x.Len(), nil
}

// loadPacked reads "<oid> <name>" lines, ignoring the header comment and
// peeled "^<oid>" lines.
func (x *Index) loadPacked(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || line[0] == '#' || line[0] == '^' {
			continue
		}
		oid, name := pathutil.Tokenize(line, " ")
		_ = x.Insert(name, oid)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}

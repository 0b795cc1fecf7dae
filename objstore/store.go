package objstore

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dendrascience/gitpath/pathutil"
	"github.com/google/uuid"
)

// tmpPrefix names in-flight writes; Verify skips them.
const tmpPrefix = "tmp_obj_"

// Store is a directory of loose objects.
type Store struct {
	Root   string
	Layout Layout
	// Seed is passed to MurmurHash2 by LayoutMurmur.
	Seed uint32
}

// New returns a Store rooted at root.
func New(root string, layout Layout, seed uint32) *Store {
	return &Store{Root: root, Layout: layout, Seed: seed}
}

// ObjectPath returns the path oid is stored at.
func (s *Store) ObjectPath(oid string) (string, error) {
	rel, err := RelPath(s.Layout, oid, s.Seed)
	if err != nil {
		return "", err
	}
	return pathutil.Join(s.Root, rel), nil
}

// ParseObjectPath returns the id of the object stored at p.
func (s *Store) ParseObjectPath(p string) (string, error) {
	return OIDFromPath(s.Layout, p, s.Seed)
}

// Has reports whether oid is present.
func (s *Store) Has(oid string) bool {
	p, err := s.ObjectPath(oid)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

// Write stores content as an object of the given kind and returns its id.
// Writing an object that already exists is a no-op.
func (s *Store) Write(kind string, content []byte) (string, error) {
	oid := HashObject(kind, content)
	p, err := s.ObjectPath(oid)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(p); err == nil {
		return oid, nil
	}

	dir := pathutil.Dirname(p)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create object directory %s: %w", dir, err)
	}

	tmp := pathutil.Join(dir, tmpPrefix+uuid.NewString())
	if err := writeCompressed(tmp, header(kind, len(content)), content); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to write object %s: %w", oid, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to move object %s into place: %w", oid, err)
	}
	return oid, nil
}

func writeCompressed(path string, chunks ...[]byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	zw := zlib.NewWriter(f)
	for _, c := range chunks {
		if _, err := zw.Write(c); err != nil {
			f.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read returns the kind and content of oid.
func (s *Store) Read(oid string) (kind string, content []byte, err error) {
	p, err := s.ObjectPath(oid)
	if err != nil {
		return "", nil, err
	}
	kind, content, err = readObject(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil, fmt.Errorf("%w: %s", ErrObjectNotFound, oid)
	}
	return kind, content, err
}

func readObject(path string) (kind string, content []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	zr, err := zlib.NewReader(f)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %w", ErrCorruptObject, path, err)
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %w", ErrCorruptObject, path, err)
	}
	return parseObject(path, raw)
}

// parseObject splits "<kind> <size>\x00<content>" and checks the size.
func parseObject(path string, raw []byte) (string, []byte, error) {
	nul := bytes.IndexByte(raw, 0)
	if nul < 0 {
		return "", nil, fmt.Errorf("%w: %s: missing header", ErrCorruptObject, path)
	}
	kind, size := pathutil.Tokenize(string(raw[:nul]), " ")
	n, err := strconv.Atoi(size)
	if err != nil || kind == "" {
		return "", nil, fmt.Errorf("%w: %s: bad header %q", ErrCorruptObject, path, raw[:nul])
	}
	content := raw[nul+1:]
	if n != len(content) {
		return "", nil, fmt.Errorf("%w: %s: size %d, header says %d", ErrCorruptObject, path, len(content), n)
	}
	return kind, content, nil
}

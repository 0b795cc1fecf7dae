package objstore

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"os"
	"strconv"
)

// Object kinds.
const (
	KindBlob   = "blob"
	KindTree   = "tree"
	KindCommit = "commit"
	KindTag    = "tag"
)

// header returns "<kind> <size>\x00".
func header(kind string, size int) []byte {
	h := make([]byte, 0, len(kind)+24)
	h = append(h, kind...)
	h = append(h, ' ')
	h = strconv.AppendInt(h, int64(size), 10)
	return append(h, 0)
}

// HashObject returns the object id of content stored as kind.
func HashObject(kind string, content []byte) string {
	h := sha1.New()
	h.Write(header(kind, len(content)))
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

// HashReader reads r to the end and returns the object id of its content
// stored as kind.
func HashReader(kind string, r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return HashObject(kind, content), nil
}

// HashFile returns the blob object id of the file at path.
func HashFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrExpectedFile
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return HashReader(KindBlob, file)
}

package objstore

import (
	"fmt"
	"strings"

	"github.com/dendrascience/gitpath/murmur"
	"github.com/dendrascience/gitpath/pathutil"
	"github.com/taigrr/colorhash"
)

// Buckets is the number of top-level directories LayoutBucket and
// LayoutMurmur spread objects over.
// recommendation for ext3 is no more than 32000 files per directory
// so if you increase this, don't increase it by too much
const Buckets = 1000

// Layout decides where an object lives relative to the store root.
type Layout int

const (
	LayoutFanout Layout = iota
	LayoutBucket
	LayoutMurmur
)

var layoutNames = []string{"fanout", "bucket", "murmur"}

func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return fmt.Sprintf("Layout(%d)", int(l))
	}
	return layoutNames[l]
}

// ParseLayout returns the Layout named s.
func ParseLayout(s string) (Layout, error) {
	for i, name := range layoutNames {
		if strings.EqualFold(s, name) {
			return Layout(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// ValidOID reports whether s is 40 lowercase hex digits.
func ValidOID(s string) bool {
	if len(s) != 40 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// RelPath returns the path of oid relative to a store root.
func RelPath(l Layout, oid string, seed uint32) (string, error) {
	if !ValidOID(oid) {
		return "", fmt.Errorf("%w: %q", ErrInvalidOID, oid)
	}
	switch l {
	case LayoutFanout:
		return pathutil.Join(oid[:2], oid[2:]), nil
	case LayoutBucket:
		name := bucketName(oid, subbucketFromOID(oid))
		return pathutil.Join(bucketPrefix(name), name), nil
	case LayoutMurmur:
		return pathutil.Join(murmurBucket(oid, seed), oid), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownLayout, int(l))
	}
}

// OIDFromPath recovers the object id from an object path written with layout
// l. Only the trailing components are examined, so p may be absolute or
// relative to any directory.
func OIDFromPath(l Layout, p string, seed uint32) (string, error) {
	name := pathutil.Basename(p)
	parent := pathutil.Basename(pathutil.Dirname(p))

	var oid string
	switch l {
	case LayoutFanout:
		if len(parent) != 2 {
			return "", fmt.Errorf("%w: %q", ErrInvalidObjectPath, p)
		}
		oid = parent + name
	case LayoutBucket:
		oid = oidFromBucketName(name)
	case LayoutMurmur:
		oid = name
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownLayout, int(l))
	}

	want, err := RelPath(l, oid, seed)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidObjectPath, p)
	}
	// the directories must agree with the ones the id hashes to
	if pathutil.SuffixCmp(p, want) != 0 || (len(p) > len(want) && p[len(p)-len(want)-1] != '/') {
		return "", fmt.Errorf("%w: %q is not where %s belongs", ErrInvalidObjectPath, p, oid)
	}
	return oid, nil
}

// bucketName generates the content-addressed file name "bucket-subbucket-oid"
// (e.g. "742-00017-abc123..."). The bucket is a color hash of the id modulo
// Buckets; the subbucket spreads a crowded bucket further.
func bucketName(oid string, subbucket int) string {
	bucket := colorhash.HashString(oid) % Buckets
	if bucket < 0 {
		bucket = -bucket
	}
	return fmt.Sprintf("%d-%05d-%s", bucket, subbucket, oid)
}

// bucketPrefix turns "742-00017-abc..." into the directory "742/00017".
func bucketPrefix(name string) string {
	bucket, rest := pathutil.Tokenize(name, "-")
	subbucket, _ := pathutil.Tokenize(rest, "-")
	return pathutil.Join(bucket, subbucket)
}

// oidFromBucketName extracts the id from "bucket-subbucket-oid".
func oidFromBucketName(name string) string {
	i := strings.LastIndexByte(name, '-')
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

// subbucketFromOID returns a value from 0-99999 taken from the last five
// hex digits of the id.
func subbucketFromOID(oid string) int {
	if len(oid) < 5 {
		return 0
	}
	var subbucket int
	for i := len(oid) - 5; i < len(oid); i++ {
		subbucket = subbucket*16 + hexCharToInt(oid[i])
	}
	return subbucket % 100000
}

// hexCharToInt converts a hex character to its integer value.
func hexCharToInt(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c - 'a' + 10)
	case c >= 'A' && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return 0
	}
}

func murmurBucket(oid string, seed uint32) string {
	return fmt.Sprintf("%03d", murmur.Sum32String(oid, seed)%Buckets)
}

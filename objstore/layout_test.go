package objstore

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloOID = "95d09f2b10159347eece71399a7e2e907ea3df4f"

func TestRelPath(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		seed   uint32
		want   string
	}{
		{"fanout", LayoutFanout, 0, "95/d09f2b10159347eece71399a7e2e907ea3df4f"},
		{"murmur", LayoutMurmur, 0, "563/" + helloOID},
		{"murmur seeded", LayoutMurmur, 7, "315/" + helloOID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelPath(tt.layout, helloOID, tt.seed)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelPath_Bucket(t *testing.T) {
	got, err := RelPath(LayoutBucket, helloOID, 0)
	require.NoError(t, err)

	// Should be in format "bucket/subbucket/bucket-subbucket-oid"
	parts := strings.Split(got, "/")
	require.Len(t, parts, 3)
	assert.Equal(t, "53775", parts[1])
	assert.Equal(t, parts[0]+"-53775-"+helloOID, parts[2])
	assert.LessOrEqual(t, len(parts[0]), 3)
}

func TestRelPath_InvalidOID(t *testing.T) {
	for _, oid := range []string{"", "abc", strings.ToUpper(helloOID), helloOID + "0", "g" + helloOID[1:]} {
		_, err := RelPath(LayoutFanout, oid, 0)
		assert.True(t, errors.Is(err, ErrInvalidOID), "oid %q", oid)
	}
}

func TestOIDFromPath_RoundTrip(t *testing.T) {
	for _, layout := range []Layout{LayoutFanout, LayoutBucket, LayoutMurmur} {
		t.Run(layout.String(), func(t *testing.T) {
			s := New("/srv/repo.git/objects", layout, 99)
			p, err := s.ObjectPath(helloOID)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(p, "/srv/repo.git/objects/"))

			oid, err := s.ParseObjectPath(p)
			require.NoError(t, err)
			assert.Equal(t, helloOID, oid)
		})
	}
}

func TestOIDFromPath_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		path   string
	}{
		{"fanout wrong directory width", LayoutFanout, "objects/95d/09f2b10159347eece71399a7e2e907ea3df4f"},
		{"fanout trailing separator", LayoutFanout, "objects/95/d09f2b10159347eece71399a7e2e907ea3df4f/"},
		{"fanout short name", LayoutFanout, "objects/95/d09f"},
		{"fanout not an object", LayoutFanout, "objects/info/packs"},
		{"murmur wrong bucket", LayoutMurmur, "objects/000/" + helloOID},
		{"murmur glued bucket", LayoutMurmur, "objects/x563/" + helloOID},
		{"bucket no separators", LayoutBucket, "objects/" + helloOID},
		{"bucket wrong directory", LayoutBucket, "objects/1/2/1-2-" + helloOID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OIDFromPath(tt.layout, tt.path, 0)
			assert.True(t, errors.Is(err, ErrInvalidObjectPath), "got %v", err)
		})
	}
}

func TestParseLayout(t *testing.T) {
	for _, l := range []Layout{LayoutFanout, LayoutBucket, LayoutMurmur} {
		got, err := ParseLayout(strings.ToUpper(l.String()))
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	_, err := ParseLayout("flat")
	assert.True(t, errors.Is(err, ErrUnknownLayout))
	assert.Equal(t, "Layout(9)", Layout(9).String())
}

func TestSubbucketFromOID(t *testing.T) {
	tests := []struct {
		oid  string
		want int
	}{
		{helloOID, 53775},
		{"0000000000", 0},
		{"ffffffffff", 0xfffff % 100000},
		{"abc", 0}, // Short ids return 0
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, subbucketFromOID(tt.oid), tt.oid)
	}
}

func TestHexCharToInt(t *testing.T) {
	tests := []struct {
		input byte
		want  int
	}{
		{'0', 0}, {'1', 1}, {'9', 9},
		{'a', 10}, {'b', 11}, {'f', 15},
		{'A', 10}, {'B', 11}, {'F', 15},
		{'g', 0}, {'z', 0}, {' ', 0}, // Invalid chars return 0
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, hexCharToInt(tt.input), "hexCharToInt(%q)", tt.input)
	}
}

func TestBucketNameHelpers(t *testing.T) {
	name := bucketName(helloOID, 1)
	assert.True(t, strings.HasSuffix(name, "-00001-"+helloOID))
	assert.Equal(t, helloOID, oidFromBucketName(name))
	assert.Equal(t, "", oidFromBucketName("nodashes"))

	prefix := bucketPrefix("742-00001-" + helloOID)
	assert.Equal(t, "742/00001", prefix)
}

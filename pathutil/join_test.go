package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"separators on both sides", "a/", "/b", "a/b"},
		{"no separators", "a", "b", "a/b"},
		{"empty first", "", "b", "b"},
		{"empty first keeps absolute second", "", "/b", "/b"},
		{"empty second", "a", "", "a/"},
		{"empty second with separator", "a/", "", "a/"},
		{"both empty", "", "", ""},
		{"separator run in first passes through", "a//", "b", "a//b"},
		{"leading run in second is dropped", "a", "//b", "a/b"},
		{"internal runs pass through", "a/x//y", "z//w", "a/x//y/z//w"},
		{"root", "/", "b", "/b"},
		{"object fan-out", ".git/objects", "ab/cdef", ".git/objects/ab/cdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.a, tt.b))
			assert.Equal(t, "p="+tt.want, string(AppendJoin([]byte("p="), tt.a, tt.b)))
		})
	}
}

func TestAppendJoin_SingleGrowth(t *testing.T) {
	dst := make([]byte, 0, 64)

	allocs := testing.AllocsPerRun(100, func() {
		dst = AppendJoin(dst[:0], ".git/objects", "/ab/cdef")
	})
	assert.Zero(t, allocs)
	assert.Equal(t, ".git/objects/ab/cdef", string(dst))
}

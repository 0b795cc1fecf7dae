package murmur

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fox = "The quick brown fox jumps over the lazy dog"

func TestSum32(t *testing.T) {
	tests := []struct {
		name  string
		input string
		seed  uint32
		want  uint32
	}{
		{"empty", "", 0, 0x00000000},
		{"empty seeded", "", 1, 0x5bd15e36},
		{"one byte tail", "a", 0, 0x92685f5e},
		{"two byte tail", "ab", 0, 0x1aa14063},
		{"three byte tail", "abc", 0, 0x13577c9b},
		{"one block", "abcd", 0, 0x26873021},
		{"block and tail", "hello", 0, 0xe56129cb},
		{"block and tail seeded", "hello", 1, 0xa631918e},
		{"sentence", fox, 0, 0x212729d0},
		{"sentence seeded", fox, 0x9747b28c, 0x1d84d036},
		{"ref name", "refs/heads/main", 0, 0x1d120d09},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sum32([]byte(tt.input), tt.seed))
			assert.Equal(t, tt.want, Sum32String(tt.input, tt.seed))
		})
	}
}

func TestSum32_Deterministic(t *testing.T) {
	data := []byte(fox)
	assert.Equal(t, Sum32(data, 42), Sum32(data, 42))
}

func TestSum32_SeedChangesOutput(t *testing.T) {
	data := []byte("objects/ab/cdef0123456789")
	seen := make(map[uint32]uint32)
	for seed := uint32(0); seed < 64; seed++ {
		h := Sum32(data, seed)
		prev, dup := seen[h]
		assert.False(t, dup, "seeds %d and %d collide", prev, seed)
		seen[h] = seed
	}
}

func TestSum32String_DoesNotAllocate(t *testing.T) {
	s := strings.Repeat("x", 1024)
	allocs := testing.AllocsPerRun(100, func() {
		_ = Sum32String(s, 7)
	})
	assert.Zero(t, allocs)
}

func TestNew(t *testing.T) {
	h := New(0x9747b28c)
	assert.Equal(t, 4, h.Size())
	assert.Equal(t, 4, h.BlockSize())

	// split across writes so blocks straddle Write boundaries
	_, err := io.WriteString(h, fox[:5])
	require.NoError(t, err)
	_, err = io.WriteString(h, fox[5:])
	require.NoError(t, err)

	assert.Equal(t, uint32(0x1d84d036), h.Sum32())
	assert.Equal(t, []byte{0xff, 0x1d, 0x84, 0xd0, 0x36}, h.Sum([]byte{0xff}))

	h.Reset()
	assert.Equal(t, Sum32(nil, 0x9747b28c), h.Sum32())
}

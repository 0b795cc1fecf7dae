package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"refs/heads/main", true},
		{"refs/heads/feature/login", true},
		{"refs/tags/v1.0.2", true},
		{"refs/stash", true},
		{"refs/remotes/origin/HEAD", true},
		{"", false},
		{"refs", false},
		{"refs/", false},
		{"heads/main", false},
		{"HEAD", false},
		{"refs/heads/", false},
		{"refs//main", false},
		{"refs/heads/.hidden", false},
		{"refs/heads/a..b", false},
		{"refs/heads/main.lock", false},
		{"refs/heads/main.lock/x", false},
		{"refs/heads/with space", false},
		{"refs/heads/a@{1}", false},
		{"refs/heads/a~1", false},
		{"refs/heads/tab\tname", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.name))
		})
	}
}

func TestShorten(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"refs/heads/main", "main"},
		{"refs/heads/feature/login", "feature/login"},
		{"refs/tags/v1", "v1"},
		{"refs/remotes/origin/main", "origin/main"},
		{"refs/notes/commits", "refs/notes/commits"},
		{"refs/heads/", "refs/heads/"},
		{"HEAD", "HEAD"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Shorten(tt.in), tt.in)
	}
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/srv/repo.git/refs/heads/main", Path("/srv/repo.git", "refs/heads/main"))
	assert.Equal(t, "/srv/repo.git/refs/tags/v1", Path("/srv/repo.git/", "refs/tags/v1"))
	assert.Equal(t, "refs/heads/main", Path("", "refs/heads/main"))
}

func TestRef_Symbolic(t *testing.T) {
	assert.True(t, Ref{Name: "refs/remotes/origin/HEAD", Target: "ref: refs/remotes/origin/main"}.Symbolic())
	assert.False(t, Ref{Name: "refs/heads/main", Target: "95d09f2b10159347eece71399a7e2e907ea3df4f"}.Symbolic())
}

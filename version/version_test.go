package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLdflagsTakePrecedence(t *testing.T) {
	origV, origC, origD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = origV, origC, origD })

	Version, Commit, Date = "v1.2.3", "0123456789abcdef", "2026-01-02T03:04:05Z"

	assert.Equal(t, "v1.2.3", GetVersion())
	assert.Equal(t, "0123456789abcdef", GetCommit())
	assert.Equal(t, "2026-01-02T03:04:05Z", GetBuildDate())
	assert.Equal(t, "v1.2.3 (0123456, built 2026-01-02T03:04:05Z)", GetFullVersion())

	var buf bytes.Buffer
	PrintVersion(&buf, "gitpath")
	assert.Equal(t, "gitpath version v1.2.3 (0123456, built 2026-01-02T03:04:05Z)\n"+
		"Package: github.com/dendrascience/gitpath\n"+
		"Commit: 0123456789abcdef\n"+
		"Build Date: 2026-01-02T03:04:05Z\n", buf.String())
}

func TestShortCommitOmitted(t *testing.T) {
	origV, origC := Version, Commit
	t.Cleanup(func() { Version, Commit = origV, origC })

	Version, Commit = "v1.0.0", "abc"
	assert.Equal(t, "v1.0.0", GetFullVersion())
}

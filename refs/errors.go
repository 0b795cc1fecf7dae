package refs

import "errors"

var (
	ErrInvalidName   = errors.New("invalid reference name")
	ErrInvalidTarget = errors.New("invalid reference target")
	ErrNotGitDir     = errors.New("not a git directory")
)

// Package version reports the gitpath build: a version, commit and build date
// injected with -ldflags, falling back to what debug.ReadBuildInfo records
// for `go install` builds and to development defaults otherwise.
//
//	go build -ldflags "-X github.com/dendrascience/gitpath/version.Version=v0.3.0 \
//	  -X github.com/dendrascience/gitpath/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/dendrascience/gitpath/version.Date=$(date -u +%FT%TZ)"
package version

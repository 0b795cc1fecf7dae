package objstore

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/dendrascience/gitpath/pathutil"
	"github.com/sourcegraph/conc/pool"
)

// Problem describes one object that failed verification.
type Problem struct {
	Path string
	OID  string // empty when the path could not be parsed
	Err  error
}

func (p Problem) String() string {
	if p.OID == "" {
		return fmt.Sprintf("%s: %v", p.Path, p.Err)
	}
	return fmt.Sprintf("%s (%s): %v", p.Path, p.OID, p.Err)
}

// Report is the result of Verify.
type Report struct {
	Checked  int
	Problems []Problem
}

// OK reports whether every object verified.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// Verify walks the store, checks every file is named for its content and
// returns what it found. Objects are re-hashed concurrently by at most
// workers goroutines; workers < 1 means runtime.NumCPU(). The error is non-nil
// only when the walk itself fails or ctx is cancelled.
func (s *Store) Verify(ctx context.Context, workers int) (Report, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	var (
		mu     sync.Mutex
		report Report
	)
	addProblem := func(p Problem) {
		mu.Lock()
		report.Problems = append(report.Problems, p)
		mu.Unlock()
	}

	p := pool.New().WithMaxGoroutines(workers).WithContext(ctx)
	walkErr := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || pathutil.PrefixCmp(d.Name(), tmpPrefix) == 0 {
			return nil
		}

		path = filepath.ToSlash(path)
		oid, err := s.ParseObjectPath(path)
		if err != nil {
			addProblem(Problem{Path: path, Err: err})
			return nil
		}

		p.Go(func(ctx context.Context) error {
			if err := checkObject(path, oid); err != nil {
				addProblem(Problem{Path: path, OID: oid, Err: err})
			}
			mu.Lock()
			report.Checked++
			mu.Unlock()
			return nil
		})
		return nil
	})
	poolErr := p.Wait()

	sort.Slice(report.Problems, func(i, j int) bool {
		return report.Problems[i].Path < report.Problems[j].Path
	})
	if walkErr != nil {
		return report, fmt.Errorf("error walking object store %s: %w", s.Root, walkErr)
	}
	if poolErr != nil {
		return report, poolErr
	}
	return report, ctx.Err()
}

func checkObject(path, oid string) error {
	kind, content, err := readObject(path)
	if err != nil {
		return err
	}
	if got := HashObject(kind, content); got != oid {
		return fmt.Errorf("%w: content hashes to %s", ErrCorruptObject, got)
	}
	return nil
}

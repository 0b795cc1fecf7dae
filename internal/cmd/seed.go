package cmd

import (
	"fmt"
	"os"

	"github.com/dendrascience/gitpath/objstore"
	"github.com/dendrascience/gitpath/pathutil"
	"github.com/dendrascience/gitpath/refs"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the gitpath CLI.
// It fills an object store with generated blobs for testing layouts.
func NewSeedCmd(app *App) *cobra.Command {
	var (
		count  int
		gitDir string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the object store with generated blobs",
		Long: `Generate test objects for exercising a layout.

Each blob holds a single UUID line, so every object is distinct and the ids
spread evenly across the store's directories. With --git-dir a tag
reference is written for every object under refs/tags/seed/.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			return runSeed(app, count, gitDir)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 1000, "Number of objects to generate")
	cmd.Flags().StringVar(&gitDir, "git-dir", "", "Also write a tag reference for every object in this git directory")
	addStoreFlags(cmd)

	return cmd
}

func runSeed(app *App, count int, gitDir string) error {
	s := app.Store()
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return fmt.Errorf("failed to create object store: %w", err)
	}
	app.Log.Info().Str("root", s.Root).Stringer("layout", s.Layout).Int("count", count).Msg("seeding object store")

	dirs := make(map[string]int)
	for i := 0; i < count; i++ {
		oid, err := s.Write(objstore.KindBlob, []byte(uuid.NewString()+"\n"))
		if err != nil {
			return err
		}
		p, _ := s.ObjectPath(oid)
		dirs[pathutil.Dirname(p)]++

		if gitDir != "" {
			if err := writeRef(gitDir, fmt.Sprintf("refs/tags/seed/%06d", i), oid); err != nil {
				return err
			}
		}

		if (i+1)%1000 == 0 {
			app.Log.Debug().Int("created", i+1).Int("total", count).Msg("progress")
		}
	}

	maxObjects, minObjects := 0, count
	for _, n := range dirs {
		maxObjects = max(maxObjects, n)
		minObjects = min(minObjects, n)
	}
	app.Log.Info().
		Int("objects", count).
		Int("directories", len(dirs)).
		Int("min_per_dir", minObjects).
		Int("max_per_dir", maxObjects).
		Msg("seed complete")
	return nil
}

func writeRef(gitDir, name, oid string) error {
	if !refs.Valid(name) {
		return fmt.Errorf("%w: %q", refs.ErrInvalidName, name)
	}
	p := refs.Path(gitDir, name)
	if err := os.MkdirAll(pathutil.Dirname(p), 0o755); err != nil {
		return fmt.Errorf("failed to create reference directory: %w", err)
	}
	if err := os.WriteFile(p, []byte(oid+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write reference %s: %w", name, err)
	}
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dendrascience/gitpath/objstore"
	"github.com/spf13/cobra"
)

// NewObjectPathCmd prints where objects live in the store, or with --parse
// the object id a store path names.
func NewObjectPathCmd(app *App) *cobra.Command {
	var parse bool

	cmd := &cobra.Command{
		Use:   "object-path OID...",
		Short: "Print the store path of each object id",
		Long: `Print the path each object id is stored at under the configured layout.

With --parse the arguments are store paths and the object id each one names
is printed instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Store()
			for _, a := range args {
				var (
					out string
					err error
				)
				if parse {
					out, err = s.ParseObjectPath(a)
				} else {
					out, err = s.ObjectPath(a)
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&parse, "parse", "p", false, "Treat arguments as store paths and print their object ids")
	addStoreFlags(cmd)

	return cmd
}

// NewWriteObjectCmd stores files as loose objects and prints their ids.
func NewWriteObjectCmd(app *App) *cobra.Command {
	var (
		kind   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "write-object [FILE...]",
		Short: "Store files as loose objects",
		Long: `Compress each file into the object store and print its object id.
A FILE of "-", or no FILE at all, reads standard input. Objects that are
already present are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validKind(kind) {
				return fmt.Errorf("unknown object kind %q", kind)
			}
			if len(args) == 0 {
				args = []string{"-"}
			}

			s := app.Store()
			for _, a := range args {
				content, err := readInput(cmd, a)
				if err != nil {
					return err
				}

				var oid string
				if dryRun {
					oid = objstore.HashObject(kind, content)
				} else {
					existed := s.Has(objstore.HashObject(kind, content))
					if oid, err = s.Write(kind, content); err != nil {
						return err
					}
					app.Log.Debug().Str("oid", oid).Str("source", a).Bool("existed", existed).Msg("object written")
				}
				fmt.Fprintln(cmd.OutOrStdout(), oid)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", objstore.KindBlob, "Object kind: blob, tree, commit or tag")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print object ids without writing")
	addStoreFlags(cmd)

	return cmd
}

func validKind(k string) bool {
	switch k {
	case objstore.KindBlob, objstore.KindTree, objstore.KindCommit, objstore.KindTag:
		return true
	}
	return false
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return data, nil
	}
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", name, objstore.ErrExpectedFile)
	}
	return os.ReadFile(name)
}

package cmd

import (
	"fmt"

	"github.com/dendrascience/gitpath/refs"
	"github.com/spf13/cobra"
)

// NewRefsCmd lists the references of a git directory.
func NewRefsCmd(app *App) *cobra.Command {
	var (
		prefix     string
		short      bool
		namespaces bool
	)

	cmd := &cobra.Command{
		Use:   "refs [GIT_DIR]",
		Short: "List the references in a git directory",
		Long: `Load packed and loose references from GIT_DIR (default .git) and print
each one with its target, sorted by name. Loose references take precedence
over packed ones.`,
		Example: `  gitpath refs --prefix refs/heads/ --short
  gitpath refs --namespaces /srv/repo.git`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gitDir := ".git"
			if len(args) == 1 {
				gitDir = args[0]
			}

			idx := refs.NewIndex()
			n, err := idx.Load(gitDir)
			if err != nil {
				return err
			}
			app.Log.Debug().Str("git_dir", gitDir).Int("refs", n).Msg("references loaded")

			out := cmd.OutOrStdout()
			if namespaces {
				for _, ns := range idx.Namespaces() {
					fmt.Fprintln(out, ns)
				}
				return nil
			}
			for _, r := range idx.List(prefix) {
				name := r.Name
				if short {
					name = refs.Shorten(name)
				}
				fmt.Fprintf(out, "%s %s\n", r.Target, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", refs.Prefix, "Only list references starting with this prefix")
	cmd.Flags().BoolVarP(&short, "short", "s", false, "Strip refs/heads/, refs/tags/ and refs/remotes/ from names")
	cmd.Flags().BoolVar(&namespaces, "namespaces", false, "List the namespaces under refs/ instead of references")

	return cmd
}

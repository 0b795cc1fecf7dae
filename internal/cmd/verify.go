package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewVerifyCmd creates and returns the verify subcommand for the gitpath CLI.
// It re-hashes every object in the store and reports any whose content or
// location does not match its id.
func NewVerifyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every object in the store against its id",
		Long: `Walk the object store, decompress every object and check that its
content hashes to the id its path names. Files that are not named like an
object under the configured layout are reported too.

Objects are checked concurrently by up to --workers goroutines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Store()
			if _, err := os.Stat(s.Root); err != nil {
				return fmt.Errorf("object store does not exist: %s", s.Root)
			}

			app.Log.Info().Str("root", s.Root).Stringer("layout", s.Layout).Int("workers", app.Config.Verify.Workers).Msg("verifying object store")
			report, err := s.Verify(cmd.Context(), app.Config.Verify.Workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range report.Problems {
				fmt.Fprintf(out, "  - %s\n", p)
			}
			fmt.Fprintf(out, "Verification complete:\n")
			fmt.Fprintf(out, "  Objects checked: %d\n", report.Checked)
			fmt.Fprintf(out, "  Problems: %d\n", len(report.Problems))

			if !report.OK() {
				return fmt.Errorf("%d problems found in %s", len(report.Problems), s.Root)
			}
			return nil
		},
	}

	cmd.Flags().IntP("workers", "w", 0, "Number of objects to check concurrently (overrides verify.workers)")
	addStoreFlags(cmd)

	return cmd
}

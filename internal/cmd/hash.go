package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/dendrascience/gitpath/murmur"
	"github.com/spf13/cobra"
)

// NewHashCmd prints the MurmurHash2 of strings or files.
func NewHashCmd(app *App) *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "hash [STRING...]",
		Short: "Print the MurmurHash2 of strings or files",
		Long: `Print the 32-bit MurmurHash2 of each argument, or of each --file, as eight
hex digits followed by the input. With neither, standard input is hashed.

The seed comes from --seed, GITPATH_HASH_SEED or hash.seed in the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := app.Config.Hash.Seed
			out := cmd.OutOrStdout()

			for _, s := range args {
				fmt.Fprintf(out, "%08x  %s\n", murmur.Sum32String(s, seed), s)
			}
			for _, f := range files {
				data, err := os.ReadFile(f)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", f, err)
				}
				fmt.Fprintf(out, "%08x  %s\n", murmur.Sum32(data, seed), f)
			}
			if len(args) == 0 && len(files) == 0 {
				h := murmur.New(seed)
				if _, err := io.Copy(h, cmd.InOrStdin()); err != nil {
					return fmt.Errorf("failed to read standard input: %w", err)
				}
				fmt.Fprintf(out, "%08x  -\n", h.Sum32())
			}

			app.Log.Debug().Uint32("seed", seed).Int("strings", len(args)).Int("files", len(files)).Msg("hashed")
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "Hash the contents of a file (repeatable)")
	cmd.Flags().Uint32("seed", 0, "Hash seed (overrides hash.seed)")

	return cmd
}

// NewHexdumpCmd prints a canonical hex+ASCII dump of a file or standard input.
func NewHexdumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hexdump [FILE]",
		Short: "Print a hex and ASCII dump of a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			d := hex.Dumper(cmd.OutOrStdout())
			if _, err := io.Copy(d, r); err != nil {
				d.Close()
				return err
			}
			return d.Close()
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/dendrascience/gitpath/pathutil"
	"github.com/spf13/cobra"
)

// NewDirnameCmd prints the directory part of each argument.
func NewDirnameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dirname PATH...",
		Short: "Print the directory part of each path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range args {
				fmt.Fprintln(cmd.OutOrStdout(), pathutil.Dirname(p))
			}
			return nil
		},
	}
}

// NewBasenameCmd prints the final component of each argument.
func NewBasenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "basename PATH...",
		Short: "Print the file name and extension of each path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range args {
				fmt.Fprintln(cmd.OutOrStdout(), pathutil.Basename(p))
			}
			return nil
		},
	}
}

// NewSplitCmd prints the components of each argument selected by flags.
func NewSplitCmd() *cobra.Command {
	var dir, file, ext, noPeriod bool

	cmd := &cobra.Command{
		Use:   "split PATH...",
		Short: "Print selected components of each path",
		Long: `Print the components of each path selected by --dir, --file and --ext,
in path order. With no selection flags every component is printed, which
reproduces the path with any trailing separators removed.

--no-period drops the '.' that starts the extension.`,
		Example: `  gitpath split --file --ext src/main.go    # main.go
  gitpath split --dir src/main.go           # src
  gitpath split --ext --no-period a/b.tar.gz # gz`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := splitMask(dir, file, ext, noPeriod)
			for _, p := range args {
				fmt.Fprintln(cmd.OutOrStdout(), pathutil.Split(p, m))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dir, "dir", "d", false, "Include the directory")
	cmd.Flags().BoolVarP(&file, "file", "f", false, "Include the file name")
	cmd.Flags().BoolVarP(&ext, "ext", "e", false, "Include the extension")
	cmd.Flags().BoolVar(&noPeriod, "no-period", false, "Omit the period before the extension")

	return cmd
}

func splitMask(dir, file, ext, noPeriod bool) pathutil.Mask {
	var m pathutil.Mask
	if dir {
		m |= pathutil.SplitPath
	}
	if file {
		m |= pathutil.SplitFile
	}
	if ext {
		m |= pathutil.SplitExt
	}
	if m == 0 {
		m = pathutil.SplitAll
	}
	if noPeriod {
		m |= pathutil.SplitExtNoPeriod
	}
	return m
}

// NewJoinCmd joins two path fragments.
func NewJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join BASE PATH",
		Short: "Join two paths with exactly one separator",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), pathutil.Join(args[0], args[1]))
			return nil
		},
	}
}

// NewTopdirCmd prints the first directory component of a path.
func NewTopdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topdir PATH",
		Short: "Print the first directory component of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, ok := pathutil.Topdir(args[0])
			if !ok {
				return fmt.Errorf("%q has no directory component", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

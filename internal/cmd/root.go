package cmd

import (
	"io"
	"os"
	"time"

	"github.com/dendrascience/gitpath/internal/config"
	"github.com/dendrascience/gitpath/objstore"
	"github.com/dendrascience/gitpath/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	groupPath    = "path"
	groupObjects = "objects"
)

// App carries what PersistentPreRunE resolves for the command being run.
type App struct {
	Config *config.Config
	Log    zerolog.Logger

	configPath string
}

// Store returns the object store named by the configuration.
func (a *App) Store() *objstore.Store {
	return objstore.New(a.Config.Objects.Dir, a.Config.Layout(), a.Config.Hash.Seed)
}

func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.Config = cfg
	a.Log = newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	a.Log.Debug().
		Str("command", cmd.CommandPath()).
		Str("objects", cfg.Objects.Dir).
		Stringer("layout", cfg.Layout()).
		Uint32("seed", cfg.Hash.Seed).
		Msg("configuration loaded")
	return nil
}

// newLogger writes human-readable lines to terminals and JSON elsewhere.
// level has already been validated by config.Load.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// NewRootCmd creates and returns the root cobra command for the gitpath CLI.
// It sets up all subcommands, command groups, and the persistent flags.
func NewRootCmd() *cobra.Command {
	app := &App{Log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "gitpath",
		Short: "gitpath - path primitives and a loose object store",
		Long: `gitpath splits, joins and hashes paths the way a version-control system
stores them, and uses those primitives to lay out a directory of loose
content-addressed objects.

Use subcommands to perform different operations:
  - dirname, basename, split, join, topdir: decompose and build paths
  - hash, hexdump: inspect strings and files
  - object-path, write-object, verify, seed: work with an object store
  - refs: list references in a git directory`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "Path to config file (default: ./gitpath.yaml or ~/.config/gitpath/gitpath.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupPath,
		Title: "Path Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupObjects,
		Title: "Object Store",
	})

	for _, c := range []*cobra.Command{
		NewDirnameCmd(),
		NewBasenameCmd(),
		NewSplitCmd(),
		NewJoinCmd(),
		NewTopdirCmd(),
		NewHashCmd(app),
		NewHexdumpCmd(),
	} {
		c.GroupID = groupPath
		rootCmd.AddCommand(c)
	}

	for _, c := range []*cobra.Command{
		NewObjectPathCmd(app),
		NewWriteObjectCmd(app),
		NewVerifyCmd(app),
		NewSeedCmd(app),
		NewRefsCmd(app),
	} {
		c.GroupID = groupObjects
		rootCmd.AddCommand(c)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// addStoreFlags registers the flags that override objects.* settings.
func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().String("objects", "", "Object store directory (overrides objects.dir)")
	cmd.Flags().String("layout", "", "Object layout: fanout, bucket or murmur (overrides objects.layout)")
	cmd.Flags().Uint32("seed", 0, "MurmurHash2 seed for the murmur layout (overrides hash.seed)")
}

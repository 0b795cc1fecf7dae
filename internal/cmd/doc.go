// Package cmd provides the command-line interface implementation for gitpath.
//
// It uses the Cobra library for command structure and Fang for styling. The
// commands fall into two groups:
//   - Path Operations: dirname, basename, split, join, topdir, hash, hexdump
//   - Object Store: object-path, write-object, verify, seed, refs
//
// Each command is built by its own constructor returning a *cobra.Command.
// The root command's PersistentPreRunE loads the configuration (file,
// GITPATH_* environment, then flags) and builds the zerolog logger that the
// object store commands report through. Output meant for pipes goes to the
// command's stdout; logs go to stderr.
package cmd

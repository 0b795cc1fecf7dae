// Package main provides the gitpath command-line interface.
//
// gitpath exposes the path primitives a version-control system is built on
// (splitting a path into directory, file name and extension, joining, and
// hashing names with MurmurHash2) and a loose object store laid out with
// them. The binary supports these subcommands:
//   - dirname, basename, split, join, topdir: path decomposition
//   - hash, hexdump: inspect strings and files
//   - object-path, write-object, verify, seed: work with an object store
//   - refs: list the references of a git directory
package main

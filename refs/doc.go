// Package refs maps git reference names to paths under a git directory and
// keeps an in-memory index of the references a repository holds.
//
// Names are validated component by component: every name lives under
// "refs/", and no component may be empty, start with a dot or end in
// ".lock". The Index is a radix tree, so listing every reference under a
// prefix such as "refs/heads/" walks only that subtree. It is safe for
// concurrent use.
package refs

// Package pathutil provides lexical path-string manipulation for the gitpath
// object store.
//
// Every function here works on the bytes of a path and never consults the
// filesystem: no symlinks are resolved, no Unicode normalization is applied and
// nothing is cleaned beyond what each function documents. '/' is the only
// separator. On Windows a drive prefix such as "c:" belongs to the directory
// component.
//
// Key Components:
//
// Splitting:
//   - Split, AppendSplit, SplitInto and SplitInPlace select the directory,
//     filename and extension of a path through a Mask
//   - Dirname and Basename (and their Into variants) are splits with a fixed mask
//   - Topdir returns the first directory segment as a view into its input
//
// Joining:
//   - Join and AppendJoin concatenate two fragments and normalize only the seam
//
// Tokens and comparisons:
//   - PrefixCmp and SuffixCmp compare with C-style ordering results
//   - Tokenize and TokenizeKeep walk delimiter-separated strings
//
// Allocation:
//   - Split, Dirname and Basename return substrings of their input whenever the
//     requested components are adjacent, so the common cases never allocate
//   - Into variants write into caller storage and fail with a
//     *BufferTooSmallError instead of writing past it
//   - SplitInPlace only ever shortens the caller's buffer
//
// All functions are safe for concurrent use.
package pathutil

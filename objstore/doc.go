// Package objstore stores content-addressed loose objects on disk.
//
// An object is identified by the SHA-1 of a git-style header ("<kind> <size>\x00")
// followed by its content, written as 40 lowercase hex digits. Objects are
// zlib-compressed and placed under a root directory according to a Layout:
//
//   - LayoutFanout: ab/cdef... (the first two hex digits name a directory)
//   - LayoutBucket: 742/00017/742-00017-abcdef... (a color-hash bucket and a
//     subbucket taken from the last five hex digits)
//   - LayoutMurmur: 318/abcdef... (MurmurHash2 of the id, modulo 1000)
//
// Every path is built with pathutil.Join and parsed back with pathutil's
// Basename and Dirname, so ParseObjectPath(ObjectPath(oid)) == oid for every
// layout.
//
// Writes go to a uniquely named temporary file next to their destination and
// are renamed into place. Verify re-hashes every object under the root using a
// bounded worker pool.
package objstore

// Package naming resolves collision-free destination paths for converted
// subtitle files.
//
// A destination is assembled from the source file's name (or an explicit base
// name), an optional suffix, and the source extension. When the desired path
// is taken, a random alphanumeric slug is inserted before the suffix and
// grown by one character per retry until a free path is found. The live
// filesystem is the only collision registry: every attempt re-checks
// existence on disk.
package naming

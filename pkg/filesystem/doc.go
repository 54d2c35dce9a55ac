// Package filesystem provides the filesystem abstraction used by projects
// and the repository engine.
//
// The FS interface covers the handful of operations the engine needs:
// stat/lstat, directory listing, symlink creation and removal. The default
// implementation is backed by afero's OS filesystem; symlink-aware calls go
// through afero's optional Linker and Lstater interfaces.
package filesystem

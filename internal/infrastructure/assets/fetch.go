package assets

import "io/fs"

// Fetcher retrieves the raw bytes behind an asset URL. The production
// fetcher reads from the configured asset root; tests substitute an
// in-memory filesystem.
type Fetcher interface {
	Fetch(url string) ([]byte, error)
}

// FSFetcher serves asset URLs as paths in an fs.FS.
type FSFetcher struct {
	fsys fs.FS
}

// NewFSFetcher creates a fetcher over the given filesystem.
func NewFSFetcher(fsys fs.FS) *FSFetcher {
	return &FSFetcher{fsys: fsys}
}

// Fetch reads the file at the given path.
func (f *FSFetcher) Fetch(url string) ([]byte, error) {
	return fs.ReadFile(f.fsys, url)
}

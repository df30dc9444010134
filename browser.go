package main

import (
	"errors"
)

// Browser resolves packages and lists their source trees.
type Browser struct {
	Resolver Resolver
	Walker   *TreeWalker
}

// RequirePackage resolves name and walks the package root. The listing is
// rebuilt from disk on every call. It fails with a *ResolutionError when
// the package cannot be found and with a *ScanError when the tree cannot
// be read; no partial listing is returned in either case.
func (b *Browser) RequirePackage(name string) ([]Entry, error) {
	root, err := b.Resolver.Resolve(name)
	if err != nil {
		var resolutionErr *ResolutionError
		if !errors.As(err, &resolutionErr) {
			err = &ResolutionError{Name: name, Err: err}
		}
		return nil, err
	}

	return b.Walker.Walk(root)
}

package main

import (
	"errors"
	"fmt"
)

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrUnknownLanguage = errors.New("unknown language")
	ErrBinaryContent   = errors.New("content looks binary")
)

// ResolutionError is returned when a package name cannot be mapped to a
// root directory.
type ResolutionError struct {
	Name string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve package %q: %v", e.Name, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// ScanError is returned when a directory cannot be read during a walk.
// The whole walk fails; no partial listing is kept.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("error scanning %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// HighlightError reports a failed highlighting attempt. The presenter
// recovers from it and it never leaves this package.
type HighlightError struct {
	Language string // Empty for automatic detection
	Err      error
}

func (e *HighlightError) Error() string {
	if e.Language == "" {
		return fmt.Sprintf("automatic highlighting failed: %v", e.Err)
	}
	return fmt.Sprintf("highlighting as %s failed: %v", e.Language, e.Err)
}

func (e *HighlightError) Unwrap() error { return e.Err }

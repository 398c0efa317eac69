// Package fileutil provides the filesystem enumeration used for asset
// discovery: a single, non-recursive directory listing with compound-suffix
// filtering and error-tolerant scanning.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ewen/folio/internal/identity"
)

// Options configures directory enumeration.
type Options struct {
	// Suffix keeps only files whose name ends with this exact tail
	// (e.g. ".spell.yaml"). Compound suffixes are matched as a whole, not by
	// the final extension. Empty means no suffix filtering.
	Suffix string
	// SkipHidden excludes files whose name starts with "." or "_". Load
	// cycles leave this false and apply eligibility themselves; listings that
	// only want eligible files set it.
	SkipHidden bool
}

// Result contains the outcome of one enumeration.
type Result struct {
	// Files holds matched paths, sorted for deterministic output.
	Files []string
	// Errors collects non-fatal per-entry errors. Enumeration continues past
	// them.
	Errors []error
}

// Enumerate lists the files of a single directory matching opts.
// Subdirectories are never descended into. A missing or non-directory path is
// a fatal error; per-entry problems are collected in Result.Errors instead.
func Enumerate(dir string, opts Options) (*Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	result := &Result{
		Files:  make([]string, 0, len(entries)),
		Errors: make([]error, 0),
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		if opts.Suffix != "" && !strings.HasSuffix(name, opts.Suffix) {
			continue
		}
		if opts.SkipHidden && identity.IsHiddenOrDisabled(name) {
			continue
		}

		path := filepath.Join(dir, name)
		if _, err := entry.Info(); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			continue
		}
		result.Files = append(result.Files, path)
	}

	sort.Strings(result.Files)
	return result, nil
}

// DirScanner adapts Enumerate to the load cycle's scanner contract for a
// fixed set of options. Non-fatal enumeration errors are forwarded to Warn
// when set, otherwise dropped.
type DirScanner struct {
	Opts Options
	Warn func(err error)
}

// Enumerate lists dir with the scanner's options.
func (s DirScanner) Enumerate(dir string) ([]string, error) {
	result, err := Enumerate(dir, s.Opts)
	if err != nil {
		return nil, err
	}
	if s.Warn != nil {
		for _, err := range result.Errors {
			s.Warn(err)
		}
	}
	return result.Files, nil
}

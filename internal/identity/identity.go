// Package identity derives strongly-typed asset identifiers from filenames.
//
// Asset files follow a naming convention of <stem><suffix>, where the suffix
// is the full matching tail including every dot (e.g. ".spell.yaml"). The stem
// becomes the asset's identifier. Files whose name starts with "." (hidden) or
// "_" (disabled) are never eligible for loading, regardless of suffix.
package identity

import (
	"path/filepath"
	"strings"
)

// Stem returns the filename of path with suffix removed, and true, when the
// filename ends with suffix. The match is case-sensitive and exact; only the
// final path component is examined. Returns ("", false) when the filename does
// not end with suffix.
//
// No trimming, casing, or normalization is applied beyond suffix removal. A
// filename that is exactly the suffix yields an empty stem; deciding whether
// that is acceptable is the caller's concern.
func Stem(path, suffix string) (string, bool) {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, suffix) {
		return "", false
	}
	return strings.TrimSuffix(name, suffix), true
}

// IsHiddenOrDisabled reports whether the filename of path marks it as hidden
// ("." prefix) or disabled ("_" prefix). Only the final path component is
// examined; parent directory segments never influence the result.
func IsHiddenOrDisabled(path string) bool {
	name := filepath.Base(path)
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// Deriver maps file paths to identifiers of type K for one naming convention.
//
// K carries the capability contract for identifiers: comparable (and therefore
// hashable and copyable) so it can key an index. New is the one-way conversion
// from a stem to an identifier; the deriver imposes no validation of its own,
// so unusual stems, including empty ones, are passed through to the constructor.
type Deriver[K comparable] struct {
	// Suffix is the full matching tail, including the leading dot
	// (e.g. ".spell.yaml").
	Suffix string
	// New converts a stem into an identifier.
	New func(string) K
}

// Derive returns the identifier for path and true when the filename matches
// the deriver's suffix, or the zero K and false when it does not. A
// non-matching file is not an error; the caller simply ignores it.
func (d Deriver[K]) Derive(path string) (K, bool) {
	stem, ok := Stem(path, d.Suffix)
	if !ok {
		var zero K
		return zero, false
	}
	return d.New(stem), true
}

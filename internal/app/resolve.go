package app

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolveTarget returns path if the predicate reports it free, otherwise the
// first of path's numeric-suffix variants (name_1.ext, name_2.ext, ...) that
// is free. The predicate is injected so resolution stays deterministic in
// tests and reusable for dry runs.
func ResolveTarget(path string, exists func(string) bool) string {
	if !exists(path) {
		return path
	}
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}

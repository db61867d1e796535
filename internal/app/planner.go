package app

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"excopy/internal/domain"
	"excopy/internal/logging"
)

// ProgressFunc is called during scanning to report how many files matched
// so far across all source directories.
type ProgressFunc func(matched int)

type Planner struct {
	FS         FileSystem
	Logger     logging.Logger
	OnProgress ProgressFunc
}

// Plan walks every source directory concurrently and builds one CopyTask per
// regular file whose name matches the selection. Selections are plain
// extensions (matched case-insensitively) or doublestar glob patterns
// (matched against the path relative to its source directory). Results are
// deduplicated by absolute source path and sorted so task order is
// deterministic regardless of walk interleaving.
//
// Discovery errors are fatal: an unreadable source directory aborts the plan
// rather than producing a partial task list.
func (p *Planner) Plan(ctx context.Context, sources []string, selections []string, targetExt string) ([]domain.CopyTask, error) {
	if p.FS == nil {
		return nil, errors.New("planner requires FS")
	}

	stop := p.Logger.Measure("Scanning source directories")
	defer stop()

	exts, patterns := splitSelections(selections)

	var matched atomic.Int64
	found := make([][]string, len(sources))

	group, gctx := errgroup.WithContext(ctx)
	for i, source := range sources {
		i, source := i, source
		group.Go(func() error {
			return p.FS.WalkDir(source, func(path string, d fs.DirEntry, walkErr error) error {
				if walkErr != nil {
					return walkErr
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if !matches(d.Name(), relativeTo(source, path), exts, patterns) {
					return nil
				}
				found[i] = append(found[i], path)
				if p.OnProgress != nil {
					p.OnProgress(int(matched.Add(1)))
				}
				return nil
			})
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var paths []string
	for _, sourcePaths := range found {
		for _, path := range sourcePaths {
			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			if seen[abs] {
				continue
			}
			seen[abs] = true
			paths = append(paths, abs)
		}
	}
	sort.Strings(paths)

	tasks := make([]domain.CopyTask, 0, len(paths))
	for _, path := range paths {
		tasks = append(tasks, domain.NewCopyTask(path, targetExt))
	}

	p.Logger.Verbosef("Matched %d files in %d source directories", len(tasks), len(sources))
	return tasks, nil
}

// splitSelections separates plain extensions from glob patterns.
func splitSelections(selections []string) ([]string, []string) {
	var exts, patterns []string
	for _, sel := range selections {
		if strings.ContainsAny(sel, "*?[{") {
			patterns = append(patterns, sel)
			continue
		}
		exts = append(exts, domain.NormalizeExt(sel))
	}
	return exts, patterns
}

func matches(name, rel string, exts, patterns []string) bool {
	if len(exts) == 0 && len(patterns) == 0 {
		return true
	}
	if domain.HasExtension(name, exts) {
		return true
	}
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func relativeTo(source, path string) string {
	rel, err := filepath.Rel(source, path)
	if err != nil {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}

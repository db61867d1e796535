package domain

import (
	"path/filepath"
	"strings"
)

// CopyTask is one source-file-to-target copy unit. It is created once per
// discovered source file and consumed exactly once by the executor.
type CopyTask struct {
	SourcePath string
	BaseName   string
	TargetExt  string
}

func NewCopyTask(sourcePath, targetExt string) CopyTask {
	name := filepath.Base(sourcePath)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	ext := targetExt
	if ext == "" {
		ext = NormalizeExt(filepath.Ext(name))
	}

	return CopyTask{
		SourcePath: sourcePath,
		BaseName:   base,
		TargetExt:  ext,
	}
}

// TargetName is the file name a task maps to before collision resolution.
func (t CopyTask) TargetName() string {
	if t.TargetExt == "" {
		return t.BaseName
	}
	return t.BaseName + "." + t.TargetExt
}

// NormalizeExt strips a leading dot and lowercases, so "MD", ".md" and "md"
// all select the same files.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func HasExtension(name string, exts []string) bool {
	ext := NormalizeExt(filepath.Ext(name))
	for _, want := range exts {
		if ext == want {
			return true
		}
	}
	return false
}

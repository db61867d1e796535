package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCopyTaskKeepsSourceExtension(t *testing.T) {
	task := NewCopyTask("/src/notes.MD", "")
	assert.Equal(t, "notes", task.BaseName)
	assert.Equal(t, "md", task.TargetExt)
	assert.Equal(t, "notes.md", task.TargetName())
}

func TestNewCopyTaskChangesExtension(t *testing.T) {
	task := NewCopyTask("/src/notes.md", "txt")
	assert.Equal(t, "notes.txt", task.TargetName())
}

func TestNewCopyTaskWithoutExtension(t *testing.T) {
	task := NewCopyTask("/src/Makefile", "")
	assert.Equal(t, "Makefile", task.BaseName)
	assert.Equal(t, "", task.TargetExt)
	assert.Equal(t, "Makefile", task.TargetName())
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "md", NormalizeExt(".MD"))
	assert.Equal(t, "md", NormalizeExt("md"))
	assert.Equal(t, "", NormalizeExt(""))
}

func TestHasExtension(t *testing.T) {
	exts := []string{"md", "txt"}
	assert.True(t, HasExtension("a.md", exts))
	assert.True(t, HasExtension("a.TXT", exts))
	assert.False(t, HasExtension("a.png", exts))
	assert.False(t, HasExtension("md", exts))
}

func TestReportAllSucceeded(t *testing.T) {
	assert.True(t, CopyReport{TotalFiles: 2, Succeeded: 2}.AllSucceeded())
	assert.False(t, CopyReport{TotalFiles: 2, Succeeded: 1, Failed: []Failure{{}}}.AllSucceeded())
	assert.True(t, CopyReport{}.AllSucceeded())
}

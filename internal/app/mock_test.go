package app

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type mockEntry struct {
	path  string
	isDir bool
}

// mockFS backs both planner and executor tests: entries drive WalkDir,
// files drives Exists/CopyFile. Safe for concurrent CopyFile calls.
type mockFS struct {
	mu       sync.Mutex
	entries  []mockEntry
	files    map[string][]byte
	failCopy map[string]error
	walkErrs map[string]error
	gate     *gauge
}

func newMockFS() *mockFS {
	return &mockFS{
		files:    map[string][]byte{},
		failCopy: map[string]error{},
		walkErrs: map[string]error{},
	}
}

func (m *mockFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	if err := m.walkErrs[root]; err != nil {
		return err
	}
	for _, entry := range m.entries {
		if entry.path != root && !strings.HasPrefix(entry.path, root+"/") {
			continue
		}
		dirEntry := mockDirEntry{name: filepath.Base(entry.path), isDir: entry.isDir}
		if err := fn(entry.path, dirEntry, nil); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockFS) Stat(path string) (fs.FileInfo, error) {
	for _, entry := range m.entries {
		if entry.path == path {
			return mockFileInfo{name: filepath.Base(path)}, nil
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[path]; ok {
		return mockFileInfo{name: filepath.Base(path)}, nil
	}
	return nil, fs.ErrNotExist
}

func (m *mockFS) Exists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok, nil
}

func (m *mockFS) MkdirAll(path string, perm fs.FileMode) error {
	return nil
}

func (m *mockFS) CopyFile(src, dst string) error {
	if m.gate != nil {
		m.gate.enter()
		time.Sleep(2 * time.Millisecond)
		defer m.gate.exit()
	}

	m.mu.Lock()
	err := m.failCopy[src]
	content, ok := m.files[src]
	m.mu.Unlock()
	if err != nil {
		return err
	}
	if !ok {
		return fs.ErrNotExist
	}

	m.mu.Lock()
	m.files[dst] = content
	m.mu.Unlock()
	return nil
}

// gauge tracks the peak number of concurrent CopyFile bodies.
type gauge struct {
	mu   sync.Mutex
	cur  int
	peak int
}

func (g *gauge) enter() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cur++
	if g.cur > g.peak {
		g.peak = g.cur
	}
}

func (g *gauge) exit() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cur--
}

func (g *gauge) max() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.peak
}

type mockDirEntry struct {
	name  string
	isDir bool
}

func (m mockDirEntry) Name() string               { return m.name }
func (m mockDirEntry) IsDir() bool                { return m.isDir }
func (m mockDirEntry) Type() fs.FileMode          { return 0 }
func (m mockDirEntry) Info() (fs.FileInfo, error) { return nil, nil }

type mockFileInfo struct {
	name string
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return 0 }
func (m mockFileInfo) Mode() fs.FileMode  { return 0 }
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return false }
func (m mockFileInfo) Sys() interface{}   { return nil }

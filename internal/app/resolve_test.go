package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeExists(taken ...string) func(string) bool {
	set := make(map[string]bool, len(taken))
	for _, path := range taken {
		set[path] = true
	}
	return func(path string) bool { return set[path] }
}

func TestResolveTargetFreePath(t *testing.T) {
	got := ResolveTarget("/dest/report.txt", fakeExists())
	assert.Equal(t, "/dest/report.txt", got)
}

func TestResolveTargetSingleCollision(t *testing.T) {
	got := ResolveTarget("/dest/report.txt", fakeExists("/dest/report.txt"))
	assert.Equal(t, "/dest/report_1.txt", got)
}

func TestResolveTargetSuffixesIncreaseWithoutGaps(t *testing.T) {
	exists := fakeExists(
		"/dest/report.txt",
		"/dest/report_1.txt",
		"/dest/report_2.txt",
	)
	got := ResolveTarget("/dest/report.txt", exists)
	assert.Equal(t, "/dest/report_3.txt", got)
}

func TestResolveTargetSkipsNothingWhenGapExists(t *testing.T) {
	// _1 free while the base is taken: the first free suffix wins.
	exists := fakeExists("/dest/report.txt", "/dest/report_2.txt")
	got := ResolveTarget("/dest/report.txt", exists)
	assert.Equal(t, "/dest/report_1.txt", got)
}

func TestResolveTargetWithoutExtension(t *testing.T) {
	got := ResolveTarget("/dest/Makefile", fakeExists("/dest/Makefile"))
	assert.Equal(t, "/dest/Makefile_1", got)
}

package app

import (
	"context"
	"errors"
	"testing"
)

func TestPlannerSelectsByExtensionCaseInsensitive(t *testing.T) {
	mock := newMockFS()
	mock.entries = []mockEntry{
		{path: "/source", isDir: true},
		{path: "/source/notes.md"},
		{path: "/source/README.MD"},
		{path: "/source/image.png"},
	}

	planner := Planner{FS: mock}
	tasks, err := planner.Plan(context.Background(), []string{"/source"}, []string{".md"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
}

func TestPlannerAppliesTargetExtension(t *testing.T) {
	mock := newMockFS()
	mock.entries = []mockEntry{
		{path: "/source/notes.md"},
	}

	planner := Planner{FS: mock}
	tasks, err := planner.Plan(context.Background(), []string{"/source"}, []string{"md"}, "txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].TargetName() != "notes.txt" {
		t.Fatalf("expected notes.txt, got %s", tasks[0].TargetName())
	}
}

func TestPlannerMatchesGlobPatterns(t *testing.T) {
	mock := newMockFS()
	mock.entries = []mockEntry{
		{path: "/source/docs", isDir: true},
		{path: "/source/docs/guide.md"},
		{path: "/source/readme.md"},
		{path: "/source/main.go"},
	}

	planner := Planner{FS: mock}
	tasks, err := planner.Plan(context.Background(), []string{"/source"}, []string{"docs/**/*.md"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].SourcePath != "/source/docs/guide.md" {
		t.Fatalf("unexpected source: %s", tasks[0].SourcePath)
	}
}

func TestPlannerDeduplicatesAndSorts(t *testing.T) {
	mock := newMockFS()
	mock.entries = []mockEntry{
		{path: "/source/b.md"},
		{path: "/source/a.md"},
	}

	planner := Planner{FS: mock}
	// The same directory twice must not produce duplicate tasks.
	tasks, err := planner.Plan(context.Background(), []string{"/source", "/source"}, []string{"md"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].SourcePath != "/source/a.md" || tasks[1].SourcePath != "/source/b.md" {
		t.Fatalf("tasks not sorted: %v", tasks)
	}
}

func TestPlannerEmptySelectionMatchesEverything(t *testing.T) {
	mock := newMockFS()
	mock.entries = []mockEntry{
		{path: "/source/a.md"},
		{path: "/source/b.png"},
	}

	planner := Planner{FS: mock}
	tasks, err := planner.Plan(context.Background(), []string{"/source"}, nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
}

func TestPlannerWalkErrorIsFatal(t *testing.T) {
	mock := newMockFS()
	mock.entries = []mockEntry{
		{path: "/ok/a.md"},
	}
	mock.walkErrs["/broken"] = errors.New("permission denied")

	planner := Planner{FS: mock}
	_, err := planner.Plan(context.Background(), []string{"/ok", "/broken"}, []string{"md"}, "")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestPlannerReportsProgress(t *testing.T) {
	mock := newMockFS()
	mock.entries = []mockEntry{
		{path: "/source/a.md"},
		{path: "/source/b.md"},
		{path: "/source/c.md"},
	}

	last := 0
	planner := Planner{FS: mock, OnProgress: func(matched int) { last = matched }}
	tasks, err := planner.Plan(context.Background(), []string{"/source"}, []string{"md"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if last != 3 {
		t.Fatalf("expected progress to reach 3, got %d", last)
	}
}

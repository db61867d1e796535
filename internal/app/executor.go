package app

import (
	"errors"
	"path/filepath"

	"excopy/internal/domain"
	"excopy/internal/logging"
)

// CompleteFunc is called once per settled task, in completion order.
type CompleteFunc func(outcome domain.CopyOutcome, done, total int)

type Executor struct {
	FS         FileSystem
	Logger     logging.Logger
	OnComplete CompleteFunc
}

// PlannedCopy is a task with its collision-resolved target path.
type PlannedCopy struct {
	Task       domain.CopyTask
	TargetPath string
	Renamed    bool
	Clobbers   bool
}

// PlanTargets resolves the target path of every task sequentially, before
// any copying starts, so that tasks of the same run never collide with each
// other no matter in which order they later complete. With overwrite
// disabled, targets that exist on disk (or are claimed by an earlier task of
// this run) get numeric suffixes; with overwrite enabled targets are taken
// as-is and existing files are marked for clobbering.
//
// The probe-then-write sequence is not atomic against other processes
// writing into the destination; that race is accepted for this utility's
// single-process use.
func (e *Executor) PlanTargets(tasks []domain.CopyTask, destDir string, overwrite bool) []PlannedCopy {
	claimed := make(map[string]bool, len(tasks))
	planned := make([]PlannedCopy, 0, len(tasks))

	for _, task := range tasks {
		initial := filepath.Join(destDir, task.TargetName())

		if overwrite {
			onDisk, _ := e.FS.Exists(initial)
			planned = append(planned, PlannedCopy{
				Task:       task,
				TargetPath: initial,
				Clobbers:   onDisk || claimed[initial],
			})
			claimed[initial] = true
			continue
		}

		target := ResolveTarget(initial, func(path string) bool {
			if claimed[path] {
				return true
			}
			onDisk, _ := e.FS.Exists(path)
			return onDisk
		})
		claimed[target] = true
		planned = append(planned, PlannedCopy{
			Task:       task,
			TargetPath: target,
			Renamed:    target != initial,
		})
	}

	return planned
}

// Run resolves targets and copies every task, returning the aggregated
// report. Copies execute under a worker pool of at most concurrency
// goroutines; per-task failures are recorded and never abort siblings. The
// run settles every task, so the report invariant
// Succeeded + len(Failed) == TotalFiles always holds on return.
func (e *Executor) Run(tasks []domain.CopyTask, destDir string, overwrite bool, concurrency int) (domain.CopyReport, error) {
	if e.FS == nil {
		return domain.CopyReport{}, errors.New("executor requires FS")
	}
	planned := e.PlanTargets(tasks, destDir, overwrite)
	return e.Copy(planned, concurrency), nil
}

// Copy performs the bounded concurrent copy of an already-resolved plan.
func (e *Executor) Copy(planned []PlannedCopy, concurrency int) domain.CopyReport {
	if concurrency < 1 {
		concurrency = 1
	}

	stop := e.Logger.Measure("Copying files")
	defer stop()

	jobs := make(chan PlannedCopy)
	results := make(chan domain.CopyOutcome)

	for i := 0; i < concurrency; i++ {
		go func() {
			for item := range jobs {
				err := e.FS.CopyFile(item.Task.SourcePath, item.TargetPath)
				results <- domain.CopyOutcome{
					SourcePath: item.Task.SourcePath,
					TargetPath: item.TargetPath,
					Err:        err,
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, item := range planned {
			jobs <- item
		}
	}()

	report := domain.CopyReport{TotalFiles: len(planned)}
	for i := 0; i < len(planned); i++ {
		outcome := <-results
		if outcome.Err != nil {
			e.Logger.Verbosef("copy failed for %s: %v", outcome.SourcePath, outcome.Err)
			report.Failed = append(report.Failed, domain.Failure{
				SourcePath: outcome.SourcePath,
				Message:    outcome.Err.Error(),
			})
		} else {
			report.Succeeded++
		}
		if e.OnComplete != nil {
			e.OnComplete(outcome, i+1, len(planned))
		}
	}

	return report
}

// CountRenamed and CountClobbers summarize a plan for previews and dry runs.
func CountRenamed(planned []PlannedCopy) int {
	count := 0
	for _, item := range planned {
		if item.Renamed {
			count++
		}
	}
	return count
}

func CountClobbers(planned []PlannedCopy) int {
	count := 0
	for _, item := range planned {
		if item.Clobbers {
			count++
		}
	}
	return count
}

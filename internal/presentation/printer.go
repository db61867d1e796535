package presentation

import (
	"fmt"
	"io"
	"path/filepath"

	"excopy/internal/app"
	"excopy/internal/domain"
	"excopy/internal/i18n"
)

type Printer struct {
	Writer  io.Writer
	T       i18n.Func
	Verbose bool
}

func (p Printer) t(key string, args ...any) string {
	if p.T != nil {
		return p.T(key, args...)
	}
	return key
}

// PrintDryRun renders the resolution decisions a real run would make,
// without any copy having happened.
func (p Printer) PrintDryRun(planned []app.PlannedCopy) {
	p.printPlan(planned)
	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, p.t("dryrun.notice"))
}

// PrintReport renders the settled outcome of a run: a success count, and an
// itemized failure list whenever any task failed.
func (p Printer) PrintReport(planned []app.PlannedCopy, report domain.CopyReport) {
	p.printPlan(planned)
	fmt.Fprintln(p.Writer)

	if report.AllSucceeded() {
		fmt.Fprintln(p.Writer, p.t("summary.success", report.Succeeded, report.TotalFiles))
	} else {
		fmt.Fprintln(p.Writer, p.t("summary.failures", report.Succeeded, report.TotalFiles, len(report.Failed)))
		for _, failure := range report.Failed {
			fmt.Fprintln(p.Writer, p.t("summary.failure.line", failure.SourcePath, failure.Message))
		}
	}

	if renamed := app.CountRenamed(planned); renamed > 0 {
		fmt.Fprintln(p.Writer, p.t("summary.renamed", renamed))
	}
	if clobbered := app.CountClobbers(planned); clobbered > 0 {
		fmt.Fprintln(p.Writer, p.t("summary.overwritten", clobbered))
	}
}

func (p Printer) printPlan(planned []app.PlannedCopy) {
	fmt.Fprintln(p.Writer, p.t("copying.header"))
	fmt.Fprintln(p.Writer)

	for _, line := range formatCopyLines(planned, p.t) {
		fmt.Fprintln(p.Writer, line)
	}

	var renamed []app.PlannedCopy
	for _, item := range planned {
		if item.Renamed {
			renamed = append(renamed, item)
		}
	}
	if len(renamed) > 0 {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, p.t("renamed.header"))
		for _, item := range renamed {
			fmt.Fprintln(p.Writer, p.t("renamed.line",
				filepath.Base(item.Task.SourcePath), filepath.Base(item.TargetPath)))
		}
	}
}

func formatCopyLines(planned []app.PlannedCopy, t i18n.Func) []string {
	lines := make([]string, 0, len(planned))
	for _, item := range planned {
		lines = append(lines, t("copying.line",
			filepath.Base(item.Task.SourcePath), filepath.Base(item.TargetPath)))
	}

	if len(lines) <= 4 {
		return lines
	}
	head := lines[:2]
	tail := lines[len(lines)-2:]
	return append(append(head, "..."), tail...)
}

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"excopy/internal/app"
	"excopy/internal/config"
	"excopy/internal/domain"
	appErrors "excopy/internal/errors"
	"excopy/internal/i18n"
	"excopy/internal/infra/fs"
	"excopy/internal/logging"
	"excopy/internal/plugin"
	"excopy/internal/presentation"
	"excopy/internal/tui"
)

func run(cfg config.Config) error {
	logger, closeLog, err := setupLogger(cfg)
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "log", cfg.LogFile, err)
	}
	defer closeLog()

	tr := i18n.Locale(cfg.Lang)
	filesystem := fs.OSFS{}

	for _, source := range cfg.Sources {
		if _, err := filesystem.Stat(source); err != nil {
			return appErrors.Wrap(appErrors.NotFound, "stat", source, err)
		}
	}

	if cfg.Interactive {
		return runTUI(cfg, filesystem, logger, tr)
	}
	return runPlain(cfg, filesystem, logger, tr)
}

// setupLogger routes logs to the requested file, or to stderr. Interactive
// runs without a log file stay silent so log lines never tear the TUI.
func setupLogger(cfg config.Config) (logging.Logger, func() error, error) {
	if cfg.LogFile != "" {
		return logging.NewFile(cfg.LogFile, cfg.Verbose)
	}
	if cfg.Interactive {
		return logging.Logger{}, func() error { return nil }, nil
	}
	return logging.New(os.Stderr, cfg.Verbose), func() error { return nil }, nil
}

func runPlain(cfg config.Config, filesystem fs.OSFS, logger logging.Logger, tr i18n.Translator) error {
	planner := app.Planner{FS: filesystem, Logger: logger}
	tasks, err := planner.Plan(context.Background(), cfg.Sources, cfg.Selections, cfg.TargetExt)
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "scan", "", err)
	}
	if len(tasks) == 0 {
		return appErrors.Wrap(appErrors.NotFound, "scan", strings.Join(cfg.Sources, ", "), errors.New(tr.T("scan.none")))
	}
	logger.Verbosef(tr.T("scan.found", len(tasks), len(cfg.Sources)))

	pluginCtx := plugin.Context{Logger: logger, T: tr.T, Config: cfg}
	plugin.RunSetup(pluginCtx)

	executor := app.Executor{FS: filesystem, Logger: logger}
	printer := presentation.Printer{Writer: os.Stdout, T: tr.T, Verbose: cfg.Verbose}

	overwrite := cfg.Overwrite
	planned := executor.PlanTargets(tasks, cfg.DestDir, overwrite)

	if cfg.DryRun {
		printer.PrintDryRun(planned)
		return nil
	}

	if clobbers := app.CountClobbers(planned); overwrite && clobbers > 0 && !cfg.Yes {
		confirmed, confirmErr := confirmOverwrite(clobbers, tr.T)
		if confirmErr != nil {
			return appErrors.Wrap(appErrors.Internal, "prompt", "", confirmErr)
		}
		if !confirmed {
			overwrite = false
			planned = executor.PlanTargets(tasks, cfg.DestDir, false)
		}
	}

	if err := filesystem.MkdirAll(cfg.DestDir, 0o755); err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "mkdir", cfg.DestDir, err)
	}

	report := executor.Copy(planned, cfg.Concurrency)
	printer.PrintReport(planned, report)
	plugin.NotifyAfterRun(pluginCtx, report)

	if !report.AllSucceeded() {
		return appErrors.Wrap(appErrors.IOFailure, "copy", cfg.DestDir,
			fmt.Errorf("%d of %d copies failed", len(report.Failed), report.TotalFiles))
	}
	return nil
}

func runTUI(cfg config.Config, filesystem fs.OSFS, logger logging.Logger, tr i18n.Translator) error {
	executor := &app.Executor{FS: filesystem, Logger: logger}
	pluginCtx := plugin.Context{Logger: logger, T: tr.T, Config: cfg}

	var program *tea.Program
	var tasks []domain.CopyTask

	executeCopy := func(planned []app.PlannedCopy) tea.Cmd {
		return func() tea.Msg {
			if err := filesystem.MkdirAll(cfg.DestDir, 0o755); err != nil {
				return tui.ErrorMsg{Err: err}
			}
			exec := *executor
			exec.OnComplete = func(outcome domain.CopyOutcome, done, total int) {
				program.Send(tui.CopyProgressMsg{
					Done:  done,
					Total: total,
					File:  filepath.Base(outcome.SourcePath),
				})
			}
			return tui.CopyDoneMsg{Report: exec.Copy(planned, cfg.Concurrency)}
		}
	}

	replan := func() []app.PlannedCopy {
		return executor.PlanTargets(tasks, cfg.DestDir, false)
	}

	model := tui.NewModel(tui.Config{
		Sources:     cfg.Sources,
		DestDir:     cfg.DestDir,
		DryRun:      cfg.DryRun,
		Yes:         cfg.Yes,
		ExecuteCopy: executeCopy,
		Replan:      replan,
	})
	program = tea.NewProgram(model)

	go func() {
		planner := app.Planner{
			FS:     filesystem,
			Logger: logger,
			OnProgress: func(matched int) {
				program.Send(tui.ScanProgressMsg{Matched: matched})
			},
		}
		scanned, err := planner.Plan(context.Background(), cfg.Sources, cfg.Selections, cfg.TargetExt)
		if err != nil {
			program.Send(tui.ErrorMsg{Err: err})
			return
		}
		if len(scanned) == 0 {
			program.Send(tui.ErrorMsg{Err: errors.New(tr.T("scan.none"))})
			return
		}
		tasks = scanned
		plugin.RunSetup(pluginCtx)
		program.Send(tui.PlanReadyMsg{Planned: executor.PlanTargets(tasks, cfg.DestDir, cfg.Overwrite)})
	}()

	finalModel, err := program.Run()
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "tui", "", err)
	}

	final, ok := finalModel.(tui.Model)
	if !ok {
		return appErrors.Wrap(appErrors.Internal, "tui", "", errors.New("unexpected model type"))
	}
	if final.Err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "run", cfg.DestDir, final.Err)
	}
	if final.Phase != tui.PhaseDone || cfg.DryRun {
		return nil
	}

	plugin.NotifyAfterRun(pluginCtx, final.Report)
	if !final.Report.AllSucceeded() {
		return appErrors.Wrap(appErrors.IOFailure, "copy", cfg.DestDir,
			fmt.Errorf("%d of %d copies failed", len(final.Report.Failed), final.Report.TotalFiles))
	}
	return nil
}

func confirmOverwrite(count int, t i18n.Func) (bool, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(t("overwrite.prompt", count))
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes" || answer == "j" || answer == "ja", nil
}

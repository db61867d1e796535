package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"excopy/internal/app"
	"excopy/internal/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseScanning Phase = iota
	PhasePreview
	PhaseConfirm
	PhaseExecuting
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	ScanProgressMsg struct {
		Matched int
	}
	PlanReadyMsg struct {
		Planned []app.PlannedCopy
	}
	CopyProgressMsg struct {
		Done  int
		Total int
		File  string
	}
	CopyDoneMsg struct {
		Report domain.CopyReport
	}
	ErrorMsg struct {
		Err error
	}
	ConfirmMsg struct{ Confirmed bool }
	tickMsg    time.Time
)

// ExecuteCopyFunc starts the copy of a resolved plan. It should run the copy
// in the returned command and deliver progress via CopyProgressMsg and the
// final CopyDoneMsg.
type ExecuteCopyFunc func(planned []app.PlannedCopy) tea.Cmd

// ReplanFunc re-resolves targets with overwriting disabled, used when the
// user declines the overwrite confirmation.
type ReplanFunc func() []app.PlannedCopy

// Config for the TUI
type Config struct {
	Sources     []string
	DestDir     string
	DryRun      bool
	Yes         bool
	ExecuteCopy ExecuteCopyFunc
	Replan      ReplanFunc
}

// Model is the main TUI model
type Model struct {
	config           Config
	Phase            Phase
	Planned          []app.PlannedCopy
	Report           domain.CopyReport
	spinner          spinner.Model
	progress         progress.Model
	scanMatched      int
	copyDone         int
	copyTotal        int
	currentFile      string
	confirmSelection bool // true = yes, false = no
	Err              error
	Quitting         bool
	width            int
	height           int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:           cfg,
		Phase:            PhaseScanning,
		spinner:          s,
		progress:         p,
		confirmSelection: false, // default to No
		width:            80,
		height:           24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "left", "h":
			if m.Phase == PhaseConfirm {
				m.confirmSelection = true
			}
		case "right", "l":
			if m.Phase == PhaseConfirm {
				m.confirmSelection = false
			}
		case "y", "Y":
			if m.Phase == PhaseConfirm {
				m.confirmSelection = true
			}
		case "n", "N":
			if m.Phase == PhaseConfirm {
				m.confirmSelection = false
			}
		case "enter":
			if m.Phase == PhaseConfirm {
				return m, func() tea.Msg {
					return ConfirmMsg{Confirmed: m.confirmSelection}
				}
			}
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case ScanProgressMsg:
		m.scanMatched = msg.Matched
		return m, nil

	case PlanReadyMsg:
		m.Planned = msg.Planned
		if m.config.DryRun {
			m.Phase = PhaseDone
		} else if app.CountClobbers(m.Planned) > 0 && !m.config.Yes {
			m.Phase = PhaseConfirm
		} else {
			// Nothing to confirm, start copy immediately
			m.Phase = PhaseExecuting
			if m.config.ExecuteCopy != nil {
				return m, tea.Batch(tickCmd(), m.config.ExecuteCopy(m.Planned))
			}
		}
		return m, nil

	case ConfirmMsg:
		if !msg.Confirmed && m.config.Replan != nil {
			// Declined: fall back to suffix-renaming
			m.Planned = m.config.Replan()
		}
		m.Phase = PhaseExecuting
		if m.config.ExecuteCopy != nil {
			return m, tea.Batch(tickCmd(), m.config.ExecuteCopy(m.Planned))
		}
		return m, nil

	case CopyProgressMsg:
		m.copyDone = msg.Done
		m.copyTotal = msg.Total
		m.currentFile = msg.File
		return m, nil

	case CopyDoneMsg:
		m.Phase = PhaseDone
		m.Report = msg.Report
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseExecuting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tickMsg:
		if m.Phase == PhaseExecuting {
			var cmds []tea.Cmd
			if m.copyTotal > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.copyDone)/float64(m.copyTotal)))
			}
			cmds = append(cmds, tickCmd(), m.spinner.Tick)
			return m, tea.Batch(cmds...)
		}
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	// Header
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(m.renderScanning())
	case PhasePreview:
		b.WriteString(m.renderPreview())
	case PhaseDone:
		b.WriteString(m.renderPreview())
		if !m.config.DryRun {
			b.WriteString("\n")
			b.WriteString(m.renderCopyCompletion())
		}
	case PhaseConfirm:
		b.WriteString(m.renderPreview())
		b.WriteString("\n")
		b.WriteString(m.renderConfirmPrompt())
	case PhaseExecuting:
		b.WriteString(m.renderPreview())
		b.WriteString("\n")
		b.WriteString(m.renderExecution())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	// Help
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("excopy")
	subtitle := subtitleStyle.Render("Copy files by extension")

	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	lines := []string{title, subtitle, ""}
	for _, source := range m.config.Sources {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("%s Source: %s", iconFolder, shortenPath(source))))
	}
	lines = append(lines, dimStyle.Render(fmt.Sprintf("%s Dest:   %s", iconFolder, shortenPath(m.config.DestDir))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderScanning() string {
	if m.scanMatched > 0 {
		countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
		return fmt.Sprintf("%s Scanning sources... %s",
			m.spinner.View(),
			countStyle.Render(fmt.Sprintf("%d matched", m.scanMatched)),
		)
	}
	return fmt.Sprintf("%s Scanning sources...", m.spinner.View())
}

func (m Model) renderPreview() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Files to Copy"))
	b.WriteString("\n\n")

	if len(m.Planned) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)
		b.WriteString(dimStyle.Render("  No files to copy"))
		b.WriteString("\n")
	} else {
		lines := formatFileList(m.Planned, 4)
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	// Collision section if any
	if renamed := app.CountRenamed(m.Planned); renamed > 0 {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(fmt.Sprintf("%s Renamed to avoid collisions (%d files)", iconWarning, renamed)))
		b.WriteString("\n\n")

		shown := 0
		for _, item := range m.Planned {
			if !item.Renamed {
				continue
			}
			if shown >= 4 {
				b.WriteString(fmt.Sprintf("  ... and %d more\n", renamed-shown))
				break
			}
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
				renamedStyle.Render(iconWarning),
				fileNameStyle.Render(filepath.Base(item.Task.SourcePath)),
				iconArrow,
				fileNameStyle.Render(filepath.Base(item.TargetPath)),
			))
			shown++
		}
	}

	// Summary
	b.WriteString("\n")
	b.WriteString(m.renderSummary())

	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Summary"))
	b.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)
	countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)

	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Files:"), countStyle.Render(fmt.Sprintf("%d", len(m.Planned)))))
	if renamed := app.CountRenamed(m.Planned); renamed > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Renamed:"), warningStyle.Render(fmt.Sprintf("%s %d", iconWarning, renamed))))
	}
	if clobbers := app.CountClobbers(m.Planned); clobbers > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Overwrites:"), warningStyle.Render(fmt.Sprintf("%s %d", iconWarning, clobbers))))
	}
	if len(m.Planned) == 0 {
		b.WriteString(fmt.Sprintf("  %s\n", dimStyle.Render(fmt.Sprintf("%s nothing to do", iconSkipped))))
	}

	if m.config.DryRun {
		b.WriteString("\n")
		b.WriteString(highlightBoxStyle.Render("🔍 Dry Run - No files were copied"))
	}

	return b.String()
}

func (m Model) renderConfirmPrompt() string {
	prompt := confirmPromptStyle.Render(fmt.Sprintf("Overwrite %d existing files?", app.CountClobbers(m.Planned)))

	var yesBtn, noBtn string
	if m.confirmSelection {
		yesBtn = highlightBoxStyle.
			Background(lipgloss.Color("#2D5A27")).
			Render(" Yes ")
		noBtn = boxStyle.Render(" No ")
	} else {
		yesBtn = boxStyle.Render(" Yes ")
		noBtn = highlightBoxStyle.
			Background(lipgloss.Color("#5A2727")).
			Render(" No ")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yesBtn, "  ", noBtn)

	return lipgloss.JoinVertical(lipgloss.Left, prompt, "", buttons)
}

func (m Model) renderExecution() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Copying Files"))
	b.WriteString("\n\n")

	percent := 0.0
	if m.copyTotal > 0 {
		percent = float64(m.copyDone) / float64(m.copyTotal)
	}

	b.WriteString(fmt.Sprintf("  %s Copying...\n\n", m.spinner.View()))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(percent)))

	countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	percentStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	b.WriteString(fmt.Sprintf("  %s %s\n",
		countStyle.Render(fmt.Sprintf("%d/%d files", m.copyDone, m.copyTotal)),
		percentStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	))

	if m.currentFile != "" {
		b.WriteString(fmt.Sprintf("\n  %s %s\n",
			iconArrow,
			fileNameStyle.Render(m.currentFile),
		))
	}

	return b.String()
}

func (m Model) renderCopyCompletion() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Copy Complete"))
	b.WriteString("\n\n")

	if m.Report.AllSucceeded() {
		icon := successStyle.Render(iconSuccess)
		msg := successStyle.Render(fmt.Sprintf("Copied %d of %d files.", m.Report.Succeeded, m.Report.TotalFiles))
		b.WriteString(fmt.Sprintf("  %s %s\n", icon, msg))
		return b.String()
	}

	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Copied %d of %d files, %d failed:", m.Report.Succeeded, m.Report.TotalFiles, len(m.Report.Failed)))
	b.WriteString(fmt.Sprintf("  %s %s\n", icon, msg))
	shown := 0
	for _, failure := range m.Report.Failed {
		if shown >= 4 {
			b.WriteString(fmt.Sprintf("  ... and %d more\n", len(m.Report.Failed)-shown))
			break
		}
		b.WriteString(fmt.Sprintf("  %s %s: %s\n",
			errorStyle.Render(iconError),
			fileNameStyle.Render(filepath.Base(failure.SourcePath)),
			failure.Message,
		))
		shown++
	}

	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))

	return highlightBoxStyle.
		BorderForeground(errorColor).
		Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseScanning:
		help = "Press q to quit"
	case PhasePreview:
		help = "Press q to quit"
	case PhaseConfirm:
		help = "← → or y/n to select • Enter to confirm • q to quit"
	case PhaseExecuting:
		help = "Copying files... Please wait"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

// formatFileList formats planned copies for display
func formatFileList(planned []app.PlannedCopy, maxItems int) []string {
	if len(planned) == 0 {
		return []string{}
	}

	lines := make([]string, 0, min(len(planned), maxItems+1))

	if len(planned) > maxItems {
		// Show first half and last half
		half := maxItems / 2
		for i := 0; i < half; i++ {
			lines = append(lines, formatFileItem(planned[i]))
		}
		dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)
		lines = append(lines, dimStyle.Render(fmt.Sprintf("... %d more files ...", len(planned)-maxItems)))
		for i := len(planned) - half; i < len(planned); i++ {
			lines = append(lines, formatFileItem(planned[i]))
		}
	} else {
		for i := 0; i < len(planned); i++ {
			lines = append(lines, formatFileItem(planned[i]))
		}
	}

	return lines
}

func formatFileItem(item app.PlannedCopy) string {
	name := fileNameStyle.Render(filepath.Base(item.Task.SourcePath))
	target := lipgloss.NewStyle().Foreground(dimTextColor).Render(filepath.Base(item.TargetPath))
	return fmt.Sprintf("%s %s %s", name, iconArrow, target)
}

func shortenPath(path string) string {
	const maxLen = 48
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

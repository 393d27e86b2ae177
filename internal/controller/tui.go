package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	countStyle   = lipgloss.NewStyle().Bold(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu      sync.Mutex
	program *tea.Program
	group   *errgroup.Group
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, input io.Reader) *TUI {
	return &TUI{output: output, input: input}
}

type (
	stageMsg   struct{ line string }
	outcomeMsg struct{ line string }
	targetsMsg struct{ targets []m.Target }
	summaryMsg struct {
		summary string
		counts  string
	}
)

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return errors.New("ui already started")
	}

	program := tea.NewProgram(
		newProgressModel(newStartConfig(options)),
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithContext(ctx),
	)

	group := &errgroup.Group{}
	group.Go(func() error {
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}

		return err
	})

	t.program = program
	t.group = group

	return nil
}

// Close stops the program and waits for it to restore the terminal.
func (t *TUI) Close(ctx context.Context) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	t.Wait(ctx)

	t.mu.Lock()
	t.program = nil
	t.group = nil
	t.mu.Unlock()
}

// Wait blocks until the user closes the program.
func (t *TUI) Wait(_ context.Context) {
	t.mu.Lock()
	group := t.group
	t.mu.Unlock()

	if group == nil {
		return
	}

	if err := group.Wait(); err != nil {
		slog.Warn("Interactive UI stopped with error", "error", err)
	}
}

// DisplayTargets shows the discovered targets.
func (t *TUI) DisplayTargets(ctx context.Context, targets []m.Target) {
	t.send(ctx, targetsMsg{targets: targets})
}

// DisplayStage updates the line describing the running step.
func (t *TUI) DisplayStage(ctx context.Context, source m.Path, stage m.Stage, attempt int) {
	t.send(ctx, stageMsg{line: stageLine(source, stage, attempt)})
}

// DisplayOutcome appends a finished file.
func (t *TUI) DisplayOutcome(ctx context.Context, outcome m.Outcome) {
	t.send(ctx, outcomeMsg{line: outcomeLine(outcome)})
}

// DisplaySummary shows the final summary and waits for the user to quit.
func (t *TUI) DisplaySummary(ctx context.Context, summary string, report m.RunReport) {
	t.send(ctx, summaryMsg{summary: summary, counts: renderCounts(report)})
}

func (t *TUI) send(ctx context.Context, msg tea.Msg) {
	if ctx.Err() != nil {
		return
	}

	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

func renderCounts(report m.RunReport) string {
	counts := bucketCounts(report)
	parts := make([]string, 0, len(m.Buckets))

	for _, bucket := range m.Buckets {
		parts = append(parts, fmt.Sprintf("%s %s", countStyle.Render(fmt.Sprintf("%d", counts[bucket])), bucketLabels[bucket]))
	}

	return strings.Join(parts, dimStyle.Render(" · "))
}

// progressModel is the Bubble Tea model for every UI mode.
type progressModel struct {
	mode      StartMode
	total     int
	done      int
	current   string
	outcomes  []string
	targets   []m.Target
	summary   string
	counts    string
	finished  bool
	quitting  bool
	interrupt func()
	spinner   spinner.Model
}

func newProgressModel(cfg StartConfig) progressModel {
	return progressModel{
		mode:      cfg.mode,
		total:     cfg.total,
		interrupt: cfg.interrupt,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(currentStyle)),
	}
}

func (pm progressModel) Init() tea.Cmd {
	if pm.mode == ModeRun {
		return pm.spinner.Tick
	}

	return nil
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return pm.handleKeyPress(msg)

	case spinner.TickMsg:
		if pm.finished {
			return pm, nil
		}

		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd

	case stageMsg:
		pm.current = msg.line
		return pm, nil

	case outcomeMsg:
		pm.done++
		pm.current = ""
		pm.outcomes = append(pm.outcomes, msg.line)

		return pm, nil

	case targetsMsg:
		pm.targets = msg.targets
		pm.finished = true

		return pm, nil

	case summaryMsg:
		pm.summary = msg.summary
		pm.counts = msg.counts
		pm.current = ""
		pm.finished = true

		return pm, nil
	}

	return pm, nil
}

//nolint:exhaustive // Only quit keys are handled.
func (pm progressModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		if !pm.finished && pm.interrupt != nil {
			pm.interrupt()
		}

		pm.quitting = true

		return pm, tea.Quit
	default:
		// Handle other key types in the string check below
	}

	if msg.String() == "q" && pm.finished {
		pm.quitting = true
		return pm, tea.Quit
	}

	return pm, nil
}

func (pm progressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("DeepUnit"))
	b.WriteString("\n\n")

	switch pm.mode {
	case ModeList:
		pm.viewTargets(&b)
	case ModeView:
		pm.viewSummary(&b)
	default:
		pm.viewProgress(&b)
		pm.viewSummary(&b)
	}

	if pm.finished && !pm.quitting {
		b.WriteString(dimStyle.Render("\nPress q to quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (pm progressModel) viewProgress(b *strings.Builder) {
	for _, line := range pm.outcomes {
		b.WriteString("  " + line + "\n")
	}

	if pm.finished {
		return
	}

	fmt.Fprintf(b, "\n%s [%d/%d] %s\n", pm.spinner.View(), pm.done, pm.total, currentStyle.Render(pm.current))
	b.WriteString(dimStyle.Render("ctrl+c to abort"))
	b.WriteString("\n")
}

func (pm progressModel) viewSummary(b *strings.Builder) {
	if pm.summary != "" {
		b.WriteString("\n" + pm.summary)
	}

	if pm.counts != "" {
		b.WriteString("\n" + pm.counts + "\n")
	}
}

func (pm progressModel) viewTargets(b *strings.Builder) {
	if !pm.finished {
		b.WriteString(pm.spinner.View() + " Discovering files\n")
		return
	}

	if len(pm.targets) == 0 {
		b.WriteString("No files to process\n")
		return
	}

	for i, target := range pm.targets {
		fmt.Fprintf(b, "%3d. %s %s %s", i+1, target.Source, dimStyle.Render("->"), target.Test)

		if target.Companion != "" {
			fmt.Fprintf(b, " %s", dimStyle.Render("(+"+string(target.Companion)+")"))
		}

		b.WriteString("\n")
	}

	fmt.Fprintf(b, "\n%s\n", countStyle.Render(fmt.Sprintf("Total Files %d", len(pm.targets))))
}

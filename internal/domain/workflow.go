package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"deepunit.dev/pkg/deepunit/internal/adapter"
	"deepunit.dev/pkg/deepunit/internal/controller"
	m "deepunit.dev/pkg/deepunit/internal/model"
)

// RunArgs contains the arguments for a repair run.
type RunArgs struct {
	Paths   []m.Path
	Reports m.Path
	DryRun  bool
}

// ListArgs contains the arguments for listing targets.
type ListArgs struct {
	Paths []m.Path
}

// ViewArgs contains the arguments for viewing the last run report.
type ViewArgs struct {
	Reports m.Path
}

// Workflow drives a whole batch of files through the repair loop.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.VersionControlAdapter
	adapter.SourceFSAdapter
	adapter.ToolchainAdapter
	adapter.ReportStore
	controller.UI
	RepairLoop
	cfg m.Config
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	cfg m.Config,
	vcs adapter.VersionControlAdapter,
	fsAdapter adapter.SourceFSAdapter,
	toolchain adapter.ToolchainAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	repairLoop RepairLoop,
) Workflow {
	return &workflow{
		VersionControlAdapter: vcs,
		SourceFSAdapter:       fsAdapter,
		ToolchainAdapter:      toolchain,
		ReportStore:           reportStore,
		UI:                    ui,
		RepairLoop:            repairLoop,
		cfg:                   cfg,
	}
}

// Run discovers the targets, repairs them one at a time and saves the run
// report. Fatal errors stop the batch after the partial summary is shown.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	version, err := w.CheckNode(ctx)
	if err != nil {
		slog.Error("Toolchain check failed", "error", err)
		return fmt.Errorf("toolchain: %w", err)
	}

	slog.Info("Toolchain ready", "node", version)

	groups, err := w.discover(ctx, args.Paths)
	if err != nil {
		slog.Error("Failed to discover files", "error", err)
		return fmt.Errorf("discover files: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.Start(ctx, controller.WithRunMode(countSources(groups)), controller.WithInterrupt(cancel)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	summary := NewSummaryReporter()
	started := time.Now()

	runErr := w.processGroups(runCtx, groups, args.DryRun, summary)

	report := w.buildReport(summary, started)
	w.DisplaySummary(ctx, summary.Render(), report)

	if runErr != nil {
		w.Close(ctx)
		w.saveReport(args, report)

		return runErr
	}

	w.Wait(ctx)
	w.Close(ctx)

	if args.DryRun {
		return nil
	}

	if err := w.SaveReport(args.Reports, report); err != nil {
		slog.Error("Failed to save run report", "error", err)
		return fmt.Errorf("save report: %w", err)
	}

	return nil
}

// processGroups walks the groups in order and each group from its last
// discovered file to its first.
func (w *workflow) processGroups(ctx context.Context, groups []m.TargetGroup, dryRun bool, summary *SummaryReporter) error {
	for _, group := range groups {
		stack := append([]m.Path(nil), group.Sources...)

		for len(stack) > 0 {
			path := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			outcome, err := w.processFile(ctx, path, dryRun)
			if outcome.Bucket != "" || (dryRun && err == nil) {
				summary.Record(outcome)
				w.DisplayOutcome(ctx, outcome)
			}

			if err != nil {
				slog.Error("Aborting run", "source", path, "error", err)
				return fmt.Errorf("process %s: %w", path, err)
			}
		}
	}

	return nil
}

func (w *workflow) processFile(ctx context.Context, path m.Path, dryRun bool) (m.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return m.Outcome{Source: path}, err
	}

	source, err := w.loadSource(path)
	if err != nil {
		slog.Warn("Failed to read source file", "source", path, "error", err)

		return classify(m.Outcome{Source: path, Test: m.TestPathFor(path, w.cfg.TestSuffix)}, m.BucketStillHasErrors, err), nil
	}

	if dryRun {
		return w.Check(ctx, source)
	}

	return w.Repair(ctx, source)
}

// List prints the targets a run would process, in processing order.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	groups, err := w.discover(ctx, args.Paths)
	if err != nil {
		slog.Error("Failed to discover files", "error", err)
		return fmt.Errorf("discover files: %w", err)
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	w.DisplayTargets(ctx, w.targets(groups))

	// Wait for UI to be closed by user (press 'q')
	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// View renders the report saved by the last run.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Reports)
	if err != nil {
		slog.Error("Failed to load run report", "dir", args.Reports, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	summary := NewSummaryReporter()
	for _, outcome := range outcomesFromReport(report) {
		summary.Record(outcome)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	w.DisplaySummary(ctx, summary.Render(), report)
	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

func (w *workflow) saveReport(args RunArgs, report m.RunReport) {
	if args.DryRun || len(report.Files) == 0 {
		return
	}

	if err := w.SaveReport(args.Reports, report); err != nil {
		slog.Error("Failed to save partial run report", "error", err)
	}
}

func (w *workflow) buildReport(summary *SummaryReporter, started time.Time) m.RunReport {
	report := m.RunReport{
		StartedAt: started,
		Duration:  time.Since(started),
		Framework: w.cfg.Framework,
		Runner:    w.cfg.TestFramework,
	}

	for _, outcome := range summary.Outcomes() {
		if outcome.Bucket == "" {
			continue
		}

		report.Files = append(report.Files, m.NewFileReport(outcome))
	}

	return report
}

// discover resolves the sources to process and groups them by directory.
// Explicit paths win over full scans, which win over change detection.
func (w *workflow) discover(ctx context.Context, paths []m.Path) ([]m.TargetGroup, error) {
	collector := newSourceCollector()

	switch {
	case len(paths) > 0:
		var result *multierror.Error

		for _, path := range paths {
			if err := w.collectPath(w.absolute(path), collector); err != nil {
				result = multierror.Append(result, err)
			}
		}

		if err := result.ErrorOrNil(); err != nil {
			return nil, err
		}
	case w.cfg.AllFiles:
		if err := w.Walk(w.cfg.WorkspaceRoot, collector.add); err != nil {
			return nil, fmt.Errorf("walk %s: %w", w.cfg.WorkspaceRoot, err)
		}
	default:
		changed, err := w.ChangedFiles(ctx)
		if err != nil {
			return nil, err
		}

		for _, path := range changed {
			if source, ok := w.sourceFor(path); ok {
				_ = collector.add(source)
			}
		}
	}

	groups := collector.groups()
	slog.Info("Discovered files", "files", countSources(groups), "directories", len(groups))

	return groups, nil
}

func (w *workflow) collectPath(path m.Path, collector *sourceCollector) error {
	exists, err := w.Exists(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if !exists {
		return fmt.Errorf("%s: no such file or directory", path)
	}

	if m.IsScript(path) || path.Ext() == ".html" {
		if source, ok := w.sourceFor(path); ok {
			return collector.add(source)
		}

		return nil
	}

	if err := w.Walk(path, collector.add); err != nil {
		return fmt.Errorf("walk %s: %w", path, err)
	}

	return nil
}

// sourceFor maps a changed path to the source file it belongs to. Angular
// templates map to their component script; test files and filtered paths
// are dropped.
func (w *workflow) sourceFor(path m.Path) (m.Path, bool) {
	if w.cfg.IsAngular() && path.Ext() == ".html" {
		path = m.SourcePathForCompanion(path, w.scriptExt())
	}

	if !m.IsScript(path) || strings.HasSuffix(string(path), ".d.ts") || m.IsTestPath(path, w.cfg.TestSuffix) {
		return "", false
	}

	if !w.Matches(path) {
		return "", false
	}

	exists, err := w.Exists(path)
	if err != nil || !exists {
		slog.Debug("Skipping missing source", "path", path, "error", err)
		return "", false
	}

	return path, true
}

func (w *workflow) scriptExt() string {
	if w.cfg.ScriptTarget == "javascript" {
		return ".js"
	}

	return ".ts"
}

func (w *workflow) absolute(path m.Path) m.Path {
	if filepath.IsAbs(string(path)) {
		return m.Path(filepath.Clean(string(path)))
	}

	return m.Path(filepath.Join(string(w.cfg.WorkspaceRoot), string(path)))
}

// loadSource reads a source file together with its companion template.
func (w *workflow) loadSource(path m.Path) (m.SourceFile, error) {
	content, err := w.ReadFile(path)
	if err != nil {
		return m.SourceFile{}, fmt.Errorf("read %s: %w", path, err)
	}

	source := m.SourceFile{Path: path, Content: content}

	companion, ok := w.companionFor(path)
	if !ok {
		return source, nil
	}

	companionContent, err := w.ReadFile(companion)
	if err != nil {
		return m.SourceFile{}, fmt.Errorf("read %s: %w", companion, err)
	}

	source.Companion = &m.File{Path: companion, Content: companionContent}

	return source, nil
}

func (w *workflow) companionFor(path m.Path) (m.Path, bool) {
	if !w.cfg.IsAngular() {
		return "", false
	}

	companion := m.CompanionPathFor(path)

	exists, err := w.Exists(companion)
	if err != nil || !exists {
		return "", false
	}

	return companion, true
}

// targets flattens groups into processing order.
func (w *workflow) targets(groups []m.TargetGroup) []m.Target {
	targets := make([]m.Target, 0, countSources(groups))

	for _, group := range groups {
		for i := len(group.Sources) - 1; i >= 0; i-- {
			source := group.Sources[i]
			target := m.Target{Source: source, Test: m.TestPathFor(source, w.cfg.TestSuffix)}

			if companion, ok := w.companionFor(source); ok {
				target.Companion = companion
			}

			targets = append(targets, target)
		}
	}

	return targets
}

func countSources(groups []m.TargetGroup) int {
	total := 0
	for _, group := range groups {
		total += len(group.Sources)
	}

	return total
}

// sourceCollector deduplicates sources and groups them by directory,
// keeping discovery order inside each group.
type sourceCollector struct {
	seen  map[m.Path]struct{}
	byDir map[m.Path]*m.TargetGroup
	dirs  []m.Path
}

func newSourceCollector() *sourceCollector {
	return &sourceCollector{
		seen:  map[m.Path]struct{}{},
		byDir: map[m.Path]*m.TargetGroup{},
	}
}

func (c *sourceCollector) add(path m.Path) error {
	if _, ok := c.seen[path]; ok {
		return nil
	}

	c.seen[path] = struct{}{}

	dir := path.Dir()

	group, ok := c.byDir[dir]
	if !ok {
		group = &m.TargetGroup{Dir: dir}
		c.byDir[dir] = group
		c.dirs = append(c.dirs, dir)
	}

	group.Sources = append(group.Sources, path)

	return nil
}

func (c *sourceCollector) groups() []m.TargetGroup {
	dirs := append([]m.Path(nil), c.dirs...)
	sort.Slice(dirs, func(i, j int) bool { return dirs[i] < dirs[j] })

	groups := make([]m.TargetGroup, 0, len(dirs))
	for _, dir := range dirs {
		groups = append(groups, *c.byDir[dir])
	}

	return groups
}

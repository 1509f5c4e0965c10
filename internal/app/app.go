// Package app implements the application layer for taxa.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"
	"go.trai.ch/taxa/internal/adapters/config"
	"go.trai.ch/taxa/internal/adapters/detector"
	"go.trai.ch/taxa/internal/adapters/linear"
	"go.trai.ch/taxa/internal/adapters/notify"
	"go.trai.ch/taxa/internal/adapters/telemetry"
	"go.trai.ch/taxa/internal/adapters/tui"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/core/ports"
	"go.trai.ch/taxa/internal/engine/labeltree"
	"go.trai.ch/taxa/internal/engine/lookup"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.LabelStore
	logger       ports.Logger
	notifier     *notify.Notifier
	sources      ports.LabelSourceFactory
	telemetry    *telemetry.Provider
	watcher      ports.Watcher

	teaOptions  []tea.ProgramOption
	stdin       io.Reader
	stdout      io.Writer
	interactive func() bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.LabelStore,
	log ports.Logger,
	notifier *notify.Notifier,
	sources ports.LabelSourceFactory,
	provider *telemetry.Provider,
	watcher ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		logger:       log,
		notifier:     notifier,
		sources:      sources,
		telemetry:    provider,
		watcher:      watcher,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput sets the writer results are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithInteractive overrides the terminal check of Pick.
func (a *App) WithInteractive(fn func() bool) *App {
	a.interactive = fn
	return a
}

// PickOptions configures the Pick method.
type PickOptions struct {
	// Write persists deletions, imports and favourites to the label files.
	Write bool
	// LogFile receives log output while the picker owns the terminal.
	// Empty selects .taxa/debug.log next to taxa.yaml.
	LogFile string
}

// Picked is one selected label as printed by Pick.
type Picked struct {
	Tree     string         `json:"tree"`
	ID       domain.LabelID `json:"id"`
	Name     string         `json:"name"`
	Color    string         `json:"color"`
	SourceID string         `json:"source_id,omitempty"`
}

// Pick runs the interactive picker and prints the selected labels as JSON.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Pick(ctx context.Context, cwd string, opts PickOptions) error {
	// 1. Load the workspace
	ws, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if !a.isInteractive() {
		return domain.ErrNotATerminal
	}

	// 2. Keep log output away from the terminal the picker draws on
	logFile := opts.LogFile
	if logFile == "" {
		logFile = filepath.Join(ws.Root, domain.DefaultDebugLogPath())
	}
	restore, err := a.redirectLogs(logFile)
	if err != nil {
		return err
	}
	defer restore()

	// 3. Build the owner, the trees and the lookup form
	var source ports.LabelSource
	if a.sources != nil {
		source = a.sources(ws.Lookup)
	}

	ownerOpts := []OwnerOption{WithLabelSource(source), WithNotifier(a.notifier)}
	if opts.Write {
		ownerOpts = append(ownerOpts, WithPersistence(a.store))
	}
	owner := NewOwner(ws, a.logger, ownerOpts...)

	container := labeltree.NewContainer(ws.Multiselect, owner, a.logger)
	defer container.Close()
	for _, spec := range ws.Trees {
		if _, err := container.AddTree(spec.Name, owner.Labels(spec.Name), spec.Options); err != nil {
			return err
		}
	}

	var form *lookup.Form
	if source != nil {
		form = lookup.NewForm(source, a.notifier, owner, ws.Lookup.SourceID, ws.Lookup.Color)
	}

	// 4. Initialize the renderer and route events to it
	model := tui.NewModel(ctx, container, form)
	teaOpts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, a.teaOptions...)
	renderer := tui.NewRenderer(model, teaOpts...)

	owner.OnChange(renderer.OnLabelsChanged)
	a.notifier.Observe(renderer.OnNotice)
	if a.telemetry != nil {
		a.telemetry.Attach(renderer)
		defer a.telemetry.Detach()
	}

	// 5. Run the renderer and the file watcher concurrently
	watchCtx, stopWatching := context.WithCancel(ctx)
	defer stopWatching()

	g, gctx := errgroup.WithContext(ctx)

	// Renderer Routine
	g.Go(func() error {
		defer stopWatching()
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	// Watcher Routine
	g.Go(func() error {
		a.watch(watchCtx, owner)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	return a.printSelection(container.Selected())
}

// watch reloads trees whose label files change on disk until ctx ends.
func (a *App) watch(ctx context.Context, owner *Owner) {
	paths := owner.Paths()
	if a.watcher == nil || len(paths) == 0 {
		return
	}

	if err := a.watcher.Start(ctx, paths); err != nil {
		a.notifier.Notify(err)
		return
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	for event := range a.watcher.Events() {
		if event.Operation == ports.OpRemove || event.Operation == ports.OpRename {
			continue
		}
		tree, ok := owner.TreeForPath(event.Path)
		if !ok {
			continue
		}

		labels, err := a.store.LoadLabels(event.Path)
		if err != nil {
			a.notifier.Notify(err)
			continue
		}
		if err := owner.Replace(tree, labels); err != nil {
			a.notifier.Notify(err)
		}
	}
}

func (a *App) printSelection(selected []labeltree.Selection) error {
	out := make([]Picked, 0, len(selected))
	for _, s := range selected {
		out = append(out, Picked{
			Tree:     s.Tree,
			ID:       s.Label.ID,
			Name:     s.Label.Name,
			Color:    s.Label.HexColor(),
			SourceID: s.Label.SourceID,
		})
	}

	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ShowOptions configures the Show method.
type ShowOptions struct {
	// Tree limits the output to one tree. Empty prints all trees.
	Tree string
	// Flat prints every label as a root.
	Flat bool
	// Expand opens every label.
	Expand bool
	// Color is one of "auto", "always" or "never".
	Color string
}

// Show prints the label trees of the workspace without taking over the terminal.
func (a *App) Show(_ context.Context, cwd string, opts ShowOptions) error {
	ws, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	specs := ws.Trees
	if opts.Tree != "" {
		spec, ok := ws.Tree(opts.Tree)
		if !ok {
			return zerr.With(domain.ErrUnknownTree, "tree", opts.Tree)
		}
		specs = []domain.TreeSpec{*spec}
	}

	profile := detector.Profile(detector.ResolveColorMode(opts.Color), a.stdout)
	printer := linear.NewPrinter(a.stdout, profile)

	for i, spec := range specs {
		treeOpts := spec.Options
		treeOpts.Standalone = true
		treeOpts.Flat = treeOpts.Flat || opts.Flat

		t := labeltree.New(spec.Name, spec.Labels, treeOpts, labeltree.WithLogger(a.logger))
		if opts.Expand {
			for _, l := range t.Labels() {
				t.SetExpanded(l, true)
			}
		}

		if i > 0 {
			if _, err := fmt.Fprintln(a.stdout); err != nil {
				return err
			}
		}
		if err := printer.PrintTree(t); err != nil {
			return err
		}
	}
	return nil
}

// SearchOptions configures the Search method.
type SearchOptions struct {
	// Unaccepted includes names that are not accepted.
	Unaccepted bool
	// Limit caps the number of printed results. Zero prints all.
	Limit int
	// JSON prints the results as JSON instead of a table.
	JSON bool
	// Color is one of "auto", "always" or "never".
	Color string
}

// Search looks name up in the external label source and prints the results.
// Without a taxa.yaml the default lookup settings are used.
func (a *App) Search(ctx context.Context, cwd, name string, opts SearchOptions) error {
	settings := config.DefaultLookupSettings()
	ws, err := a.configLoader.Load(cwd)
	switch {
	case err == nil:
		settings = ws.Lookup
	case domain.IsKind(err, domain.ErrConfigNotFound):
		a.logger.Info("no taxa.yaml found, using the default lookup settings")
	default:
		return zerr.Wrap(err, "failed to load configuration")
	}

	if a.sources == nil {
		return zerr.With(domain.ErrLookupFailed, "reason", "no label source configured")
	}

	form := lookup.NewForm(a.sources(settings), nil, nil, settings.SourceID, settings.Color)
	if opts.Unaccepted {
		form.ToggleUnaccepted()
	}
	if err := form.Search(ctx, name); err != nil {
		return err
	}

	results := form.Results()
	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	if opts.JSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	profile := detector.Profile(detector.ResolveColorMode(opts.Color), a.stdout)
	return linear.NewPrinter(a.stdout, profile).PrintResults(results)
}

func (a *App) isInteractive() bool {
	if a.interactive != nil {
		return a.interactive()
	}
	return detector.Interactive(a.stdin, a.stdout)
}

// redirectLogs points the logger at path. The returned function restores
// stderr.
func (a *App) redirectLogs(path string) (func(), error) {
	l, ok := a.logger.(interface{ SetOutput(w io.Writer) })
	if !ok {
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create log directory"), "path", path)
	}

	//nolint:gosec // path is given by the user
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.PrivateFilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open log file"), "path", path)
	}
	l.SetOutput(f)
	return func() {
		l.SetOutput(nil)
		_ = f.Close()
	}, nil
}

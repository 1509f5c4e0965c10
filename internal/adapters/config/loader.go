// Package config loads taxa.yaml and the label files it references.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Defaults for the lookup section.
const (
	DefaultBaseURL  = "https://www.marinespecies.org/rest"
	DefaultSourceID = 1
	DefaultTimeout  = 10 * time.Second
	DefaultRate     = 5.0
	DefaultColor    = "#0099ff"

	supportedVersion = "1"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
	Store  ports.LabelStore
}

// NewLoader creates a Loader reading from the operating system.
func NewLoader(logger ports.Logger) *Loader {
	fsys := NewOSFS()
	return &Loader{
		Logger: logger,
		FS:     fsys,
		Store:  NewStore(fsys),
	}
}

// Load finds taxa.yaml from cwd upward and loads every tree.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var taxafile Taxafile
	if err := l.readAndUnmarshalYAML(configPath, &taxafile); err != nil {
		return nil, err
	}

	if taxafile.Version != "" && taxafile.Version != supportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s: unknown version %q, reading it as version %s", domain.ConfigFileName, taxafile.Version, supportedVersion))
	}
	if len(taxafile.Trees) == 0 {
		return nil, zerr.With(domain.ErrNoTrees, "path", configPath)
	}

	root := filepath.Dir(configPath)
	ws := &domain.Workspace{
		Root:        root,
		Multiselect: taxafile.Multiselect,
		Lookup:      lookupSettings(taxafile.Lookup),
		Trees:       make([]domain.TreeSpec, 0, len(taxafile.Trees)),
	}

	seen := make(map[string]bool, len(taxafile.Trees))
	for i := range taxafile.Trees {
		spec, err := l.loadTree(root, &taxafile.Trees[i])
		if err != nil {
			return nil, err
		}
		if seen[spec.Name] {
			return nil, zerr.With(domain.ErrDuplicateTreeName, "tree", spec.Name)
		}
		seen[spec.Name] = true
		ws.Trees = append(ws.Trees, spec)
	}

	if ws.Lookup.Tree != "" && !seen[ws.Lookup.Tree] {
		return nil, zerr.With(zerr.With(domain.ErrUnknownTree, "tree", ws.Lookup.Tree), "path", configPath)
	}

	return ws, nil
}

// DiscoverRoot returns the directory containing the nearest taxa.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := l.FS.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) loadTree(root string, dto *TreeDTO) (domain.TreeSpec, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(dto.Labels), filepath.Ext(dto.Labels))
	}

	spec := domain.TreeSpec{
		Name:    name,
		Options: treeOptions(dto),
	}

	switch {
	case dto.Labels != "":
		spec.LabelsPath = resolvePath(root, dto.Labels)
		labels, err := l.Store.LoadLabels(spec.LabelsPath)
		if err != nil {
			return domain.TreeSpec{}, zerr.With(err, "tree", name)
		}
		spec.Labels = labels
		if len(dto.Items) > 0 {
			l.Logger.Warn(fmt.Sprintf("tree %q: both labels and items are set, items are ignored", name))
		}
	default:
		spec.Labels = fromRecords(dto.Items)
	}

	if len(spec.Labels) == 0 {
		l.Logger.Warn(fmt.Sprintf("tree %q has no labels", name))
	}
	return spec, nil
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Taxafile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}
	return nil
}

func treeOptions(dto *TreeDTO) domain.TreeOptions {
	opts := domain.DefaultTreeOptions()
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&opts.ShowTitle, dto.ShowTitle)
	set(&opts.Standalone, dto.Standalone)
	set(&opts.Collapsible, dto.Collapsible)
	set(&opts.Multiselect, dto.Multiselect)
	set(&opts.Deletable, dto.Deletable)
	set(&opts.ShowFavourites, dto.ShowFavourites)
	set(&opts.Flat, dto.Flat)
	return opts
}

// DefaultLookupSettings returns the lookup settings used without a taxa.yaml.
func DefaultLookupSettings() domain.LookupSettings {
	return lookupSettings(nil)
}

func lookupSettings(dto *LookupDTO) domain.LookupSettings {
	s := domain.LookupSettings{
		BaseURL:       DefaultBaseURL,
		SourceID:      DefaultSourceID,
		Timeout:       DefaultTimeout,
		RatePerSecond: DefaultRate,
		Color:         DefaultColor,
	}
	if dto == nil {
		return s
	}

	s.Tree = strings.TrimSpace(dto.Tree)
	if dto.BaseURL != "" {
		s.BaseURL = strings.TrimRight(dto.BaseURL, "/")
	}
	if dto.SourceID > 0 {
		s.SourceID = dto.SourceID
	}
	if dto.Timeout > 0 {
		s.Timeout = dto.Timeout
	}
	if dto.Rate > 0 {
		s.RatePerSecond = dto.Rate
	}
	if dto.Color != "" {
		s.Color = dto.Color
	}
	s.MarineOnly = dto.MarineOnly
	return s
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(root, path))
}

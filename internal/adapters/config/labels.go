package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.LabelStore = (*Store)(nil)

// Store reads and writes label files in YAML or JSON, chosen by extension.
type Store struct {
	FS FileSystem
}

// NewStore creates a Store reading through fsys.
func NewStore(fsys FileSystem) *Store {
	return &Store{FS: fsys}
}

// LoadLabels reads the labels file at path.
func (s *Store) LoadLabels(path string) ([]*domain.Label, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := s.FS.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLabelsReadFailed.Error()), "path", path)
	}

	var records []LabelRecord
	switch format {
	case formatJSON:
		err = json.Unmarshal(data, &records)
	default:
		err = yaml.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLabelsParseFailed.Error()), "path", path)
	}

	return fromRecords(records), nil
}

// SaveLabels writes labels to path, replacing the file atomically.
func (s *Store) SaveLabels(path string, labels []*domain.Label) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}

	records := toRecords(labels)
	var data []byte
	switch format {
	case formatJSON:
		data, err = json.MarshalIndent(records, "", "  ")
		data = append(data, '\n')
	default:
		data, err = yaml.Marshal(records)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLabelsWriteFailed.Error()), "path", path)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLabelsWriteFailed.Error()), "path", path)
	}
	return nil
}

type fileFormat int

const (
	formatYAML fileFormat = iota
	formatJSON
)

func formatOf(path string) (fileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".json":
		return formatJSON, nil
	default:
		return 0, zerr.With(domain.ErrUnsupportedLabelsFormat, "path", path)
	}
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func fromRecords(records []LabelRecord) []*domain.Label {
	labels := make([]*domain.Label, 0, len(records))
	for _, r := range records {
		l := &domain.Label{
			ID:        domain.LabelID(r.ID),
			Name:      r.Name,
			Color:     r.Color,
			SourceID:  r.SourceID,
			Favourite: r.Favourite,
		}
		if r.ParentID != nil {
			l.ParentID = domain.LabelID(*r.ParentID).Ptr()
		}
		labels = append(labels, l)
	}
	return labels
}

func toRecords(labels []*domain.Label) []LabelRecord {
	records := make([]LabelRecord, 0, len(labels))
	for _, l := range labels {
		r := LabelRecord{
			ID:        int64(l.ID),
			Name:      l.Name,
			Color:     l.Color,
			SourceID:  l.SourceID,
			Favourite: l.Favourite,
		}
		if l.ParentID != nil {
			parent := int64(*l.ParentID)
			r.ParentID = &parent
		}
		records = append(records, r)
	}
	return records
}

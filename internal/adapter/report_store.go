package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	m "exfold.dev/pkg/exfold/internal/model"
)

// ReportsFileName is the cache file written inside the reports directory.
const ReportsFileName = "reports.yaml"

const reportsFileVersion = 1

// ReportStore persists and retrieves fold reports.
type ReportStore interface {
	// SaveReports replaces the cache in dir with reports.
	SaveReports(dir m.Path, reports []m.FoldReport) error
	// LoadReports reads the cache in dir. A missing cache yields no reports.
	LoadReports(dir m.Path) ([]m.FoldReport, error)
	// CheckUpdates returns the sources whose hash differs from the cache.
	CheckUpdates(dir m.Path, sources []m.Source) ([]m.Source, error)
}

type reportsYAML struct {
	Version int            `yaml:"version"`
	Reports []m.FoldReport `yaml:"reports"`
}

// LocalReportStore keeps reports in a YAML file on disk.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReports writes reports sorted by path.
func (rs *LocalReportStore) SaveReports(dir m.Path, reports []m.FoldReport) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	sorted := append([]m.FoldReport(nil), reports...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	data, err := yaml.Marshal(reportsYAML{Version: reportsFileVersion, Reports: sorted})
	if err != nil {
		return fmt.Errorf("marshal reports: %w", err)
	}

	path := filepath.Join(string(dir), ReportsFileName)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace reports: %w", err)
	}

	slog.Debug("saved reports", "path", path, "count", len(sorted))

	return nil
}

// LoadReports reads the reports saved in dir.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.FoldReport, error) {
	path := filepath.Join(string(dir), ReportsFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports: %w", err)
	}

	var decoded reportsYAML
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal reports %s: %w", path, err)
	}

	if decoded.Version != reportsFileVersion {
		slog.Warn("ignoring reports with unknown version", "path", path, "version", decoded.Version)
		return nil, nil
	}

	return decoded.Reports, nil
}

// CheckUpdates compares source hashes with the cached reports.
func (rs *LocalReportStore) CheckUpdates(dir m.Path, sources []m.Source) ([]m.Source, error) {
	reports, err := rs.LoadReports(dir)
	if err != nil {
		return nil, err
	}

	cached := make(map[m.Path]string, len(reports))
	for _, report := range reports {
		cached[report.Path] = report.Hash
	}

	changed := make([]m.Source, 0, len(sources))

	for _, source := range sources {
		if source.Origin == nil {
			continue
		}

		if hash, ok := cached[source.Origin.FullPath]; ok && hash == source.Origin.Hash {
			continue
		}

		changed = append(changed, source)
	}

	return changed, nil
}

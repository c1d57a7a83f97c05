package adapter

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	m "exfold.dev/pkg/exfold/internal/model"
)

func sampleReport(path, hash string) m.FoldReport {
	return m.FoldReport{
		Path:     m.Path(path),
		Hash:     hash,
		Lines:    3,
		Levels:   []int{1, 1, 1},
		Ranges:   []m.FoldRange{{StartLine: 1, EndLine: 3, Level: 1}},
		MaxLevel: 1,
	}
}

func TestLocalReportStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), ".exfold-reports")
	rs := &LocalReportStore{}

	reports := []m.FoldReport{sampleReport("/abs/b.ex", "hash-b"), sampleReport("/abs/a.ex", "hash-a")}

	if err := rs.SaveReports(m.Path(dir), reports); err != nil {
		t.Fatalf("SaveReports returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ReportsFileName))
	if err != nil {
		t.Fatalf("expected %s to exist: %v", ReportsFileName, err)
	}

	var decoded reportsYAML
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal YAML: %v", err)
	}

	if decoded.Version != reportsFileVersion {
		t.Fatalf("unexpected version %d", decoded.Version)
	}

	loaded, err := rs.LoadReports(m.Path(dir))
	if err != nil {
		t.Fatalf("LoadReports returned error: %v", err)
	}

	want := []m.FoldReport{sampleReport("/abs/a.ex", "hash-a"), sampleReport("/abs/b.ex", "hash-b")}
	if !reflect.DeepEqual(loaded, want) {
		t.Fatalf("LoadReports = %+v, want %+v", loaded, want)
	}
}

func TestLocalReportStore_LoadReports_MissingDir(t *testing.T) {
	t.Parallel()

	rs := &LocalReportStore{}

	reports, err := rs.LoadReports(m.Path(filepath.Join(t.TempDir(), "does-not-exist")))
	if err != nil {
		t.Fatalf("LoadReports returned error: %v", err)
	}

	if len(reports) != 0 {
		t.Fatalf("expected no reports, got %d", len(reports))
	}
}

func TestLocalReportStore_LoadReports_Corrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, ReportsFileName), "version: [\n")

	if _, err := (&LocalReportStore{}).LoadReports(m.Path(dir)); err == nil {
		t.Fatalf("expected an error for corrupt YAML")
	}
}

func TestLocalReportStore_CheckUpdates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rs := &LocalReportStore{}

	if err := rs.SaveReports(m.Path(dir), []m.FoldReport{sampleReport("/abs/a.ex", "hash-a")}); err != nil {
		t.Fatalf("SaveReports returned error: %v", err)
	}

	sources := []m.Source{
		{Origin: &m.File{FullPath: "/abs/a.ex", Hash: "hash-a"}},
		{Origin: &m.File{FullPath: "/abs/b.ex", Hash: "hash-b"}},
		{Origin: nil},
	}

	changed, err := rs.CheckUpdates(m.Path(dir), sources)
	if err != nil {
		t.Fatalf("CheckUpdates returned error: %v", err)
	}

	if len(changed) != 1 || changed[0].Origin.FullPath != "/abs/b.ex" {
		t.Fatalf("CheckUpdates = %+v, want only /abs/b.ex", changed)
	}
}

package domain_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exfold.dev/pkg/exfold/internal/adapter"
	"exfold.dev/pkg/exfold/internal/controller"
	domain "exfold.dev/pkg/exfold/internal/domain"
	m "exfold.dev/pkg/exfold/internal/model"
)

func newExamplesWorkflow(t *testing.T) (domain.Workflow, adapter.ReportStore, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	store := adapter.NewReportStore()
	wf := domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		store,
		adapter.NewFSWatcher(0),
		controller.NewSimpleUI(cmd),
		domain.NewClassifier(),
	)

	return wf, store, out
}

func reportsByName(reports []m.FoldReport) map[string]m.FoldReport {
	byName := make(map[string]m.FoldReport, len(reports))
	for _, report := range reports {
		byName[filepath.Base(string(report.Path))] = report
	}

	return byName
}

func TestWorkflow_List_Examples(t *testing.T) {
	wf, store, out := newExamplesWorkflow(t)
	reportsDir := m.Path(t.TempDir())

	args := domain.ListArgs{
		Paths:    []m.Path{"../../examples/..."},
		UseCache: true,
		Reports:  reportsDir,
		Threads:  3,
		SpillDir: t.TempDir(),
	}

	require.NoError(t, wf.List(context.Background(), args))

	reports, err := store.LoadReports(reportsDir)
	require.NoError(t, err)
	require.Len(t, reports, 3, "files under _build are skipped")

	byName := reportsByName(reports)

	assert.Equal(t, []int{0, 0, 0, 0, 0, 1, 1, 1, 0, 1, 1, 0}, byName["math.ex"].Levels)
	assert.Equal(t, 2, byName["math.ex"].TopLevelFolds())

	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 0, 1, 1, 1, 0}, byName["counter.ex"].Levels)
	assert.Equal(t, 2, byName["counter.ex"].TopLevelFolds())

	assert.Equal(t, []int{0, 0, 0, 1, 2, 2, 2, 1, 2, 2, 2, 1, 0}, byName["math_test.exs"].Levels)
	assert.Equal(t, 2, byName["math_test.exs"].MaxLevel)

	assert.Contains(t, out.String(), "counter.ex")
	assert.NotContains(t, out.String(), "ignored.ex")
	assert.NotContains(t, out.String(), "yes")

	out.Reset()

	require.NoError(t, wf.List(context.Background(), args))
	assert.Equal(t, 3, strings.Count(out.String(), "yes"), "second run is served from the cache")
}

func TestWorkflow_List_ExamplesExclude(t *testing.T) {
	wf, _, out := newExamplesWorkflow(t)

	err := wf.List(context.Background(), domain.ListArgs{
		Paths:    []m.Path{"../../examples/..."},
		Exclude:  []string{`\.ex$`},
		Threads:  1,
		SpillDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "math_test.exs")
	assert.NotContains(t, out.String(), "counter.ex")
	assert.Contains(t, out.String(), "TOTAL FILES 1")
}

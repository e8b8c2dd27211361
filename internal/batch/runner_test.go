package batch

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-closure/internal/closure"
	"type-closure/internal/diagnostic"
	"type-closure/internal/metadata"
	"type-closure/internal/report"
	"type-closure/internal/stats"
)

const pointYAML = `
types:
  - name: java.lang.Object
    methods:
      - name: toString
        returns: java.lang.String
      - name: hashCode
        returns: int
  - name: java.lang.String
    supertype: java.lang.Object
  - name: Point
    supertype: java.lang.Object
    fields:
      - name: x
        type: int
    constructors:
      - params: [int]
    methods:
      - name: getX
        returns: int
  - name: Broken
    fields:
      - name: ghost
        type: Missing
`

var pointConfig = closure.TraversalConfig{IgnoreFramework: true, Recursive: true}

func newRunner(t *testing.T, logs *bytes.Buffer) *Runner {
	t.Helper()

	table, err := metadata.Parse([]byte(pointYAML))
	require.NoError(t, err)

	var logger *log.Logger
	if logs != nil {
		logger = log.New(logs, "", 0)
	}

	return NewRunner(closure.NewExplorer(table, closure.Namespaces{"java", "sun"}), logger)
}

func TestRun_Point(t *testing.T) {
	res, err := newRunner(t, nil).Run([]string{"Point"}, pointConfig)
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)

	entry := res.Entries[0]
	assert.Equal(t, []stats.ClassStats{{
		Name:                 "Point",
		Fields:               1,
		Methods:              1,
		Constructors:         1,
		TotalParams:          0,
		AvgConstructorParams: 1,
	}}, entry.Classes)

	assert.Equal(t, "Point,1,1,1,1,0,1,1", strings.Join(report.Row(entry.Summary), ","))
}

func TestRun_SkipsUnresolvedRoots(t *testing.T) {
	var logs bytes.Buffer

	res, err := newRunner(t, &logs).Run([]string{"Point", "Unresolvable.Name"}, pointConfig)
	require.NoError(t, err)

	require.Len(t, res.Entries, 1)
	assert.Equal(t, "Point", res.Entries[0].Summary.Root)
	assert.Equal(t, []string{"Unresolvable.Name"}, res.Unresolved)

	require.Len(t, res.Diagnostics.Warnings, 1)
	warning := res.Diagnostics.Warnings[0]
	assert.Equal(t, diagnostic.CodeRootNotFound, warning.Code)
	assert.Equal(t, "class not found: Unresolvable.Name", warning.Message)
	assert.False(t, res.Diagnostics.HasErrors())
	assert.Contains(t, logs.String(), "class not found: Unresolvable.Name")
}

func TestRun_SuggestsKnownNames(t *testing.T) {
	res, err := newRunner(t, nil).Run([]string{"Pont"}, pointConfig)
	require.NoError(t, err)

	assert.Equal(t, []string{"Pont"}, res.Unresolved)
	require.Len(t, res.Diagnostics.Infos, 1)

	info := res.Diagnostics.Infos[0]
	assert.Equal(t, diagnostic.CodeSuggestion, info.Code)
	assert.Equal(t, "did you mean Point?", info.Message)
	assert.Equal(t, "Pont", info.Root)
}

func TestRun_DefectAborts(t *testing.T) {
	res, err := newRunner(t, nil).Run([]string{"Point", "Broken", "Point"}, pointConfig)
	require.Error(t, err)

	var defect *closure.DefectError
	require.ErrorAs(t, err, &defect)
	assert.Equal(t, "Missing", defect.Name)

	require.NotNil(t, res)
	assert.Len(t, res.Entries, 1)
	assert.True(t, res.Diagnostics.HasErrors())
	assert.Empty(t, res.Unresolved)

	var recorded *closure.DefectError
	require.ErrorAs(t, res.Diagnostics.Error(), &recorded)
	assert.Equal(t, "Broken", recorded.Root)
}

func TestRun_NoRoots(t *testing.T) {
	res, err := newRunner(t, nil).Run(nil, pointConfig)
	require.NoError(t, err)

	assert.Empty(t, res.Entries)
	require.Len(t, res.Diagnostics.Infos, 1)
	assert.Equal(t, diagnostic.CodeNoRoots, res.Diagnostics.Infos[0].Code)
}

func TestAnalyze_BatchFromFile(t *testing.T) {
	dir := t.TempDir()

	namesPath := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(namesPath, []byte("Point,Unresolvable.Name\n"), 0o644))

	roots, err := report.ReadNames(namesPath)
	require.NoError(t, err)

	out := filepath.Join(dir, report.FileName(pointConfig))

	res, err := newRunner(t, nil).Analyze(roots, pointConfig, out)
	require.NoError(t, err)
	assert.Equal(t, []string{"Unresolvable.Name"}, res.Unresolved)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(report.Header, ","), lines[0])
	assert.Equal(t, "Point,1,1,1,1,0,1,1", lines[1])
}

func TestAnalyze_EmptyNamesFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.csv")

	res, err := newRunner(t, nil).Analyze(nil, pointConfig, out)
	require.NoError(t, err)
	assert.Empty(t, res.Entries)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(report.Header, ",")+"\n", string(data))
}

func TestAnalyze_ReportWriteError(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.csv")
	require.NoError(t, os.Mkdir(out, 0o755))

	_, err := newRunner(t, nil).Analyze([]string{"Point"}, pointConfig, out)
	require.Error(t, err)

	var writeErr *report.ReportWriteError
	assert.ErrorAs(t, err, &writeErr)
}

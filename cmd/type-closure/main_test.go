package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-closure/internal/report"
)

const tableYAML = `
types:
  - name: java.lang.Object
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
`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func tableArgs(t *testing.T) (string, []string) {
	t.Helper()

	dir := t.TempDir()

	meta := filepath.Join(dir, "types.yaml")
	require.NoError(t, os.WriteFile(meta, []byte(tableYAML), 0o644))

	return dir, []string{"--backend", "table", "--metadata", meta, "--out", dir}
}

func TestAnalyzeCmd_Table(t *testing.T) {
	dir, flags := tableArgs(t)

	args := append([]string{"analyze", "--ignore-framework"}, flags...)
	args = append(args, "Point", "Unresolvable.Name")

	stdout, stderr, err := execute(t, "", args...)
	require.NoError(t, err)

	path := filepath.Join(dir, "data API true R true.csv")
	assert.Contains(t, stdout, "Statistics for 1 of 2 types written to: "+path)
	assert.Contains(t, stderr, "class not found: Unresolvable.Name")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Point,1,1,1,1,0,1,1\n")
}

func TestAnalyzeCmd_NoRoots(t *testing.T) {
	_, flags := tableArgs(t)

	_, _, err := execute(t, "", append([]string{"analyze"}, flags...)...)
	require.Error(t, err)
}

func TestAnalyzeCmd_EmptyNamesFile(t *testing.T) {
	dir, flags := tableArgs(t)

	names := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(names, nil, 0o644))

	stdout, _, err := execute(t, "", append([]string{"analyze", "--file", names}, flags...)...)
	require.NoError(t, err)

	path := filepath.Join(dir, "data API false R true.csv")
	assert.Contains(t, stdout, "Statistics for 0 of 0 types written to: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(report.Header, ",")+"\n", string(data))
}

func TestAnalyzeCmd_Verbose(t *testing.T) {
	_, flags := tableArgs(t)

	args := append([]string{"analyze", "--verbose", "--ignore-framework"}, flags...)
	stdout, _, err := execute(t, "", append(args, "Point")...)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Point refers to 1 types\n")
	assert.Contains(t, stdout, "  Point has 1 fields, 1 methods with 0 parameters, 1 constructors with 1 parameters on average\n")
}

func TestAnalyzeCmd_InvalidBackend(t *testing.T) {
	_, _, err := execute(t, "", "analyze", "--backend", "jvm", "Point")
	require.Error(t, err)
}

func TestMenuCmd_Quit(t *testing.T) {
	_, flags := tableArgs(t)

	stdout, _, err := execute(t, "r\nq\n", append([]string{"menu"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "R: Toggle recursion. Current: false")
}

func TestInspectCmd(t *testing.T) {
	_, flags := tableArgs(t)

	stdout, _, err := execute(t, "", append([]string{"inspect", "Point"}, flags...)...)
	require.NoError(t, err)

	assert.Contains(t, stdout, "extends java.lang.Object")
	assert.Contains(t, stdout, "field x int")
	assert.Contains(t, stdout, "method getX() int")

	stdout, _, err = execute(t, "", append([]string{"inspect", "--dump", "Point"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "analyze.Facets")
}

func TestInspectCmd_LongNames(t *testing.T) {
	stdout, _, err := execute(t, "", "inspect", "type-closure/testfixtures/geometry.Path")
	require.NoError(t, err)
	assert.Contains(t, stdout, "extends geometry.Point[]")
	assert.NotContains(t, stdout, "type-closure/")

	stdout, _, err = execute(t, "", "inspect", "--long", "type-closure/testfixtures/geometry.Path")
	require.NoError(t, err)
	assert.Contains(t, stdout, "type-closure/testfixtures/geometry.Path\n")
	assert.Contains(t, stdout, "extends type-closure/testfixtures/geometry.Point[]")
}

func TestInspectCmd_NotFound(t *testing.T) {
	_, flags := tableArgs(t)

	_, _, err := execute(t, "", append([]string{"inspect", "Nope"}, flags...)...)
	require.Error(t, err)
}

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
dwellings:
  - key: h1
    house_number: "12"
    street_name: Lê Lợi
    owner_name: Nguyễn Văn A
records:
  merit:
    - dwelling: h1
      subject_name: Nguyễn Văn A
      classification_name: Thương binh
      subsidy_amount: 1200000
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))
	return path
}

func TestPolygonCheck(t *testing.T) {
	out, err := run(t, "10.0,106.0\nnot a point\n10.0\t106.001\n10.001 106.001\n", "polygon", "check", "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "3 points")
	assert.Contains(t, out, "10.000000,106.001000")

	_, err = run(t, "10.0,106.0\n", "polygon", "check", "--output", "text")
	assert.Error(t, err)
}

func TestReportJSON(t *testing.T) {
	out, err := run(t, "", "report", "--config", "", "--seed", writeSeed(t), "--status", "", "--output", "json")
	require.NoError(t, err)

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, float64(1200000), summary["total_budget"])
}

func TestReportRejectsBadStatus(t *testing.T) {
	_, err := run(t, "", "report", "--config", "", "--seed", writeSeed(t), "--status", "deleted", "--output", "text")
	assert.Error(t, err)
}

func TestExportWritesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merit.csv")
	out, err := run(t, "", "export", "merit", "--config", "", "--seed", writeSeed(t), "--status", "", "--format", "csv", "--out", path, "--upload=false")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 1 rows")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(data), "Thương binh")
}

func TestExportUploadWithoutBucket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merit.csv")
	_, err := run(t, "", "export", "merit", "--config", "", "--seed", writeSeed(t), "--status", "", "--format", "csv", "--out", path, "--upload")
	assert.Error(t, err)
}

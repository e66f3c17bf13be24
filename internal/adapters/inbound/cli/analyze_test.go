package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/readability/internal/adapters/inbound/cli"
	"github.com/openkraft/readability/internal/domain"
)

const fixtureDir = "../../../../testdata/playwright"

const goodSpec = `import { test, expect } from '@playwright/test';

test('should show the dashboard heading', async ({ page }) => {
  await page.goto('/dashboard');
  await expect(page.getByRole('heading')).toBeVisible();
});
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	out, err := run(t, fixtureDir, "--format", "json", "--no-history")
	require.NoError(t, err)

	var report struct {
		Summary struct {
			OverallScore int    `json:"overallScore"`
			Grade        string `json:"grade"`
			TotalFiles   int    `json:"totalFiles"`
			TotalTests   int    `json:"totalTests"`
		} `json:"summary"`
		Files []struct {
			Path string `json:"path"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report), "json output must not carry a text preamble")
	assert.Equal(t, 100, report.Summary.OverallScore)
	assert.Equal(t, "A", report.Summary.Grade)
	assert.Equal(t, 2, report.Summary.TotalFiles)
	assert.Equal(t, 4, report.Summary.TotalTests)
	for _, f := range report.Files {
		assert.False(t, filepath.IsAbs(f.Path), "paths are relative to the analyzed directory: %s", f.Path)
	}
}

func TestAnalyzeCommand_DefaultText(t *testing.T) {
	out, err := run(t, fixtureDir, "--no-history")
	require.NoError(t, err)
	assert.Contains(t, out, "Analyzing tests in:")
	assert.Contains(t, out, "Passing threshold: 70")
	assert.Contains(t, out, "Test Readability Score")
	assert.Contains(t, out, "100 / 100")
}

func TestAnalyzeCommand_ThresholdOfHundredPasses(t *testing.T) {
	_, err := run(t, fixtureDir, "--threshold", "100", "--no-history")
	assert.NoError(t, err)
}

func TestAnalyzeCommand_InvalidThreshold(t *testing.T) {
	for _, v := range []string{"101", "-1", "abc", "7.5"} {
		t.Run(v, func(t *testing.T) {
			out, err := run(t, fixtureDir, "--threshold="+v, "--no-history")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidThreshold)
			assert.Empty(t, out, "nothing is analyzed with an invalid threshold")
		})
	}
}

func TestAnalyzeCommand_UnknownFormat(t *testing.T) {
	_, err := run(t, fixtureDir, "--format", "xml", "--no-history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestAnalyzeCommand_InvalidLogLevel(t *testing.T) {
	_, err := run(t, fixtureDir, "--log-level", "loud", "--no-history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestAnalyzeCommand_TooManyArgs(t *testing.T) {
	_, err := run(t, fixtureDir, fixtureDir)
	assert.Error(t, err)
}

func TestAnalyzeCommand_EmptyProjectFailsDefaultThreshold(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "--no-history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below threshold 70")
	assert.Contains(t, out, "No test files found!")
}

func TestAnalyzeCommand_ZeroThresholdAlwaysPasses(t *testing.T) {
	_, err := run(t, t.TempDir(), "--threshold", "0", "--no-history")
	assert.NoError(t, err)
}

func TestAnalyzeCommand_ThresholdFromConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".readability.yaml"), []byte("threshold: 0\n"), 0644))

	out, err := run(t, dir, "--no-history")
	require.NoError(t, err)
	assert.Contains(t, out, "Passing threshold: 0")
}

func TestAnalyzeCommand_FlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".readability.yaml"), []byte("threshold: 0\n"), 0644))

	_, err := run(t, dir, "--threshold", "50", "--no-history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below threshold 50")
}

func TestAnalyzeCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".readability.yaml"), []byte("threshold: 250\n"), 0644))

	_, err := run(t, dir, "--no-history")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidThreshold)
}

func TestAnalyzeCommand_HTMLToFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "report.html")

	out, err := run(t, fixtureDir, "--format", "html", "--output", dest, "--no-history")
	require.NoError(t, err)
	assert.Contains(t, out, "Report generated: "+dest)
	assert.Contains(t, out, "Overall score: 100/100")
	assert.Contains(t, out, "Files analyzed: 2")
	assert.Contains(t, out, "Tests analyzed: 4")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
}

func TestAnalyzeCommand_JSONToFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "report.json")

	_, err := run(t, fixtureDir, "--format", "json", "--output", dest, "--no-history")
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestAnalyzeCommand_RecordsHistory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.spec.ts"), []byte(goodSpec), 0644))

	_, err := run(t, dir)
	require.NoError(t, err)
	_, err = run(t, dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".readability", "history", "scores.json"))
	require.NoError(t, err)

	out, err := run(t, "history", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Score History")
	assert.Contains(t, out, "100/100")
	assert.Contains(t, out, "1 files, 1 tests")
}

func TestAnalyzeCommand_NoHistorySkipsRecording(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.spec.ts"), []byte(goodSpec), 0644))

	_, err := run(t, dir, "--no-history")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".readability"))
	assert.True(t, os.IsNotExist(err))
}

func TestHistoryCommand_Empty(t *testing.T) {
	out, err := run(t, "history", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No score history found.")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "test-readability dev (none)\n", out)
}

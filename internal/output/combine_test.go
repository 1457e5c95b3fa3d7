package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mashkanta/mashkanta/internal/domain"
)

func writeSummaryFile(t *testing.T, dir, name string, summaries []domain.ScenarioSummary) {
	t.Helper()
	data, err := CSVSummarizer{}.Format(summaries)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestCombineSummaryFiles(t *testing.T) {
	dir := t.TempDir()
	writeSummaryFile(t, dir, "b_summary.csv", []domain.ScenarioSummary{sampleSummary("zeta")})
	writeSummaryFile(t, dir, "a_summary.csv", []domain.ScenarioSummary{
		sampleSummary("alpha"),
		sampleSummary("mid"),
	})

	combined, skipped, err := CombineSummaryFiles(filepath.Join(dir, "*_summary.csv"))
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, combined, 3)

	assert.Equal(t, "alpha", combined[0].Name)
	assert.Equal(t, "mid", combined[1].Name)
	assert.Equal(t, "zeta", combined[2].Name)
}

func TestCombineSummaryFiles_SkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeSummaryFile(t, dir, "good_summary.csv", []domain.ScenarioSummary{sampleSummary("alpha")})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad_summary.csv"), []byte("not,a,summary\n"), 0o644))

	combined, skipped, err := CombineSummaryFiles(filepath.Join(dir, "*_summary.csv"))
	require.NoError(t, err)
	require.Len(t, skipped, 1)
	assert.Contains(t, skipped[0].Error(), "bad_summary.csv")
	require.Len(t, combined, 1)
	assert.Equal(t, "alpha", combined[0].Name)
}

func TestCombineSummaryFiles_NoMatches(t *testing.T) {
	_, _, err := CombineSummaryFiles(filepath.Join(t.TempDir(), "*.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no summary files match")
}

func TestCombineSummaryFiles_AllBad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.csv"), []byte("nope\n"), 0o644))

	_, skipped, err := CombineSummaryFiles(filepath.Join(dir, "*.csv"))
	require.Error(t, err)
	assert.Len(t, skipped, 1)
	assert.Contains(t, err.Error(), "no rows parsed")
}

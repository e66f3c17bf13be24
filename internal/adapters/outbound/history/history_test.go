package history_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/openkraft/readability/internal/adapters/outbound/history"
	"github.com/openkraft/readability/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.ScoreEntry{
		ID:         "run-1",
		Timestamp:  "2026-02-25T10:00:00Z",
		CommitHash: "abc1234",
		Overall:    67,
		Grade:      "D",
		TotalFiles: 3,
		TotalTests: 14,
	}

	err := h.Save(dir, entry)
	require.NoError(t, err)

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.ScoreEntry{Timestamp: "t1", Overall: 47, Grade: "F"}))
	require.NoError(t, h.Save(dir, domain.ScoreEntry{Timestamp: "t2", Overall: 72, Grade: "C"}))
	require.NoError(t, h.Save(dir, domain.ScoreEntry{Timestamp: "t3", Overall: 91, Grade: "A"}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 47, entries[0].Overall)
	assert.Equal(t, 91, entries[2].Overall)
}

func TestHistory_AssignsIDs(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.ScoreEntry{Timestamp: "t1"}))
	require.NoError(t, h.Save(dir, domain.ScoreEntry{Timestamp: "t2"}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	_, err = uuid.Parse(entries[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestHistory_LoadEmpty(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entries, err := h.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, history.File)
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte("not json"), 0644))

	_, err := history.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestHistory_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	nestedDir := filepath.Join(dir, "deep", "nested")
	h := history.New()

	err := h.Save(nestedDir, domain.ScoreEntry{Timestamp: "t1", Overall: 50, Grade: "F"})
	require.NoError(t, err)

	entries, err := h.Load(nestedDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNewEntry(t *testing.T) {
	result := domain.NewProjectResult([]domain.FileRecord{
		{FileScore: 80, TestCount: 4},
		{FileScore: 90, TestCount: 2},
	})
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600))

	e := history.NewEntry(result, "deadbeef", at)
	_, err := uuid.Parse(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01T11:30:00Z", e.Timestamp)
	assert.Equal(t, "deadbeef", e.CommitHash)
	assert.Equal(t, 85, e.Overall)
	assert.Equal(t, "B", e.Grade)
	assert.Equal(t, 2, e.TotalFiles)
	assert.Equal(t, 6, e.TotalTests)
}

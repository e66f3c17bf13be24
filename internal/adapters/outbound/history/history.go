package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/openkraft/readability/internal/domain"
)

// File is the history location relative to the analyzed root.
const File = ".readability/history/scores.json"

// FileHistory implements domain.ScoreHistory using JSON file storage.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

// NewEntry summarizes a run for the history file. commit may be empty.
func NewEntry(result *domain.ProjectResult, commit string, at time.Time) domain.ScoreEntry {
	return domain.ScoreEntry{
		ID:         uuid.NewString(),
		Timestamp:  at.UTC().Format(time.RFC3339),
		CommitHash: commit,
		Overall:    result.OverallScore,
		Grade:      result.Grade(),
		TotalFiles: result.TotalFiles,
		TotalTests: result.TotalTests,
	}
}

// Save appends entry to the project's history. Entries without an ID get one.
func (h *FileHistory) Save(projectPath string, entry domain.ScoreEntry) error {
	entries, err := h.Load(projectPath)
	if err != nil {
		return err
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entries = append(entries, entry)

	fp := filepath.Join(projectPath, File)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

// Load returns all entries in the order they were saved, nil when no history exists.
func (h *FileHistory) Load(projectPath string) ([]domain.ScoreEntry, error) {
	fp := filepath.Join(projectPath, File)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", File, err)
	}

	return entries, nil
}

package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"tutorbuddy/internal/store"
)

// BackupData wraps an exported state record with provenance
type BackupData struct {
	Version       int             `json:"version"`
	ExportedAt    time.Time       `json:"exportedAt"`
	SchemaVersion int             `json:"schemaVersion"`
	State         json.RawMessage `json:"state"`
}

// BackupService exports and restores the persisted state record as a
// JSON file, for moving an install between machines or databases.
type BackupService struct {
	repo store.Recorder
}

// NewBackupService creates a new backup service
func NewBackupService(repo store.Recorder) *BackupService {
	return &BackupService{repo: repo}
}

// Export writes the current state record to outputPath. The file is
// written to a temp name and renamed so a crash cannot leave a partial
// backup in place.
func (s *BackupService) Export(outputPath string) error {
	payload, schemaVersion, err := s.repo.LoadState()
	if err != nil {
		return fmt.Errorf("failed to load state for backup: %w", err)
	}
	if payload == nil {
		return fmt.Errorf("no state record to back up")
	}

	backup := BackupData{
		Version:       1,
		ExportedAt:    time.Now().UTC(),
		SchemaVersion: schemaVersion,
		State:         json.RawMessage(payload),
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	tmpPath := outputPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to finalize backup file: %w", err)
	}

	log.Printf("Backup written: %s", filepath.Base(outputPath))
	return nil
}

// ExportToWriter streams the backup JSON to w
func (s *BackupService) ExportToWriter(w io.Writer) error {
	payload, schemaVersion, err := s.repo.LoadState()
	if err != nil {
		return fmt.Errorf("failed to load state for backup: %w", err)
	}
	if payload == nil {
		return fmt.Errorf("no state record to back up")
	}

	backup := BackupData{
		Version:       1,
		ExportedAt:    time.Now().UTC(),
		SchemaVersion: schemaVersion,
		State:         json.RawMessage(payload),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(backup)
}

// Import restores a backup file into the state record, replacing whatever
// is there. The caller must reload the store afterwards.
func (s *BackupService) Import(inputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("failed to parse backup file: %w", err)
	}
	if len(backup.State) == 0 {
		return fmt.Errorf("backup file has no state payload")
	}

	if err := s.repo.SaveState(backup.SchemaVersion, backup.State); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}

	log.Printf("Backup restored from %s (schema v%d)", filepath.Base(inputPath), backup.SchemaVersion)
	return nil
}

package service

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeStateRecorder struct {
	payload []byte
	version int
	saves   int
}

func (f *fakeStateRecorder) SaveState(version int, payload []byte) error {
	f.version = version
	f.payload = append([]byte(nil), payload...)
	f.saves++
	return nil
}

func (f *fakeStateRecorder) LoadState() ([]byte, int, error) {
	return f.payload, f.version, nil
}

func TestBackupExportImportRoundTrip(t *testing.T) {
	source := &fakeStateRecorder{payload: []byte(`{"isAuthenticated":true}`), version: 2}
	path := filepath.Join(t.TempDir(), "state.json")

	if err := NewBackupService(source).Export(path); err != nil {
		t.Fatalf("Export() = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading backup file: %v", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		t.Fatalf("backup file is not valid JSON: %v", err)
	}
	if backup.SchemaVersion != 2 {
		t.Errorf("schemaVersion = %d, want 2", backup.SchemaVersion)
	}

	target := &fakeStateRecorder{}
	if err := NewBackupService(target).Import(path); err != nil {
		t.Fatalf("Import() = %v", err)
	}
	if target.version != 2 {
		t.Errorf("restored version = %d, want 2", target.version)
	}
	if string(target.payload) != `{"isAuthenticated":true}` {
		t.Errorf("restored payload = %s", target.payload)
	}
}

func TestBackupExportToWriter(t *testing.T) {
	recorder := &fakeStateRecorder{payload: []byte(`{"userRole":"child"}`), version: 2}

	var buf bytes.Buffer
	if err := NewBackupService(recorder).ExportToWriter(&buf); err != nil {
		t.Fatalf("ExportToWriter() = %v", err)
	}

	var backup BackupData
	if err := json.Unmarshal(buf.Bytes(), &backup); err != nil {
		t.Fatalf("stream is not valid JSON: %v", err)
	}
	if string(backup.State) != `{"userRole":"child"}` {
		t.Errorf("state payload = %s", backup.State)
	}
}

func TestBackupExportWithoutRecord(t *testing.T) {
	service := NewBackupService(&fakeStateRecorder{})

	if err := service.Export(filepath.Join(t.TempDir(), "state.json")); err == nil {
		t.Error("Export() with no stored record should fail")
	}
	if err := service.ExportToWriter(&bytes.Buffer{}); err == nil {
		t.Error("ExportToWriter() with no stored record should fail")
	}
}

func TestBackupImportRejectsEmptyState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte(`{"version":1,"schemaVersion":2}`), 0o600); err != nil {
		t.Fatal(err)
	}

	recorder := &fakeStateRecorder{}
	err := NewBackupService(recorder).Import(path)
	if err == nil || !strings.Contains(err.Error(), "no state payload") {
		t.Errorf("Import() = %v, want no-state-payload error", err)
	}
	if recorder.saves != 0 {
		t.Error("rejected import still wrote the record")
	}
}

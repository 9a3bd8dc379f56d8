package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fabkit/barcut/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backups", "all.json")

	config := model.DefaultAppConfig()
	config.DefaultKerf = 2.5
	cat := model.Catalog{Profiles: []model.Profile{
		model.NewProfile("SHS 25x25x2", "SHS", 1.39, 6000),
	}}

	if err := ExportAllData(path, config, cat); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Version != "1.0.0" {
		t.Errorf("version = %s", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("created_at is empty")
	}
	if backup.Config.DefaultKerf != 2.5 {
		t.Errorf("config kerf = %v, want 2.5", backup.Config.DefaultKerf)
	}
	if len(backup.Catalog.Profiles) != 1 {
		t.Errorf("catalog profiles = %d, want 1", len(backup.Catalog.Profiles))
	}
}

func TestImportAllDataRejectsMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"config": {}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Error("expected error for backup without version")
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	if _, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing backup file")
	}
}

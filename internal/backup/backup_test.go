package backup

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/groove/internal/storage/sqlite"
)

func setupDatabase(t *testing.T) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "groove.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init database: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}
	return dbPath
}

func TestCreateAndListBackups(t *testing.T) {
	dbPath := setupDatabase(t)
	manager := NewManager(dbPath)

	path, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() returned unexpected error: %v", err)
	}
	if filepath.Dir(path) != manager.BackupDir() {
		t.Errorf("backup written to %s, want %s", filepath.Dir(path), manager.BackupDir())
	}

	backups, err := manager.List()
	if err != nil {
		t.Fatalf("List() returned unexpected error: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("backup file is empty")
	}
}

func TestCreateFailsWithoutDatabase(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "missing.db"))

	if _, err := manager.Create(); err == nil {
		t.Error("Create() should fail when the database does not exist")
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupDatabase(t)
	manager := NewManager(dbPath)

	backupPath, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() returned unexpected error: %v", err)
	}

	if err := manager.Restore(backupPath); err != nil {
		t.Fatalf("Restore() returned unexpected error: %v", err)
	}

	// Restore takes a safety backup of the live database first.
	backups, err := manager.List()
	if err != nil {
		t.Fatalf("List() returned unexpected error: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("got %d backups after restore, want at least 2", len(backups))
	}

	// The restored database must still open and validate.
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Errorf("restored database failed to load: %v", err)
	}
	store.Close()
}

func TestRestoreRejectsMissingFile(t *testing.T) {
	dbPath := setupDatabase(t)
	manager := NewManager(dbPath)

	if err := manager.Restore(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("Restore() should fail for a missing backup file")
	}
}

func TestParseBackupTimestamp(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"groove-20240115-0930.db", true},
		{"groove-20240115-093045.db", true},
		{"groove-20240115-0930-2.db", true},
		{"groove-garbage.db", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseBackupTimestamp(tt.name)
			if ok != tt.ok {
				t.Errorf("parseBackupTimestamp(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
		})
	}
}

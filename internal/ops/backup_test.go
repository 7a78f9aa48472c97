package ops

import (
	"archive/tar"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"runeclicker/internal/catalog"
	"runeclicker/internal/save"
	"runeclicker/internal/state"
)

// seedDataDir lays out a real game data directory: a save snapshot
// written through the file repo plus an identity file.
func seedDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := save.NewFileRepo(dir)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	st := state.Default(catalog.Default(), time.Unix(1_700_000_000, 0))
	st.Money = 777
	st.Gems = 3
	st.Stats.Rebirths = 2
	if err := repo.Save(st); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, IdentityFileName), []byte("abc123\n"), 0o644); err != nil {
		t.Fatalf("write identity: %v", err)
	}
	return dir
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	src := seedDataDir(t)

	archive := filepath.Join(t.TempDir(), "backup.tar.gz")
	report, err := BackupDataDir(src, archive)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if !report.SaveIncluded {
		t.Fatal("save snapshot missing from the archive report")
	}
	if report.Files != 2 || report.Bytes == 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	restoreDir := filepath.Join(t.TempDir(), "restore")
	if err := RestoreDataDir(archive, restoreDir); err != nil {
		t.Fatalf("restore: %v", err)
	}

	// The restored save must decode to the seeded snapshot.
	summary, err := InspectSave(restoreDir)
	if err != nil {
		t.Fatalf("inspect restored save: %v", err)
	}
	if summary.Money != 777 || summary.Gems != 3 || summary.Rebirths != 2 {
		t.Fatalf("restored save differs: %+v", summary)
	}

	id, err := os.ReadFile(filepath.Join(restoreDir, IdentityFileName))
	if err != nil {
		t.Fatalf("read restored identity: %v", err)
	}
	if string(id) != "abc123\n" {
		t.Fatalf("restored identity differs: %q", id)
	}
}

func TestBackupReportsEmptyDir(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "empty.tar.gz")
	report, err := BackupDataDir(t.TempDir(), archive)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if report.Files != 0 || report.SaveIncluded {
		t.Fatalf("empty dir should archive nothing: %+v", report)
	}
}

func TestBackupRejectsBadInput(t *testing.T) {
	if _, err := BackupDataDir("  ", "out.tar.gz"); err == nil {
		t.Fatal("blank data dir must error")
	}
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := BackupDataDir(file, "out.tar.gz"); err == nil {
		t.Fatal("non-directory source must error")
	}
}

func TestRestoreRejectsPathTraversal(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "bad.tar.gz")
	writeArchive(t, archive, "../escape.txt", "bad")

	out := filepath.Join(t.TempDir(), "out")
	if err := RestoreDataDir(archive, out); err == nil {
		t.Fatal("expected restore to reject the traversal entry")
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(out), "escape.txt")); !os.IsNotExist(err) {
		t.Fatal("entry escaped the target directory")
	}
}

func TestRestoreRejectsAbsolutePath(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "abs.tar.gz")
	writeArchive(t, archive, "/etc/escape.txt", "bad")

	if err := RestoreDataDir(archive, filepath.Join(t.TempDir(), "out")); err == nil {
		t.Fatal("expected restore to reject the absolute entry")
	}
}

func writeArchive(t *testing.T, path, entryName, content string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}
	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	if err := tw.WriteHeader(&tar.Header{
		Name:     entryName,
		Typeflag: tar.TypeReg,
		Mode:     0o644,
		Size:     int64(len(content)),
	}); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if _, err := tw.Write([]byte(content)); err != nil {
		t.Fatalf("write body: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
}

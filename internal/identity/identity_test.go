package identity

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileIdentityMintsOnce(t *testing.T) {
	dir := t.TempDir()
	ident := NewFileIdentity(dir)

	id, err := ident.UserID()
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if len(id) != 32 {
		t.Fatalf("id should be 16 random bytes hex-encoded, got %q", id)
	}

	again, err := ident.UserID()
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if again != id {
		t.Fatalf("id not stable: %q then %q", id, again)
	}

	fresh := NewFileIdentity(dir)
	reloaded, err := fresh.UserID()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded != id {
		t.Fatalf("id not persisted: %q then %q", id, reloaded)
	}
}

func TestFileIdentityRemintsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "identity"), []byte("  \n"), 0o644); err != nil {
		t.Fatalf("seed empty file: %v", err)
	}

	id, err := NewFileIdentity(dir).UserID()
	if err != nil {
		t.Fatalf("remint: %v", err)
	}
	if id == "" {
		t.Fatal("blank file should trigger a fresh id")
	}
}

func TestStatic(t *testing.T) {
	id, err := Static("fixed").UserID()
	if err != nil || id != "fixed" {
		t.Fatalf("got %q, %v", id, err)
	}
}

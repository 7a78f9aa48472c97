// Package identity mints and persists the anonymous player id used for
// leaderboard submissions. There are no accounts; the id is a random
// token stored next to the save file.
package identity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Provider yields a stable player id.
type Provider interface {
	UserID() (string, error)
}

// FileIdentity keeps the id in a plain file under the data directory,
// minting one on first use.
type FileIdentity struct {
	path string
}

func NewFileIdentity(dataDir string) *FileIdentity {
	return &FileIdentity{path: filepath.Join(dataDir, "identity")}
}

func (f *FileIdentity) UserID() (string, error) {
	b, err := os.ReadFile(f.path)
	if err == nil {
		id := strings.TrimSpace(string(b))
		if id != "" {
			return id, nil
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("identity: read %s: %w", f.path, err)
	}

	id, err := mint()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return "", fmt.Errorf("identity: mkdir: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(id+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("identity: write %s: %w", f.path, err)
	}
	return id, nil
}

func mint() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("identity: mint: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}

// Static is a fixed id, used by tests and single-user tools.
type Static string

func (s Static) UserID() (string, error) { return string(s), nil }

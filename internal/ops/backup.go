package ops

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SaveFileName is the engine's snapshot file inside a data directory.
const SaveFileName = "save.json"

// IdentityFileName holds the minted player id next to the save.
const IdentityFileName = "identity"

// BackupReport summarizes one completed archive.
type BackupReport struct {
	Files        int   `json:"files"`
	Bytes        int64 `json:"bytes"`
	SaveIncluded bool  `json:"save_included"`
}

// BackupDataDir archives a game data directory (the save snapshot, the
// identity file and anything else an operator dropped in) into a
// gzipped tarball. Symlinks are skipped; the report says whether a
// save snapshot made it into the archive.
func BackupDataDir(srcDir, archivePath string) (BackupReport, error) {
	var report BackupReport

	srcDir = strings.TrimSpace(srcDir)
	archivePath = strings.TrimSpace(archivePath)
	if srcDir == "" || archivePath == "" {
		return report, fmt.Errorf("data dir and archive path are required")
	}
	srcDir = filepath.Clean(srcDir)
	archivePath = filepath.Clean(archivePath)
	info, err := os.Stat(srcDir)
	if err != nil {
		return report, err
	}
	if !info.IsDir() {
		return report, fmt.Errorf("data dir is not a directory: %s", srcDir)
	}
	if err := os.MkdirAll(filepath.Dir(archivePath), 0o755); err != nil {
		return report, err
	}

	f, err := os.Create(archivePath)
	if err != nil {
		return report, err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	tw := tar.NewWriter(gz)
	defer tw.Close()

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == srcDir {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		// Symlinks would make a restore's content depend on the host.
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		return archiveEntry(tw, path, rel, d, &report)
	})
	return report, err
}

func archiveEntry(tw *tar.Writer, path, rel string, d fs.DirEntry, report *BackupReport) error {
	info, err := d.Info()
	if err != nil {
		return err
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = rel
	if info.IsDir() {
		hdr.Name = strings.TrimSuffix(hdr.Name, "/") + "/"
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	if info.IsDir() {
		return nil
	}

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	n, err := io.Copy(tw, src)
	if err != nil {
		return err
	}
	report.Files++
	report.Bytes += n
	if rel == SaveFileName {
		report.SaveIncluded = true
	}
	return nil
}

// RestoreDataDir unpacks a backup archive into a target data
// directory. Entries that would land outside the target are rejected;
// entry types other than files and directories are ignored.
func RestoreDataDir(archivePath, targetDir string) error {
	archivePath = strings.TrimSpace(archivePath)
	targetDir = strings.TrimSpace(targetDir)
	if archivePath == "" || targetDir == "" {
		return fmt.Errorf("archive path and target dir are required")
	}
	archivePath = filepath.Clean(archivePath)
	targetDir = filepath.Clean(targetDir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := restoreEntry(tr, hdr, targetDir); err != nil {
			return err
		}
	}
}

func restoreEntry(tr *tar.Reader, hdr *tar.Header, targetDir string) error {
	name := filepath.Clean(strings.TrimSpace(hdr.Name))
	if name == "" || name == "." || !filepath.IsLocal(name) {
		return fmt.Errorf("unsafe archive entry path: %q", hdr.Name)
	}
	outPath := filepath.Join(targetDir, name)

	switch hdr.Typeflag {
	case tar.TypeDir:
		return os.MkdirAll(outPath, os.FileMode(hdr.Mode))
	case tar.TypeReg:
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		dst, err := os.OpenFile(outPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(hdr.Mode))
		if err != nil {
			return err
		}
		if _, err := io.Copy(dst, tr); err != nil {
			_ = dst.Close()
			return err
		}
		return dst.Close()
	default:
		return nil
	}
}

package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenMissingFileReturnsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := Open(path, DefaultTabWidth)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if Exists(path) {
		t.Fatalf("open must not create the file")
	}
}

func TestOpenDirectoryFails(t *testing.T) {
	_, err := Open(t.TempDir(), DefaultTabWidth)
	if err == nil {
		t.Fatalf("expected opening a directory to fail")
	}
}

func TestOpenReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("a\n\tb"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	d, err := Open(path, DefaultTabWidth)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if got := strings.Join(d.Lines, "|"); got != "a\n|    b" {
		t.Fatalf("unexpected lines %q", d.Lines)
	}
}

func TestOpenOrCreateCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "untitled.txt")
	d, created, err := OpenOrCreate(path, DefaultTabWidth)
	if err != nil {
		t.Fatalf("open or create failed: %v", err)
	}
	if !created {
		t.Fatalf("expected file to be created")
	}
	if len(d.Lines) != 1 || d.Lines[0] != "" {
		t.Fatalf("expected a single empty line, got %q", d.Lines)
	}
	if !Exists(path) {
		t.Fatalf("expected %s to exist", path)
	}
}

func TestOpenOrCreateKeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "untitled.txt")
	if err := os.WriteFile(path, []byte("keep me"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	d, created, err := OpenOrCreate(path, DefaultTabWidth)
	if err != nil {
		t.Fatalf("open or create failed: %v", err)
	}
	if created || d.Lines[0] != "keep me" {
		t.Fatalf("expected existing content, created=%v lines=%q", created, d.Lines)
	}
}

func TestWriteFileInPlaceAndAtomic(t *testing.T) {
	for _, atomic := range []bool{false, true} {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.txt")
		if err := os.WriteFile(path, []byte("old content that is longer"), 0600); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		d, err := Load(strings.NewReader("new\ntext"), DefaultTabWidth)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		d.Dirty = true
		if err := WriteFile(path, d, atomic); err != nil {
			t.Fatalf("atomic=%v: write failed: %v", atomic, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if string(data) != "new\ntext" {
			t.Fatalf("atomic=%v: expected new content, got %q", atomic, data)
		}
		if d.Dirty {
			t.Fatalf("atomic=%v: expected document to be clean after save", atomic)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat failed: %v", err)
		}
		if atomic && info.Mode().Perm() != 0600 {
			t.Fatalf("atomic save must keep permissions, got %v", info.Mode().Perm())
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 1 {
			t.Fatalf("atomic=%v: expected no leftover temp files, got %d entries", atomic, len(entries))
		}
	}
}

func TestWriteFileAtomicIntoMissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.txt")
	d := New()
	d.Dirty = true
	if err := WriteFile(path, d, true); err == nil {
		t.Fatalf("expected write into a missing directory to fail")
	}
	if !d.Dirty {
		t.Fatalf("failed save must leave the document dirty")
	}
}

func TestWriteFileAtomicThroughSymlinkKeepsLink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	link := filepath.Join(dir, "link.txt")
	if err := os.WriteFile(target, []byte("old"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	d := load(t, "new")
	if err := WriteFile(link, d, true); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	info, err := os.Lstat(link)
	if err != nil {
		t.Fatalf("lstat failed: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Fatalf("expected link to survive the save, got mode %v", info.Mode())
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("expected target to hold new content, got %q", data)
	}
}

func TestWriteFileAtomicInReadOnlyDirFallsBackInPlace(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	defer os.Chmod(dir, 0755)

	d := load(t, "new")
	if err := WriteFile(path, d, true); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("expected new content, got %q", data)
	}
}

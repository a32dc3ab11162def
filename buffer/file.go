package buffer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// MaxFileSize bounds what Open will read into memory.
const MaxFileSize = 100 * 1024 * 1024

// Open reads an existing file. It never creates one; a missing file is
// reported as ErrNotFound.
func Open(path string, tabWidth int) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("file too large (%d MB), max supported is %d MB", info.Size()/(1024*1024), MaxFileSize/(1024*1024))
	}
	return Load(f, tabWidth)
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Create makes an empty file at path unless one is already there. It
// reports whether a file was created.
func Create(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}
	return true, f.Close()
}

// OpenOrCreate is the new-file flow used at startup: load path when it
// exists, otherwise create it empty and start from a blank document.
func OpenOrCreate(path string, tabWidth int) (*Document, bool, error) {
	doc, err := Open(path, tabWidth)
	if err == nil {
		return doc, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}
	created, err := Create(path)
	if err != nil {
		return nil, false, err
	}
	return New(), created, nil
}

// WriteFile stores d at path. With atomic set the content goes to a
// temporary file in the same directory which is then renamed over path, so a
// failed write leaves the previous file untouched.
func WriteFile(path string, d *Document, atomic bool) error {
	var err error
	if atomic {
		err = writeAtomic(path, d)
	} else {
		err = writeInPlace(path, d)
	}
	if err == nil {
		d.Dirty = false
	}
	return err
}

func writeInPlace(path string, d *Document) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeAtomic(path string, d *Document) error {
	// Replace the link target, not the link.
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		mode = info.Mode().Perm()
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			// The directory is read-only; the file itself may still be writable.
			return writeInPlace(path, d)
		}
		return err
	}
	tmpName := tmp.Name()
	// Removing after a successful rename fails harmlessly.
	defer os.Remove(tmpName)

	if _, err := d.WriteTo(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

package io

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CreateAll creates a file with its parent directories, if missing.
//
// fmod is for the file, and dmod is for newly created directories.
// Existing directories keep their mode.
func CreateAll(name string, fmod os.FileMode, dmod os.FileMode) (*os.File, error) {
	dirname := filepath.Dir(name)
	if err := os.MkdirAll(dirname, dmod); err != nil {
		return nil, err
	}

	return os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, fmod)
}

// DirCopy copies regular files under src into dest, keeping the tree.
//
// Files in dest are overwritten. Files only in dest are left as they are.
// Symlinks and other special files in src are skipped.
func DirCopy(src string, dest string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		to := filepath.Join(dest, rel)

		if d.IsDir() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(to, info.Mode().Perm())
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return fileCopy(path, to)
	})
}

func fileCopy(from string, to string) error {
	info, err := os.Stat(from)
	if err != nil {
		return err
	}

	r, err := os.Open(from)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := CreateAll(to, info.Mode().Perm(), 0755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

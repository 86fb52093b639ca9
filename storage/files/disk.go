// Package filestore keeps uploaded files on the local disk.
package filestore

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/upload"
)

// DiskStore stores generic uploads directly under its root and categorized files in one sub directory per category.
type DiskStore struct {
	root string
}

var _ upload.FileStore = (*DiskStore)(nil) // interface compliance check

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating upload directory")
	}
	return &DiskStore{root: root}, nil
}

func (ds *DiskStore) Root() string { return ds.root }

func (ds *DiskStore) Save(r io.Reader) (string, error) {
	name := strings.ReplaceAll(uuid.New().String(), "-", "")
	fp := filepath.Join(ds.root, name)

	f, err := os.OpenFile(fp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errors.Wrap(err, "creating file")
	}
	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(fp)
		return "", errors.Wrap(err, "writing file")
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(fp)
		return "", errors.Wrap(err, "closing file")
	}
	return name, nil
}

func (ds *DiskStore) MoveToCategory(storedName string, c upload.Category, name string) error {
	dir := filepath.Join(ds.root, string(c))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating category directory")
	}
	return os.Rename(filepath.Join(ds.root, storedName), filepath.Join(dir, name))
}

func (ds *DiskStore) Remove(storedName string) error {
	if err := os.Remove(filepath.Join(ds.root, storedName)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (ds *DiskStore) List(c upload.Category) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(ds.root, string(c)))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries { // sorted by name
		if e.Type().IsRegular() {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

// Resolve never leaves the root: `rel` is cleaned as an absolute path before being joined.
func (ds *DiskStore) Resolve(rel string) (string, error) {
	clean := filepath.Clean(string(filepath.Separator) + filepath.FromSlash(rel))
	fp := filepath.Join(ds.root, clean)

	fi, err := os.Stat(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return "", core.ErrNotFound
		}
		return "", err
	}
	if !fi.Mode().IsRegular() {
		return "", core.ErrNotFound
	}
	return fp, nil
}

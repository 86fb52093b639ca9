// Package jsonfile reads and writes whole collections as a single JSON array per file.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// ErrMalformed is returned by LoadAll when the file exists but does not hold a JSON array.
var ErrMalformed = errors.New("malformed collection file")

// LoadAll parses the JSON array stored at `path`.
// A missing or empty file yields an empty collection.
func LoadAll[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	items := make([]T, 0)
	if err = json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "%s: %v", path, err)
	}
	if items == nil { // `null`
		items = []T{}
	}
	return items, nil
}

// SaveAll serializes the full collection and replaces the file at `path`.
// The document is written to a temporary file first, then renamed over the old one.
func SaveAll[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "creating temp file for %s", path)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // no-op once renamed

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "writing %s", tmpName)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmpName)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "replacing %s", path)
	}
	return nil
}

// Quarantine moves a malformed file out of the way so the next SaveAll does not overwrite it.
func Quarantine(path string) (string, error) {
	dest := fmt.Sprintf("%s.corrupt-%d", path, time.Now().Unix())
	if err := os.Rename(path, dest); err != nil {
		return "", errors.Wrapf(err, "quarantining %s", path)
	}
	return dest, nil
}

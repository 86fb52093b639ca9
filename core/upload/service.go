package upload

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core"
)

var ErrNotFound = core.ErrNotFound

type (
	// FileStore is the upload area on disk.
	FileStore interface {
		// Save writes `r` under a fresh random name in the generic area and returns that name.
		Save(r io.Reader) (string, error)
		// MoveToCategory moves a stored file into the category folder as `name`, replacing any file with that name.
		MoveToCategory(storedName string, c Category, name string) error
		// Remove deletes a stored file. A missing file is not an error.
		Remove(storedName string) error
		// List returns the sorted file names of a category folder.
		List(c Category) ([]string, error)
		// Resolve maps a path relative to the upload area to an existing file.
		Resolve(rel string) (string, error)
	}

	Repository interface {
		CreateUpload(r Record) (Record, error)
		QueryAllUploads() ([]Record, error)
		// FindUpload returns the first Record, in list order, matching `pred`.
		FindUpload(pred func(Record) bool) (Record, error)
		DeleteUploadsByFilename(names ...string) error
	}

	Service struct {
		repo  Repository
		files FileStore
	}
)

func NewService(repo Repository, files FileStore) *Service {
	return &Service{repo: repo, files: files}
}

// Upload stores a generic file and records its metadata.
func (svc *Service) Upload(nu NewUpload) (Record, error) {
	if nu.Content == nil {
		return Record{}, ErrNoFile
	}
	stored, err := svc.files.Save(nu.Content)
	if err != nil {
		return Record{}, errors.Wrap(err, "saving file")
	}

	uploader := nu.UploadedBy
	if uploader == "" {
		uploader = "Unknown"
	}
	rec, err := svc.repo.CreateUpload(Record{
		Filename:     stored,
		OriginalName: nu.OriginalName,
		UploadedBy:   uploader,
		UploadDate:   core.NowFunc().Format(core.DisplayTimeLayout),
	})
	if err != nil {
		_ = svc.files.Remove(stored)
		return Record{}, errors.Wrap(err, "creating upload record")
	}
	return rec, nil
}

// UploadToCategory stores a file in a category folder under its sanitized original name.
// The category is checked before anything is written. No metadata is recorded for categorized files.
func (svc *Service) UploadToCategory(category string, nu NewUpload) (Category, string, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return "", "", err
	}
	if nu.Content == nil {
		return "", "", ErrNoFile
	}
	name, err := SanitizeFilename(nu.OriginalName)
	if err != nil {
		return "", "", err
	}

	stored, err := svc.files.Save(nu.Content)
	if err != nil {
		return "", "", errors.Wrap(err, "saving file")
	}
	if err = svc.files.MoveToCategory(stored, c, name); err != nil {
		_ = svc.files.Remove(stored)
		return "", "", errors.Wrap(err, "moving file to "+string(c))
	}
	return c, name, nil
}

func (svc *Service) QueryAll() ([]Record, error) {
	return svc.repo.QueryAllUploads()
}

// Delete removes the stored file, if present, then its record. Unknown names are ignored.
func (svc *Service) Delete(filename string) error {
	if !isStoredName(filename) {
		return nil
	}
	if err := svc.files.Remove(filename); err != nil {
		return errors.Wrap(err, "removing file")
	}
	return svc.repo.DeleteUploadsByFilename(filename)
}

// CategoryListings lists every category folder, in the fixed category order.
func (svc *Service) CategoryListings() ([]CategoryListing, error) {
	listings := make([]CategoryListing, 0, len(Categories))
	for _, c := range Categories {
		files, err := svc.files.List(c)
		if err != nil {
			return nil, errors.Wrap(err, "listing "+string(c))
		}
		listings = append(listings, CategoryListing{Category: c, Files: files})
	}
	return listings, nil
}

// Download resolves a path relative to the upload area.
// For generic uploads the returned name is the original file name, otherwise it is empty.
func (svc *Service) Download(rel string) (filePath, name string, err error) {
	rel = strings.TrimPrefix(rel, "/")
	filePath, err = svc.files.Resolve(rel)
	if err != nil {
		return "", "", err
	}
	if isStoredName(rel) {
		rec, err := svc.repo.FindUpload(func(r Record) bool { return r.Filename == rel })
		if err == nil {
			name = rec.OriginalName
		} else if errors.Cause(err) != ErrNotFound {
			return "", "", errors.Wrap(err, "finding upload")
		}
	}
	return filePath, name, nil
}

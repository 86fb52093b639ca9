package jsonrepos

import (
	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/upload"
)

type uploadRepository struct {
	coll *collection[upload.Record]
}

var _ upload.Repository = (*uploadRepository)(nil) // interface compliance check

func NewUploadRepository(path string, logger core.Logger) (upload.Repository, error) {
	coll, err := openCollection[upload.Record](path, logger)
	if err != nil {
		return nil, err
	}
	return &uploadRepository{coll: coll}, nil
}

func (repo *uploadRepository) CreateUpload(r upload.Record) (upload.Record, error) {
	if err := repo.coll.append(r); err != nil {
		return upload.Record{}, err
	}
	return r, nil
}

func (repo *uploadRepository) QueryAllUploads() ([]upload.Record, error) {
	return repo.coll.all(), nil
}

func (repo *uploadRepository) FindUpload(pred func(upload.Record) bool) (upload.Record, error) {
	if r, ok := repo.coll.find(pred); ok {
		return r, nil
	}
	return upload.Record{}, upload.ErrNotFound
}

func (repo *uploadRepository) DeleteUploadsByFilename(names ...string) error {
	set := idSet(names)
	return repo.coll.removeIf(func(r upload.Record) bool {
		_, ok := set[r.Filename]
		return ok
	})
}

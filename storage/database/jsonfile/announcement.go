package jsonrepos

import (
	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/announcement"
)

type announcementRepository struct {
	coll *collection[announcement.Announcement]
}

var _ announcement.Repository = (*announcementRepository)(nil) // interface compliance check

func NewAnnouncementRepository(path string, logger core.Logger) (announcement.Repository, error) {
	coll, err := openCollection[announcement.Announcement](path, logger)
	if err != nil {
		return nil, err
	}
	return &announcementRepository{coll: coll}, nil
}

func (repo *announcementRepository) CreateAnnouncement(a announcement.Announcement) (announcement.Announcement, error) {
	if err := repo.coll.prepend(a); err != nil {
		return announcement.Announcement{}, err
	}
	return a, nil
}

func (repo *announcementRepository) QueryAllAnnouncements() ([]announcement.Announcement, error) {
	return repo.coll.all(), nil
}

func (repo *announcementRepository) DeleteAnnouncementAt(index int) error {
	return repo.coll.removeAt(index)
}

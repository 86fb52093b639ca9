package database

import (
	"os"

	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/announcement"
	"github.com/trezcool/schoolportal/core/staff"
	"github.com/trezcool/schoolportal/core/student"
	"github.com/trezcool/schoolportal/core/teacher"
	"github.com/trezcool/schoolportal/core/upload"
	inmemdb "github.com/trezcool/schoolportal/storage/database/inmem"
	jsonrepos "github.com/trezcool/schoolportal/storage/database/jsonfile"
)

// Collection file names, relative to the data directory.
const (
	StudentsFile      = "students"
	TeachersFile      = "teachers"
	AnnouncementsFile = "announcements"
	UploadsFile       = "uploads"
)

// DB holds every repository of the portal, loaded once at process start.
type DB struct {
	Students      student.Repository
	Teachers      teacher.Repository
	Announcements announcement.Repository
	Uploads       upload.Repository
	Staff         staff.Repository
}

// Open creates the data directory if needed and loads every collection into memory.
func Open(conf *core.Config, logger core.Logger) (*DB, error) {
	if err := os.MkdirAll(conf.DataDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating data directory")
	}

	var (
		db  = &DB{Staff: inmemdb.NewUserRepository()}
		err error
	)
	if db.Students, err = jsonrepos.NewStudentRepository(conf.DataFile(StudentsFile), logger); err != nil {
		return nil, errors.Wrap(err, "opening students")
	}
	if db.Teachers, err = jsonrepos.NewTeacherRepository(conf.DataFile(TeachersFile), logger); err != nil {
		return nil, errors.Wrap(err, "opening teachers")
	}
	if db.Announcements, err = jsonrepos.NewAnnouncementRepository(conf.DataFile(AnnouncementsFile), logger); err != nil {
		return nil, errors.Wrap(err, "opening announcements")
	}
	if db.Uploads, err = jsonrepos.NewUploadRepository(conf.DataFile(UploadsFile), logger); err != nil {
		return nil, errors.Wrap(err, "opening uploads")
	}
	return db, nil
}

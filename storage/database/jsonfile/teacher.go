package jsonrepos

import (
	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/teacher"
)

type teacherRepository struct {
	coll *collection[teacher.Teacher]
}

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(path string, logger core.Logger) (teacher.Repository, error) {
	coll, err := openCollection[teacher.Teacher](path, logger)
	if err != nil {
		return nil, err
	}
	return &teacherRepository{coll: coll}, nil
}

func (repo *teacherRepository) CreateTeacher(t teacher.Teacher) (teacher.Teacher, error) {
	if err := repo.coll.append(t); err != nil {
		return teacher.Teacher{}, err
	}
	return t, nil
}

func (repo *teacherRepository) QueryAllTeachers() ([]teacher.Teacher, error) {
	return repo.coll.all(), nil
}

func (repo *teacherRepository) FindTeacher(pred func(teacher.Teacher) bool) (teacher.Teacher, error) {
	if t, ok := repo.coll.find(pred); ok {
		return t, nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) DeleteTeachersByID(ids ...string) error {
	set := idSet(ids)
	return repo.coll.removeIf(func(t teacher.Teacher) bool {
		_, ok := set[t.ID]
		return ok
	})
}

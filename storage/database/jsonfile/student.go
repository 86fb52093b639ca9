package jsonrepos

import (
	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/student"
)

type studentRepository struct {
	coll *collection[student.Student]
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(path string, logger core.Logger) (student.Repository, error) {
	coll, err := openCollection[student.Student](path, logger)
	if err != nil {
		return nil, err
	}
	return &studentRepository{coll: coll}, nil
}

func (repo *studentRepository) CreateStudent(s student.Student) (student.Student, error) {
	if err := repo.coll.append(s); err != nil {
		return student.Student{}, err
	}
	return s, nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	return repo.coll.all(), nil
}

func (repo *studentRepository) GetStudentByID(id string) (student.Student, error) {
	return repo.FindStudent(func(s student.Student) bool { return s.ID == id })
}

func (repo *studentRepository) FindStudent(pred func(student.Student) bool) (student.Student, error) {
	if s, ok := repo.coll.find(pred); ok {
		return s, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) DeleteStudentsByID(ids ...string) error {
	set := idSet(ids)
	return repo.coll.removeIf(func(s student.Student) bool {
		_, ok := set[s.ID]
		return ok
	})
}

func (repo *studentRepository) UpdateStudent(s student.Student) (student.Student, error) {
	var found bool
	err := repo.coll.mutate(func(items []student.Student) []student.Student {
		next := make([]student.Student, len(items))
		copy(next, items)
		for i := range next {
			if next[i].ID == s.ID {
				next[i] = s
				found = true
				break
			}
		}
		return next
	})
	if err != nil {
		return student.Student{}, err
	}
	if !found {
		return student.Student{}, student.ErrNotFound
	}
	return s, nil
}

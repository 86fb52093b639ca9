package student

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core"
)

var (
	// errors
	ErrNotFound           = core.ErrNotFound
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrAmbiguousName      = errors.New("more than one student has this name, use the id")
)

type (
	Repository interface {
		CreateStudent(s Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		// FindStudent returns the first Student, in list order, matching `pred`.
		FindStudent(pred func(Student) bool) (Student, error)
		DeleteStudentsByID(ids ...string) error
		// UpdateStudent replaces the Student with the same ID. Fails with ErrNotFound if there is none.
		UpdateStudent(s Student) (Student, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ns NewStudent) (Student, error) {
	s := Student{
		ID:       uuid.New().String(),
		FullName: ns.FullName,
		Class:    ns.Class,
		Gender:   ns.Gender,
		DOB:      ns.DOB,
	}
	if err := s.SetPassword(ns.Password); err != nil {
		return Student{}, errors.Wrap(err, "hashing password")
	}
	return svc.repo.CreateStudent(s)
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) Filter(filter QueryFilter) ([]Student, error) {
	all, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	if filter.Search == "" {
		return all, nil
	}
	filtered := make([]Student, 0, len(all))
	for _, s := range all {
		if filter.Match(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func (svc *Service) GetByID(id string) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

// Authenticate finds the first Student whose full name matches case-insensitively and whose password matches.
// Full names are not unique.
func (svc *Service) Authenticate(creds Credentials) (Student, error) {
	s, err := svc.repo.FindStudent(func(s Student) bool {
		return strings.EqualFold(s.FullName, creds.FullName) && s.CheckPassword(creds.Password)
	})
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return Student{}, ErrInvalidCredentials
		}
		return Student{}, errors.Wrap(err, "finding student")
	}
	return s, nil
}

// Delete removes the Student with the given id. Unknown ids are ignored.
func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteStudentsByID(id)
}

// Lookup finds a Student by id, or else by its full name (case-insensitive) when that name is unique.
func (svc *Service) Lookup(idOrName string) (Student, error) {
	s, err := svc.repo.GetStudentByID(idOrName)
	if err == nil || errors.Cause(err) != ErrNotFound {
		return s, err
	}

	all, err := svc.repo.QueryAllStudents()
	if err != nil {
		return Student{}, err
	}
	var found []Student
	for _, s := range all {
		if strings.EqualFold(s.FullName, idOrName) {
			found = append(found, s)
		}
	}
	switch len(found) {
	case 0:
		return Student{}, ErrNotFound
	case 1:
		return found[0], nil
	default:
		return Student{}, ErrAmbiguousName
	}
}

func (svc *Service) ResetPassword(id, pwd string) (Student, error) {
	s, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}
	if err = s.SetPassword(pwd); err != nil {
		return Student{}, errors.Wrap(err, "hashing password")
	}
	return svc.repo.UpdateStudent(s)
}

// HashLegacyPasswords hashes every password still stored in plain text and returns how many were updated.
func (svc *Service) HashLegacyPasswords() (int, error) {
	all, err := svc.repo.QueryAllStudents()
	if err != nil {
		return 0, err
	}
	var n int
	for _, s := range all {
		if s.HasHashedPassword() {
			continue
		}
		if err = s.SetPassword(s.Password); err != nil {
			return n, errors.Wrap(err, "hashing password")
		}
		if _, err = svc.repo.UpdateStudent(s); err != nil {
			return n, errors.Wrap(err, "updating student")
		}
		n++
	}
	return n, nil
}

package student

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/schoolportal/core"
)

type Student struct {
	ID       string `json:"id"`
	FullName string `json:"fullname"`
	Class    string `json:"class"`
	Gender   string `json:"gender"`
	DOB      string `json:"dob"`
	// Password holds a bcrypt hash. Records written by older versions of the portal hold the plain password.
	Password string `json:"password"`
}

func (s *Student) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.Password = string(hash)
	return nil
}

// HasHashedPassword reports whether Password holds a bcrypt hash rather than a plain text password.
func (s Student) HasHashedPassword() bool {
	return isBcryptHash(s.Password)
}

func (s Student) CheckPassword(pwd string) bool {
	if isBcryptHash(s.Password) {
		return bcrypt.CompareHashAndPassword([]byte(s.Password), []byte(pwd)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.Password), []byte(pwd)) == 1
}

// ResultFile is the name staff give a student's result sheet in the results category.
func (s Student) ResultFile() string {
	return strings.ReplaceAll(s.FullName, " ", "_") + ".pdf"
}

// NotesFile is the name staff give a class's notes in the notes category.
func (s Student) NotesFile() string {
	return strings.ReplaceAll(s.Class, " ", "_") + "_notes.pdf"
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}

// NewStudent contains information needed to register a new Student.
type NewStudent struct {
	FullName string `form:"fullname" validate:"required"`
	Class    string `form:"class" validate:"required"`
	Gender   string `form:"gender" validate:"required"`
	DOB      string `form:"dob" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (ns *NewStudent) Clean() {
	ns.FullName = core.CleanString(ns.FullName)
	ns.Class = core.CleanString(ns.Class)
	ns.Gender = core.CleanString(ns.Gender)
	ns.DOB = core.CleanString(ns.DOB)
}

// Credentials are submitted by the student login form.
type Credentials struct {
	FullName string `form:"fullname" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (c *Credentials) Clean() {
	c.FullName = core.CleanString(c.FullName)
}

type QueryFilter struct {
	Search string `query:"search"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search, true /* lower */)
}

// Match does a case-insensitive substring match of Search on the full name. An empty Search matches everyone.
func (qf QueryFilter) Match(s Student) bool {
	return strings.Contains(strings.ToLower(s.FullName), qf.Search)
}

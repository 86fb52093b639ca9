package teacher

import (
	"github.com/trezcool/schoolportal/core"
)

// ClassLabels are offered by the teacher registration form. They are not enforced.
var ClassLabels = []string{"Primary 1", "Primary 2", "Primary 3", "Primary 4", "Primary 5", "Primary 6"}

type Teacher struct {
	ID       string `json:"id"`
	FullName string `json:"fullname"`
	Subject  string `json:"subject"`
	Email    string `json:"email"`
	Class    string `json:"class,omitempty"`
}

// NewTeacher contains information needed to register a new Teacher.
type NewTeacher struct {
	FullName string `form:"fullname" validate:"required"`
	Subject  string `form:"subject" validate:"required"`
	Email    string `form:"email" validate:"required"`
	Class    string `form:"class"`
}

func (nt *NewTeacher) Clean() {
	nt.FullName = core.CleanString(nt.FullName)
	nt.Subject = core.CleanString(nt.Subject)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	nt.Class = core.CleanString(nt.Class)
}

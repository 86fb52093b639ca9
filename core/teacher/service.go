package teacher

import (
	"fmt"
	"net/mail"

	"github.com/google/uuid"

	"github.com/trezcool/schoolportal/core"
)

var ErrNotFound = core.ErrNotFound

type (
	Repository interface {
		CreateTeacher(t Teacher) (Teacher, error)
		QueryAllTeachers() ([]Teacher, error)
		// FindTeacher returns the first Teacher, in list order, matching `pred`.
		FindTeacher(pred func(Teacher) bool) (Teacher, error)
		DeleteTeachersByID(ids ...string) error
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		appName string
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, appName: conf.AppName}
}

func (svc *Service) Create(nt NewTeacher) (Teacher, error) {
	t := Teacher{
		ID:       uuid.New().String(),
		FullName: nt.FullName,
		Subject:  nt.Subject,
		Email:    nt.Email,
		Class:    nt.Class,
	}
	t, err := svc.repo.CreateTeacher(t)
	if err != nil {
		return Teacher{}, err
	}
	svc.sendWelcomeMail(t)
	return t, nil
}

func (svc *Service) QueryAll() ([]Teacher, error) {
	return svc.repo.QueryAllTeachers()
}

// FindByClass returns the first Teacher assigned to the exact class label.
func (svc *Service) FindByClass(class string) (Teacher, error) {
	return svc.repo.FindTeacher(func(t Teacher) bool { return t.Class != "" && t.Class == class })
}

// Delete removes the Teacher with the given id. Unknown ids are ignored.
func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteTeachersByID(id)
}

func (svc *Service) sendWelcomeMail(t Teacher) {
	if t.Email == "" {
		return
	}
	class := t.Class
	if class == "" {
		class = "no class yet"
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: t.FullName, Address: t.Email}},
		Subject: "Welcome to " + svc.appName,
		BodyStr: fmt.Sprintf(
			"Hello %s,\n\nYou have been registered to teach %s (%s).\n",
			t.FullName, t.Subject, class,
		),
	})
}

package staff

import (
	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core"
)

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrUsernameExists     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid login")
)

type (
	// Repository stores staff users. Users are never persisted to disk.
	Repository interface {
		// CreateUser fails with ErrUsernameExists when the username is taken.
		CreateUser(usr User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByUsername(username string) (User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Register(nu NewUser) (User, error) {
	usr := User{
		Username:  nu.Username,
		CreatedAt: core.NowFunc().UTC(),
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}
	return svc.repo.CreateUser(usr)
}

// Authenticate returns the User matching the exact username and password.
func (svc *Service) Authenticate(creds Credentials) (User, error) {
	usr, err := svc.repo.GetUserByUsername(creds.Username)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return User{}, ErrInvalidCredentials
		}
		return User{}, errors.Wrap(err, "finding user by username")
	}
	if err = usr.CheckPassword(creds.Password); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return usr, nil
}

func (svc *Service) GetByUsername(uname string) (User, error) {
	return svc.repo.GetUserByUsername(uname)
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

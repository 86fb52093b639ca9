package staff

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/schoolportal/core"
)

// User is a staff member allowed into the administration pages.
type User struct {
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

// NewUser contains information needed to register a new User.
type NewUser struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (nu *NewUser) Clean() {
	nu.Username = core.CleanString(nu.Username)
}

// Credentials are submitted by the staff login form.
type Credentials struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (c *Credentials) Clean() {
	c.Username = core.CleanString(c.Username)
}

package inmemdb

import (
	"sort"
	"sync"

	"github.com/trezcool/schoolportal/core/staff"
)

type userRepository struct {
	mutex sync.RWMutex
	table map[string]*staff.User // {username: User}
}

var _ staff.Repository = (*userRepository)(nil) // interface compliance check

// NewUserRepository returns a staff user repository living only in process memory.
func NewUserRepository() staff.Repository {
	return &userRepository{table: make(map[string]*staff.User)}
}

func (repo *userRepository) CreateUser(usr staff.User) (staff.User, error) {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	if _, ok := repo.table[usr.Username]; ok {
		return staff.User{}, staff.ErrUsernameExists
	}
	repo.table[usr.Username] = &usr
	return usr, nil
}

func (repo *userRepository) QueryAllUsers() ([]staff.User, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	users := make([]staff.User, 0, len(repo.table))
	for _, u := range repo.table {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (repo *userRepository) GetUserByUsername(username string) (staff.User, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	if usr, ok := repo.table[username]; ok {
		return *usr, nil
	}
	return staff.User{}, staff.ErrNotFound
}

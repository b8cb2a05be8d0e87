package memory

import (
	"sync"

	"github.com/naborsk/racequiz/internal/domain"
	"github.com/naborsk/racequiz/internal/model"
	"github.com/naborsk/racequiz/internal/repository"
)

type UserRepository struct {
	mu    sync.RWMutex
	users []model.User
}

func NewUserRepository(users ...model.User) *UserRepository {
	return &UserRepository{users: users}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Add(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindAll() ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *UserRepository) UpdateName(id string, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Name = name
			return nil
		}
	}
	return domain.ErrUserNotFound
}

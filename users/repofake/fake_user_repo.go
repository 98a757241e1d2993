package repofake

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nexus-iam/sentinel/users"
)

var _ users.Repo = (*FakeUserRepo)(nil)

// FakeUserRepo is an in-memory user store for tests.
type FakeUserRepo struct {
	byUsername map[string]*users.User
	lock       sync.RWMutex
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		byUsername: make(map[string]*users.User),
	}
}

func (r *FakeUserRepo) FindByUsername(_ context.Context, username string) (*users.User, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	user, ok := r.byUsername[username]
	if !ok {
		return nil, users.ErrNotFound
	}
	return user, nil
}

func (r *FakeUserRepo) Save(_ context.Context, user *users.User) (*users.User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.byUsername[user.Username] = user
	return user, nil
}

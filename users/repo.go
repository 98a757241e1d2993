package users

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by lookups for usernames with no stored record.
var ErrNotFound = errors.New("user not found")

// Repo is the user principal store. Save assigns the store id when the
// record carries none and returns the persisted record.
type Repo interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	Save(ctx context.Context, user *User) (*User, error)
}

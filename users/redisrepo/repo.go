package redisrepo

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/nexus-iam/sentinel/users"
)

const keyPrefix = "sentinel:user:"

var _ users.Repo = (*Repo)(nil)

// Repo stores user records in Redis as JSON keyed by username.
type Repo struct {
	client *redis.Client
}

func New(client *redis.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) FindByUsername(ctx context.Context, username string) (*users.User, error) {
	payload, err := r.client.Get(ctx, keyPrefix+username).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, users.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "Repo.FindByUsername get")
	}

	var user users.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, errors.Wrap(err, "Repo.FindByUsername unmarshal")
	}
	return &user, nil
}

func (r *Repo) Save(ctx context.Context, user *users.User) (*users.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	payload, err := json.Marshal(user)
	if err != nil {
		return nil, errors.Wrap(err, "Repo.Save marshal")
	}
	if err := r.client.Set(ctx, keyPrefix+user.Username, payload, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "Repo.Save set")
	}
	return user, nil
}

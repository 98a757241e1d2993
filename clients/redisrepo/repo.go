package redisrepo

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/nexus-iam/sentinel/clients"
)

const keyPrefix = "sentinel:client:"

var _ clients.Repo = (*Repo)(nil)

// Repo stores client records in Redis as JSON keyed by client id.
type Repo struct {
	client *redis.Client
}

func New(client *redis.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) FindByClientID(ctx context.Context, clientID string) (*clients.Client, error) {
	payload, err := r.client.Get(ctx, keyPrefix+clientID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, clients.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "Repo.FindByClientID get")
	}

	var client clients.Client
	if err := json.Unmarshal(payload, &client); err != nil {
		return nil, errors.Wrap(err, "Repo.FindByClientID unmarshal")
	}
	return &client, nil
}

func (r *Repo) Save(ctx context.Context, client *clients.Client) (*clients.Client, error) {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}

	payload, err := json.Marshal(client)
	if err != nil {
		return nil, errors.Wrap(err, "Repo.Save marshal")
	}
	if err := r.client.Set(ctx, keyPrefix+client.ClientID, payload, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "Repo.Save set")
	}
	return client, nil
}

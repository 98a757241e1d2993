package fakerepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nexus-iam/sentinel/clients"
)

var _ clients.Repo = (*FakeClientRepo)(nil)

// FakeClientRepo is an in-memory client store for tests.
type FakeClientRepo struct {
	byClientID map[string]*clients.Client
	lock       sync.RWMutex
}

func NewFakeClientRepo() *FakeClientRepo {
	return &FakeClientRepo{
		byClientID: make(map[string]*clients.Client),
	}
}

func (r *FakeClientRepo) FindByClientID(_ context.Context, clientID string) (*clients.Client, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	client, ok := r.byClientID[clientID]
	if !ok {
		return nil, clients.ErrNotFound
	}
	return client, nil
}

func (r *FakeClientRepo) Save(_ context.Context, client *clients.Client) (*clients.Client, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	r.byClientID[client.ClientID] = client
	return client, nil
}

package clients

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by lookups for client ids with no stored record.
var ErrNotFound = errors.New("client not found")

// Repo is the client principal store.
type Repo interface {
	FindByClientID(ctx context.Context, clientID string) (*Client, error)
	Save(ctx context.Context, client *Client) (*Client, error)
}

package ledgerredis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/nexus-iam/sentinel/token"
)

const keyPrefix = "sentinel:token:"

// minRetention keeps a record around briefly even when the token is already
// past expiry at write time, so the audit trail never silently loses rows.
const minRetention = time.Minute

var _ token.Ledger = (*Ledger)(nil)

// Ledger stores issued-token records in Redis, keyed by the raw token
// string. Entries carry a TTL matching the token expiry, which doubles as
// the retention policy.
type Ledger struct {
	client *redis.Client
}

func New(client *redis.Client) *Ledger {
	return &Ledger{client: client}
}

func (l *Ledger) Save(ctx context.Context, issued *token.IssuedToken) error {
	if issued.ID == "" {
		issued.ID = uuid.New().String()
	}

	payload, err := json.Marshal(issued)
	if err != nil {
		return errors.Wrap(err, "Ledger.Save marshal")
	}

	ttl := time.Until(issued.ExpiresAt)
	if ttl < minRetention {
		ttl = minRetention
	}

	if err := l.client.Set(ctx, keyPrefix+issued.Token, payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "Ledger.Save set")
	}
	return nil
}

func (l *Ledger) FindByToken(ctx context.Context, raw string) (*token.IssuedToken, error) {
	payload, err := l.client.Get(ctx, keyPrefix+raw).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, token.ErrTokenNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "Ledger.FindByToken get")
	}

	var issued token.IssuedToken
	if err := json.Unmarshal(payload, &issued); err != nil {
		return nil, errors.Wrap(err, "Ledger.FindByToken unmarshal")
	}
	return &issued, nil
}

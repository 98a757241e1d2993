package token

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/nexus-iam/sentinel/principal"
)

// ErrTokenNotFound is returned by Ledger lookups for tokens that were never
// recorded (or whose record has aged out).
var ErrTokenNotFound = errors.New("token not found")

// IssuedToken is the ledger record written for every successfully issued
// token. Records are immutable once written; retention is the store's
// concern, not this package's.
type IssuedToken struct {
	ID          string         `json:"id"`
	Token       string         `json:"token"`
	Kind        Kind           `json:"token_type"`
	SubjectID   string         `json:"subject_id"`
	SubjectKind principal.Kind `json:"subject_type"`
	IssuedAt    time.Time      `json:"issued_at"`
	ExpiresAt   time.Time      `json:"expires_at"`
}

// Ledger is the append-only audit record of issued tokens. It is never
// consulted on the validation path; cryptographic verification is the
// codec's job.
type Ledger interface {
	Save(ctx context.Context, issued *IssuedToken) error
	FindByToken(ctx context.Context, raw string) (*IssuedToken, error)
}

package ledgerfake

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nexus-iam/sentinel/token"
)

var _ token.Ledger = (*FakeLedger)(nil)

// FakeLedger is an in-memory token ledger for tests. Setting SaveErr makes
// every Save fail, to exercise the fire-and-forget ledger path.
type FakeLedger struct {
	SaveErr error

	tokens map[string]*token.IssuedToken
	lock   sync.RWMutex
}

func NewFakeLedger() *FakeLedger {
	return &FakeLedger{
		tokens: make(map[string]*token.IssuedToken),
	}
}

func (l *FakeLedger) Save(_ context.Context, issued *token.IssuedToken) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.SaveErr != nil {
		return l.SaveErr
	}
	if issued.ID == "" {
		issued.ID = uuid.New().String()
	}
	l.tokens[issued.Token] = issued
	return nil
}

func (l *FakeLedger) FindByToken(_ context.Context, raw string) (*token.IssuedToken, error) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	issued, ok := l.tokens[raw]
	if !ok {
		return nil, token.ErrTokenNotFound
	}
	return issued, nil
}

// Len reports how many tokens have been recorded.
func (l *FakeLedger) Len() int {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return len(l.tokens)
}

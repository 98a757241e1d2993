package registration

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/nexus-iam/sentinel/clients"
	"github.com/nexus-iam/sentinel/credentials"
	"github.com/nexus-iam/sentinel/principal"
)

type clientHandler struct {
	repo     clients.Repo
	verifier credentials.Verifier
}

var _ Handler = (*clientHandler)(nil)

// NewClientHandler builds the registration handler for client principals.
func NewClientHandler(repo clients.Repo, verifier credentials.Verifier) Handler {
	return &clientHandler{repo: repo, verifier: verifier}
}

func (h *clientHandler) Kind() principal.Kind {
	return principal.KindClient
}

// Register persists a new client. The document id is generated here, at
// registration time, not assigned sequentially by the store.
func (h *clientHandler) Register(ctx context.Context, request Request) (*Result, error) {
	req, ok := request.(ClientRegistration)
	if !ok {
		return nil, InvalidRegistrationRequestErr
	}

	secretHash, err := h.verifier.Hash(req.ClientSecret)
	if err != nil {
		return nil, errors.Wrap(err, "[clientHandler.Register] hash")
	}

	saved, err := h.repo.Save(ctx, &clients.Client{
		ID:                uuid.New().String(),
		ClientID:          req.ClientID,
		SecretHash:        secretHash,
		Scopes:            req.Scopes,
		GrantTypes:        req.GrantTypes,
		AllowedTokenKinds: req.AllowedTokenKinds,
		Roles:             req.Roles,
		Team:              req.Team,
		ServiceTier:       req.ServiceTier,
	})
	if err != nil {
		return nil, errors.Wrap(err, "[clientHandler.Register] save")
	}

	return &Result{Entity: saved, Kind: principal.KindClient}, nil
}

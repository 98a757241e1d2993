package registration

import (
	"context"

	"github.com/pkg/errors"

	"github.com/nexus-iam/sentinel/credentials"
	"github.com/nexus-iam/sentinel/principal"
	"github.com/nexus-iam/sentinel/users"
)

type userHandler struct {
	repo     users.Repo
	verifier credentials.Verifier
}

var _ Handler = (*userHandler)(nil)

// NewUserHandler builds the registration handler for user principals.
func NewUserHandler(repo users.Repo, verifier credentials.Verifier) Handler {
	return &userHandler{repo: repo, verifier: verifier}
}

func (h *userHandler) Kind() principal.Kind {
	return principal.KindUser
}

// Register persists a new user. The request shape is re-checked even though
// the resolver already matched the kind.
func (h *userHandler) Register(ctx context.Context, request Request) (*Result, error) {
	req, ok := request.(UserRegistration)
	if !ok {
		return nil, InvalidRegistrationRequestErr
	}

	passwordHash, err := h.verifier.Hash(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "[userHandler.Register] hash")
	}

	saved, err := h.repo.Save(ctx, &users.User{
		Username:          req.Username,
		PasswordHash:      passwordHash,
		Roles:             req.Roles,
		AllowedTokenKinds: req.AllowedTokenKinds,
		Active:            true,
		Department:        req.Department,
		Region:            req.Region,
		Email:             req.Email,
	})
	if err != nil {
		return nil, errors.Wrap(err, "[userHandler.Register] save")
	}

	return &Result{Entity: saved, Kind: principal.KindUser}, nil
}

package clients

import (
	"github.com/nexus-iam/sentinel/token"
)

// Client is a machine principal: a backend service or external application
// authenticating with a client id and secret. ID is the store document id;
// ClientID is the credential identifier presented at authentication.
type Client struct {
	ID                string       `json:"id,omitempty"`
	ClientID          string       `json:"client_id,omitempty"` // unique
	SecretHash        string       `json:"secret_hash,omitempty"`
	Scopes            []string     `json:"scopes,omitempty"`
	GrantTypes        []string     `json:"grant_types,omitempty"`
	AllowedTokenKinds []token.Kind `json:"allowed_token_kinds,omitempty"`
	Roles             []string     `json:"roles,omitempty"`
	Team              string       `json:"team,omitempty"`
	ServiceTier       string       `json:"service_tier,omitempty"`
}

// HasScope checks if the client has permission for a specific scope.
func (c *Client) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

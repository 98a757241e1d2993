package auth

// UserClaims are the custom claims embedded in tokens issued to users.
// The user and client claim schemas are disjoint and never mixed.
type UserClaims struct {
	Roles      []string
	Department string
	Region     string
	Email      string
}

// ToMap flattens the claims for the token codec. Every field is emitted,
// present or not, so a round-trip recovers the full schema.
func (c UserClaims) ToMap() map[string]any {
	return map[string]any{
		"roles":      c.Roles,
		"department": c.Department,
		"region":     c.Region,
		"email":      c.Email,
	}
}

// ClientClaims are the custom claims embedded in tokens issued to clients.
type ClientClaims struct {
	Roles      []string
	Scopes     []string
	GrantTypes []string
	Team       string
	Tier       string
}

func (c ClientClaims) ToMap() map[string]any {
	return map[string]any{
		"roles":       c.Roles,
		"scopes":      c.Scopes,
		"grant_types": c.GrantTypes,
		"team":        c.Team,
		"tier":        c.Tier,
	}
}

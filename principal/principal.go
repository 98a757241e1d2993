package principal

import "github.com/pkg/errors"

// Kind distinguishes the two principal variants the service issues
// credentials for. It is embedded in every signed token (the subject_type
// claim) and drives registration dispatch.
type Kind string

const (
	KindUser   Kind = "USER"
	KindClient Kind = "CLIENT"
)

func (k Kind) Valid() bool {
	return k == KindUser || k == KindClient
}

// ParseKind converts a raw claim value into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", errors.Errorf("unknown principal kind %q", s)
	}
	return k, nil
}

package registration

import (
	"github.com/pkg/errors"

	"github.com/nexus-iam/sentinel/principal"
)

// Resolver routes registration requests to the handler for their principal
// kind. The mapping is built once at startup; duplicate handlers for one
// kind are a wiring error and fail construction rather than silently
// shadowing each other.
type Resolver struct {
	handlers map[principal.Kind]Handler
}

func NewResolver(handlers ...Handler) (*Resolver, error) {
	byKind := make(map[principal.Kind]Handler, len(handlers))
	for _, h := range handlers {
		if _, exists := byKind[h.Kind()]; exists {
			return nil, errors.Errorf("duplicate registration handler for kind %s", h.Kind())
		}
		byKind[h.Kind()] = h
	}
	return &Resolver{handlers: byKind}, nil
}

// Resolve returns the handler for kind, or NoHandlerForKindErr for kinds no
// handler declared. There is no default handler.
func (r *Resolver) Resolve(kind principal.Kind) (Handler, error) {
	h, ok := r.handlers[kind]
	if !ok {
		return nil, errors.Wrapf(NoHandlerForKindErr, "%s", kind)
	}
	return h, nil
}

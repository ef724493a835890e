package connector

import "payment-connector-engine/internal/apperror"

// ID is the closed enum of supported connector identifiers, matching the
// lowercase snake-case values carried on the gRPC x-connector metadata key
// bit-exact (spec §6).
type ID string

const (
	Adyen        ID = "adyen"
	Razorpay     ID = "razorpay"
	Elavon       ID = "elavon"
	AuthorizeNet ID = "authorizenet"
)

// Config is the subset of per-connector configuration the registry needs
// to construct a Connector value, sourced from internal/platform/config.
type Config struct {
	BaseURL string
}

// Registry resolves a connector id to its Connector capability set (spec
// C4). Connector values are stateless and safe to share across tasks, so
// the registry builds them once at construction and returns the shared
// handle on every Resolve call.
type Registry struct {
	connectors map[ID]Connector
}

// New builds a Registry from a constructor table, one entry per supported
// connector. Callers assemble the table in cmd/server/main.go by calling
// each connector package's New(cfg) function.
func New(connectors map[ID]Connector) *Registry {
	return &Registry{connectors: connectors}
}

// Resolve maps a connector id to its Connector value. An unrecognized id
// is an InvalidArgument at the boundary (spec C4 error contract), not a
// panic or a zero value silently dispatched into.
func (r *Registry) Resolve(id ID) (Connector, error) {
	c, ok := r.connectors[id]
	if !ok {
		return Connector{}, apperror.NewInvalidArgument("x-connector", "unknown connector: "+string(id))
	}
	return c, nil
}

package app

import (
	"rust-protogen/internal/adapters"
	"rust-protogen/internal/policies"
	"rust-protogen/internal/ports"
)

// Service is the facade the message/field/file emitters and the CLI
// call into. It is stateless apart from the scope registry, so a
// single value may be shared across concurrent generator workers.
type Service struct {
	Scope ports.Scope
}

func NewService() Service {
	return Service{
		Scope: adapters.NewScopeIndexAdapter(),
	}
}

func (s Service) referencePolicy() policies.ReferencePolicy {
	return policies.NewReferencePolicy(s.Scope)
}

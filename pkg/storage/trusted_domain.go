package storage

import "context"

// TrustedDomainStorage persists domains added to the URL allow-list at runtime
// so that every process of the service converges on the same list.
type TrustedDomainStorage interface {
	// StoreTrustedDomain records a normalized domain name. Storing a name that is
	// already present is not an error.
	StoreTrustedDomain(ctx context.Context, name string) error
	// TrustedDomains returns every stored domain in insertion order.
	TrustedDomains(ctx context.Context) ([]string, error)
}

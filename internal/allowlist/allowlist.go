// Package allowlist keeps the in-memory URL allow-list of a process in sync
// with the trusted domains persisted by administrators.
package allowlist

import (
	"context"
	"fmt"
	"presell/pkg/logger"
	"presell/pkg/serrors"
	"presell/pkg/storage"
	"presell/pkg/urlguard"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -package mockallowlist -source=allowlist.go -destination=mock/mockallowlist.go *
type Manager interface {
	// Trust normalizes domain, persists it and makes it effective for this
	// process immediately. It returns the normalized name.
	Trust(ctx context.Context, domain string) (string, error)
	// Domains returns the trusted domains currently in effect.
	Domains() []string
	// Load merges the persisted domains into the in-memory list.
	Load(ctx context.Context) error
}

// manager is the concrete implementation of the Manager interface.
type manager struct {
	allowList *urlguard.AllowList
	storage   storage.TrustedDomainStorage
}

// New creates a Manager updating allowList, which is shared with the
// validator of the process.
func New(allowList *urlguard.AllowList, storage storage.TrustedDomainStorage) Manager {
	return &manager{allowList: allowList, storage: storage}
}

// Trust persists the domain before trusting it in memory, so a failed write
// leaves both views unchanged.
func (m *manager) Trust(ctx context.Context, domain string) (string, error) {
	name, err := urlguard.NormalizeDomain(domain)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid domain")
	}

	if err := m.storage.StoreTrustedDomain(ctx, name); err != nil {
		return "", fmt.Errorf("could not store trusted domain: %w", err)
	}
	if _, err := m.allowList.Trust(name); err != nil {
		return "", fmt.Errorf("could not trust domain: %w", err)
	}

	logger.Info(ctx, "domain trusted", zap.String("domain", name))

	return name, nil
}

func (m *manager) Domains() []string {
	return m.allowList.Domains()
}

// Load trusts every persisted domain. Domains are never removed from memory.
func (m *manager) Load(ctx context.Context) error {
	names, err := m.storage.TrustedDomains(ctx)
	if err != nil {
		return fmt.Errorf("could not get trusted domains: %w", err)
	}

	for _, name := range names {
		if _, err := m.allowList.Trust(name); err != nil {
			logger.Warn(ctx, "ignoring invalid trusted domain", zap.String("domain", name), zap.Error(err))
		}
	}

	return nil
}

// Watch reloads the persisted domains every interval until ctx is done, so
// domains trusted through other processes become effective here too.
func Watch(ctx context.Context, m Manager, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.Load(ctx); err != nil {
				logger.Error(ctx, "could not refresh allow-list", zap.Error(err))
			}
		}
	}
}

package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	trustedDomainsTable = "trusted_domains"
)

func (p *PgSQL) StoreTrustedDomain(ctx context.Context, name string) error {
	_, err := p.Builder.Insert(trustedDomainsTable).
		Rows(goqu.Record{"domain": name}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store trusted domain into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) TrustedDomains(ctx context.Context) ([]string, error) {
	var out []string
	if err := p.Builder.From(trustedDomainsTable).
		Select("domain").
		Order(goqu.I("created_at").Asc(), goqu.I("domain").Asc()).
		Executor().ScanValsContext(ctx, &out); err != nil {
		return nil, fmt.Errorf("could not fetch trusted domains from pg: %w", err)
	}

	return out, nil
}

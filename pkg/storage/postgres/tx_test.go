package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"presell/pkg/storage"
	"presell/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Tx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("outside a transaction", func(t *testing.T) {
		require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
		require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
	})

	t.Run("nested begin", func(t *testing.T) {
		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = txStorage.Rollback() }()

		inner, ok := txStorage.(*postgres.PgSQL)
		require.True(t, ok)
		_, isTx := inner.DB.(*sql.Tx)
		require.True(t, isTx)

		_, err = inner.Begin(ctx)
		require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	})

	t.Run("commit publishes writes", func(t *testing.T) {
		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, txStorage.StoreTrustedDomain(ctx, "committed.example"))

		// not visible outside the tx yet
		domains, err := pg.TrustedDomains(ctx)
		require.NoError(t, err)
		require.NotContains(t, domains, "committed.example")

		require.NoError(t, txStorage.Commit())

		domains, err = pg.TrustedDomains(ctx)
		require.NoError(t, err)
		require.Contains(t, domains, "committed.example")
	})

	t.Run("rollback discards writes", func(t *testing.T) {
		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, txStorage.StoreTrustedDomain(ctx, "rolledback.example"))
		require.NoError(t, txStorage.Rollback())

		domains, err := pg.TrustedDomains(ctx)
		require.NoError(t, err)
		require.NotContains(t, domains, "rolledback.example")
	})

	t.Run("WithTx", func(t *testing.T) {
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			return s.StoreTrustedDomain(ctx, "withtx.example")
		})
		require.NoError(t, err)

		boom := errors.New("boom")
		err = pg.WithTx(ctx, func(s storage.AllStorage) error {
			require.NoError(t, s.StoreTrustedDomain(ctx, "failed.example"))

			return boom
		})
		require.ErrorIs(t, err, boom)

		domains, err := pg.TrustedDomains(ctx)
		require.NoError(t, err)
		require.Contains(t, domains, "withtx.example")
		require.NotContains(t, domains, "failed.example")
	})
}

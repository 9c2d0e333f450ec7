package postgres

import (
	"context"
	"fmt"
	"presell/pkg/domain"
	"presell/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	presellsTable = "presells"
)

func (p *PgSQL) StorePresell(ctx context.Context, presell domain.Presell) (*domain.Presell, error) {
	var pg PgPresell
	pg.FromDomain(presell)

	var row PgPresell
	if _, err := p.Builder.Insert(presellsTable).
		Rows(pg).
		Returning(&PgPresell{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store presell into pg: %w", err)
	}

	return row.ToDomain(), nil
}

// PresellByID returns a presell owned by userID, excluding soft-deleted rows.
func (p *PgSQL) PresellByID(ctx context.Context, userID domain.UserID, id domain.PresellID) (*domain.Presell, error) {
	return p.presellWhere(ctx,
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	)
}

// PresellForCapture returns a presell by its ID regardless of the owner,
// excluding soft-deleted rows.
func (p *PgSQL) PresellForCapture(ctx context.Context, id domain.PresellID) (*domain.Presell, error) {
	return p.presellWhere(ctx,
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	)
}

func (p *PgSQL) presellWhere(ctx context.Context, where ...goqu.Expression) (*domain.Presell, error) {
	var row PgPresell
	found, err := p.Builder.From(presellsTable).
		Where(where...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch presell by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserPresells returns a list of presells for a user filtered by optional cursor and limited by limit.
// Results are ordered by created_at DESC, id DESC.
func (p *PgSQL) UserPresells(ctx context.Context,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.UserPresells, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	ds := p.Builder.From(presellsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgPresell
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserPresells{}, fmt.Errorf("could not fetch user presells from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	return storage.UserPresells{
		Presells:   pgPresellsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// DeletePresell performs a soft delete by setting deleted_at timestamp
// for a given presell id and user, returning the deleted record.
func (p *PgSQL) DeletePresell(ctx context.Context, userID domain.UserID, id domain.PresellID) (*domain.Presell, error) {
	var row PgPresell
	found, err := p.Builder.Update(presellsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgPresell{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete presell in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ResetCapture moves a presell back to pending under a new capture token and
// clears the outcome of any previous capture.
func (p *PgSQL) ResetCapture(ctx context.Context,
	userID domain.UserID,
	id domain.PresellID,
	token domain.CaptureToken) (*domain.Presell, error) {
	var row PgPresell
	found, err := p.Builder.Update(presellsTable).
		Set(goqu.Record{
			"status":               string(domain.PresellStatusPending),
			"capture_state":        nil,
			"desktop_ref":          nil,
			"mobile_ref":           nil,
			"captured_at":          nil,
			"capture_token":        uuid.UUID(token),
			"capture_requested_at": goqu.L("CURRENT_TIMESTAMP"),
			"updated_at":           goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgPresell{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not reset presell capture in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func refValue(ref *string) any {
	if ref == nil {
		return nil
	}

	return *ref
}

// SaveCapture stores the capture result for the invocation holding token.
// Timestamps only move when the stored result actually changes, so repeating
// a write is a no-op.
func (p *PgSQL) SaveCapture(ctx context.Context,
	id domain.PresellID,
	token domain.CaptureToken,
	result domain.CaptureResult) (bool, error) {
	status := string(domain.PresellStatusCompleted)
	state := string(result.State)
	desktop := refValue(result.Outcome.Desktop)
	mobile := refValue(result.Outcome.Mobile)

	unchanged := goqu.L(
		"status = ? AND capture_state IS NOT DISTINCT FROM ? "+
			"AND desktop_ref IS NOT DISTINCT FROM ? AND mobile_ref IS NOT DISTINCT FROM ?",
		status, state, desktop, mobile,
	)

	res, err := p.Builder.Update(presellsTable).
		Set(goqu.Record{
			"status":        status,
			"capture_state": state,
			"desktop_ref":   desktop,
			"mobile_ref":    mobile,
			"captured_at":   goqu.Case().When(unchanged, goqu.I("captured_at")).Else(goqu.L("CURRENT_TIMESTAMP")),
			"updated_at":    goqu.Case().When(unchanged, goqu.I("updated_at")).Else(goqu.L("CURRENT_TIMESTAMP")),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("capture_token").Eq(uuid.UUID(token)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not save presell capture in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

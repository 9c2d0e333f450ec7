package postgres

import (
	"database/sql"
	"presell/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgPresell struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	URL          string         `db:"url"`
	Status       string         `db:"status"`
	CaptureState sql.NullString `db:"capture_state"`
	DesktopRef   sql.NullString `db:"desktop_ref"`
	MobileRef    sql.NullString `db:"mobile_ref"`

	CaptureToken       uuid.UUID    `db:"capture_token"`
	CaptureRequestedAt time.Time    `db:"capture_requested_at" goqu:"skipinsert"`
	CapturedAt         sql.NullTime `db:"captured_at"          goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func nullableRef(ref *string) sql.NullString {
	if ref == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *ref, Valid: true}
}

func refOf(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String

	return &v
}

func (p *PgPresell) ToDomain() *domain.Presell {
	return &domain.Presell{
		ID:           domain.PresellID(p.ID),
		UserID:       domain.UserID(p.UserID),
		URL:          p.URL,
		Status:       domain.PresellStatus(p.Status),
		CaptureState: domain.CaptureState(p.CaptureState.String),
		Screenshots: domain.CaptureOutcome{
			Desktop: refOf(p.DesktopRef),
			Mobile:  refOf(p.MobileRef),
		},
		CaptureToken:       domain.CaptureToken(p.CaptureToken),
		CaptureRequestedAt: p.CaptureRequestedAt,
		CapturedAt:         p.CapturedAt.Time,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt.Time,
		DeletedAt:          p.DeletedAt.Time,
	}
}

func (p *PgPresell) FromDomain(presell domain.Presell) {
	status := presell.Status
	if status == "" {
		status = domain.PresellStatusPending
	}

	*p = PgPresell{
		ID:     uuid.UUID(presell.ID),
		UserID: uuid.UUID(presell.UserID),
		URL:    presell.URL,
		Status: string(status),
		CaptureState: sql.NullString{
			String: string(presell.CaptureState),
			Valid:  presell.CaptureState != "",
		},
		DesktopRef:         nullableRef(presell.Screenshots.Desktop),
		MobileRef:          nullableRef(presell.Screenshots.Mobile),
		CaptureToken:       uuid.UUID(presell.CaptureToken),
		CaptureRequestedAt: presell.CaptureRequestedAt,
		CreatedAt:          presell.CreatedAt,
	}
}

func pgPresellsToDomain(presells []PgPresell) []domain.Presell {
	out := make([]domain.Presell, 0, len(presells))
	for _, p := range presells {
		out = append(out, *p.ToDomain())
	}

	return out
}

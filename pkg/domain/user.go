package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// UserID identifies the owner of presells. It is the subject of the bearer token.
type UserID uuid.UUID

// ErrNilUserID is returned by ParseUserID for the all-zero UUID, which never
// identifies a real user.
var ErrNilUserID = errors.New("nil user id")

// ParseUserID parses s as a UUID user ID.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, fmt.Errorf("invalid user id: %w", err)
	}
	if id == uuid.Nil {
		return UserID{}, ErrNilUserID
	}

	return UserID(id), nil
}

// IsZero reports whether id is unset.
func (id UserID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func (id UserID) String() string { return uuid.UUID(id).String() }

func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

package entity

import (
	"strings"
	"time"

	errs "github.com/fbp-works/economy-service/internal/domain/error"
)

// User represents a participant identified by an external identity string.
// Users are created lazily on first interaction and never deleted.
type User struct {
	ID         uint64
	ExternalID string
	CreatedAt  time.Time
}

// NewUser creates a user for the given external identity
func NewUser(externalID string, now time.Time) (*User, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, errs.ErrInvalidExternalID
	}

	return &User{
		ExternalID: externalID,
		CreatedAt:  now,
	}, nil
}

package types

import (
	"github.com/google/uuid"
)

// TokenClaims is the validated identity extracted from a bearer token.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
}

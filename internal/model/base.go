package model

import (
	"time"

	"github.com/google/uuid"
)

// Audit handles ID (UUID) and the stamp every registered record carries:
// when it was entered and by which logged-in identity.
type Audit struct {
	ID        uuid.UUID `json:"id"`
	CreatedOn time.Time `json:"createdOn"`
	CreatedBy string    `json:"createdBy"`
}

// NewAudit stamps a fresh record for the given identity.
func NewAudit(identity string) Audit {
	return Audit{
		ID:        uuid.New(),
		CreatedOn: time.Now(),
		CreatedBy: identity,
	}
}

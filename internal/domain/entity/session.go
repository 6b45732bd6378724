package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session holds the selection state of one interactive logistics session.
type Session struct {
	ID        uuid.UUID
	Selection *Selection
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a copy whose selection can be mutated independently.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	cloned := *s
	if s.Selection != nil {
		cloned.Selection = s.Selection.Clone()
	}

	return &cloned
}

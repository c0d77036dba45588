// Package store persists booking records to the external audit trail.
// The store is a best-effort, append-only sink: the booking flow never
// reads from it and never fails because of it.
package store

import (
	"context"

	"github.com/doltonsedward/toraja-hillstop/internal/model"
)

// AuditStore is the sink for booking records. Callers check Enabled
// before attempting a write; a disabled store turns persistence into a
// silent no-op without touching the rest of the flow.
type AuditStore interface {
	Enabled() bool
	Insert(ctx context.Context, b *model.Booking) error
}

// Disabled is the unconfigured store. Writes are skipped entirely.
type Disabled struct{}

func (Disabled) Enabled() bool { return false }

func (Disabled) Insert(context.Context, *model.Booking) error { return nil }

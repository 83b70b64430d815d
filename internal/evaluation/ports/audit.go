package ports

//go:generate mockgen -source=audit.go -destination=mocks/audit_mock.go -package=mocks

import (
	"context"

	"cardeval/internal/platform/audit"
)

// AuditPublisher defines the interface for emitting audit events.
// This matches the audit.Publisher interface but is defined here
// to maintain hexagonal boundaries.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

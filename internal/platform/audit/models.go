package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies and sinks.
type EventCategory string

const (
	// CategoryCompliance covers events with regulatory significance, such as
	// credit decisions. These require long retention.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers events useful for debugging and operational
	// visibility. These can be sampled.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID
	Category  EventCategory
	Timestamp time.Time
	Action    string
	Decision  string
	Reason    string
	// SubjectIDHash is a SHA-256 hash of the frequent flyer number. The raw
	// number is never stored.
	SubjectIDHash string
	Age           int
	IncomeBand    string
}

type AuditEvent string

const (
	EventApplicationEvaluated AuditEvent = "application_evaluated"
	EventFlyerLookupFailed    AuditEvent = "flyer_lookup_failed"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventApplicationEvaluated: CategoryCompliance,
	EventFlyerLookupFailed:    CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// HashSubject returns the hex SHA-256 of an identifier, or "" for an empty one.
func HashSubject(subject string) string {
	if subject == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(subject))
	return hex.EncodeToString(sum[:])
}

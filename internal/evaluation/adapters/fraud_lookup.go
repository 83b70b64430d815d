package adapters

import (
	"context"
	"strings"

	"cardeval/internal/evaluation/models"
)

// BlocklistFraudLookup flags applications whose frequent flyer number is known
// to be associated with fraud.
type BlocklistFraudLookup struct {
	blocked map[string]struct{}
}

func NewBlocklistFraudLookup(numbers []string) *BlocklistFraudLookup {
	blocked := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		if n = normalizeFlyerNumber(n); n != "" {
			blocked[n] = struct{}{}
		}
	}
	return &BlocklistFraudLookup{blocked: blocked}
}

func (l *BlocklistFraudLookup) IsFraudRisk(ctx context.Context, application models.Application) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	n := normalizeFlyerNumber(application.FrequentFlyerNumber)
	if n == "" {
		return false, nil
	}
	_, ok := l.blocked[n]
	return ok, nil
}

func normalizeFlyerNumber(n string) string {
	return strings.ToUpper(strings.TrimSpace(n))
}

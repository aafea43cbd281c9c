package app

import (
	"regexp"
	"strings"

	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/sqlstore"
	"go.opentelemetry.io/otel/attribute"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	// Player names only ever travel as bind parameters, but NOTIFY payloads
	// and ad-hoc statements may inline them.
	queryLiteralRegex = regexp.MustCompile(`'(?:[^']|'')*'`)
)

// formatDBQueryForTrace collapses whitespace and masks string literals so
// spans never carry player names.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	normalized = queryLiteralRegex.ReplaceAllString(normalized, "'?'")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}

func ledgerStoreAttributes(dialect sqlstore.Dialect) []attribute.KeyValue {
	system := "postgresql"
	if dialect == sqlstore.SQLite {
		system = "sqlite"
	}
	return []attribute.KeyValue{
		attribute.String("db.system", system),
		attribute.String("ledger.store.driver", string(dialect)),
	}
}

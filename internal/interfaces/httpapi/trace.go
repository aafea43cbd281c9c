package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("league-ledger/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

const (
	attrFixtureHome = attribute.Key("league.fixture.team1")
	attrFixtureAway = attribute.Key("league.fixture.team2")
	attrCardTeam    = attribute.Key("league.card.team")
	attrCardType    = attribute.Key("league.card.type")
)

// startSpan opens a span for a handler. Helpers and middleware share the
// request span instead of adding their own, and requests without a parent
// (filtered routes like /healthz) get none.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

// fixtureAttributes tags a span with the two teams of a fixture as sent by
// the client, before league validation.
func fixtureAttributes(team1, team2 string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attrFixtureHome.String(strings.TrimSpace(team1)),
		attrFixtureAway.String(strings.TrimSpace(team2)),
	}
}

func cardAttributes(req recordCardRequest) []attribute.KeyValue {
	return append(fixtureAttributes(req.MatchTeam1, req.MatchTeam2),
		attrCardTeam.String(strings.TrimSpace(req.Team)),
		attrCardType.String(strings.ToLower(strings.TrimSpace(req.Card))),
	)
}

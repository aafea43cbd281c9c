package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("league-ledger/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

const (
	attrTeam1        = attribute.Key("league.team1")
	attrTeam2        = attribute.Key("league.team2")
	attrGameNumber   = attribute.Key("league.game_number")
	attrBansSettled  = attribute.Key("league.bans_settled")
	attrSuspensionID = attribute.Key("league.suspension_id")
)

// startUsecaseSpan only opens child spans; calls outside a traced request
// run untraced.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func fixtureAttrs(team1, team2 string) []attribute.KeyValue {
	return []attribute.KeyValue{attrTeam1.String(team1), attrTeam2.String(team2)}
}

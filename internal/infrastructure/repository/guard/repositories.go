// Package guard puts a circuit breaker in front of the store so that an
// unreachable backend fails fast instead of stacking up timed-out calls.
package guard

import (
	"context"
	"errors"

	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	"github.com/riskibarqy/league-ledger/internal/platform/logging"
	"github.com/riskibarqy/league-ledger/internal/platform/resilience"
)

// Breaker is shared by every repository of one store. Only ErrUnavailable
// trips it; rejected writes mean the store is up.
type Breaker struct {
	cb *resilience.CircuitBreaker
}

func NewBreaker(cfg resilience.CircuitBreakerConfig, logger *logging.Logger) *Breaker {
	if logger == nil {
		logger = logging.Default()
	}

	logger.Info("document store circuit configured", cfg.LogFields()...)
	cb := resilience.NewCircuitBreakerFromConfig(cfg).
		WithFailurePredicate(docstore.IsUnavailable).
		WithStateChange(func(from, to resilience.CircuitState) {
			logger.Warn("document store circuit changed", "from", string(from), "to", string(to))
		})
	return &Breaker{cb: cb}
}

func (b *Breaker) State() resilience.CircuitState {
	return b.cb.State()
}

func (b *Breaker) do(op string, fn func() error) error {
	err := b.cb.Execute(fn)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return docstore.Unavailable(err, "%s", op)
	}
	return err
}

func call[T any](b *Breaker, op string, fn func() (T, error)) (T, error) {
	var out T
	err := b.do(op, func() error {
		var err error
		out, err = fn()
		return err
	})
	return out, err
}

func lookup[T any](b *Breaker, op string, fn func() (T, bool, error)) (T, bool, error) {
	var (
		out    T
		exists bool
	)
	err := b.do(op, func() error {
		var err error
		out, exists, err = fn()
		return err
	})
	return out, exists, err
}

type SuspensionRepository struct {
	next    suspension.Repository
	breaker *Breaker
}

func NewSuspensionRepository(next suspension.Repository, breaker *Breaker) *SuspensionRepository {
	return &SuspensionRepository{next: next, breaker: breaker}
}

func (r *SuspensionRepository) List(ctx context.Context) ([]suspension.Record, error) {
	return call(r.breaker, "list suspensions", func() ([]suspension.Record, error) { return r.next.List(ctx) })
}

func (r *SuspensionRepository) ListByTeams(ctx context.Context, teams ...string) ([]suspension.Record, error) {
	return call(r.breaker, "list suspensions by teams", func() ([]suspension.Record, error) { return r.next.ListByTeams(ctx, teams...) })
}

func (r *SuspensionRepository) GetByID(ctx context.Context, id string) (suspension.Record, bool, error) {
	return lookup(r.breaker, "get suspension", func() (suspension.Record, bool, error) { return r.next.GetByID(ctx, id) })
}

func (r *SuspensionRepository) Find(ctx context.Context, team, player string) (suspension.Record, bool, error) {
	return lookup(r.breaker, "find suspension", func() (suspension.Record, bool, error) { return r.next.Find(ctx, team, player) })
}

func (r *SuspensionRepository) Create(ctx context.Context, record suspension.Record) (suspension.Record, error) {
	return call(r.breaker, "create suspension", func() (suspension.Record, error) { return r.next.Create(ctx, record) })
}

func (r *SuspensionRepository) Update(ctx context.Context, record suspension.Record) error {
	return r.breaker.do("update suspension", func() error { return r.next.Update(ctx, record) })
}

func (r *SuspensionRepository) BatchUpdate(ctx context.Context, records []suspension.Record) error {
	return r.breaker.do("batch update suspensions", func() error { return r.next.BatchUpdate(ctx, records) })
}

func (r *SuspensionRepository) Delete(ctx context.Context, id string) error {
	return r.breaker.do("delete suspension", func() error { return r.next.Delete(ctx, id) })
}

type MatchRepository struct {
	next    match.Repository
	breaker *Breaker
}

func NewMatchRepository(next match.Repository, breaker *Breaker) *MatchRepository {
	return &MatchRepository{next: next, breaker: breaker}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return call(r.breaker, "list matches", func() ([]match.Match, error) { return r.next.List(ctx) })
}

func (r *MatchRepository) Count(ctx context.Context) (int, error) {
	return call(r.breaker, "count matches", func() (int, error) { return r.next.Count(ctx) })
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	return lookup(r.breaker, "get match", func() (match.Match, bool, error) { return r.next.GetByID(ctx, id) })
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	return call(r.breaker, "create match", func() (match.Match, error) { return r.next.Create(ctx, item) })
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	return r.breaker.do("delete match", func() error { return r.next.Delete(ctx, id) })
}

type RosterRepository struct {
	next    roster.Repository
	breaker *Breaker
}

func NewRosterRepository(next roster.Repository, breaker *Breaker) *RosterRepository {
	return &RosterRepository{next: next, breaker: breaker}
}

func (r *RosterRepository) List(ctx context.Context) ([]roster.Player, error) {
	return call(r.breaker, "list players", func() ([]roster.Player, error) { return r.next.List(ctx) })
}

func (r *RosterRepository) ListByTeam(ctx context.Context, team string) ([]roster.Player, error) {
	return call(r.breaker, "list players by team", func() ([]roster.Player, error) { return r.next.ListByTeam(ctx, team) })
}

func (r *RosterRepository) Exists(ctx context.Context, team, name string) (bool, error) {
	return call(r.breaker, "player exists", func() (bool, error) { return r.next.Exists(ctx, team, name) })
}

func (r *RosterRepository) Create(ctx context.Context, item roster.Player) (roster.Player, error) {
	return call(r.breaker, "create player", func() (roster.Player, error) { return r.next.Create(ctx, item) })
}

func (r *RosterRepository) Delete(ctx context.Context, id string) error {
	return r.breaker.do("delete player", func() error { return r.next.Delete(ctx, id) })
}

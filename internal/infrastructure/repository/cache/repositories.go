package cache

import (
	"context"
	"slices"

	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	basecache "github.com/riskibarqy/league-ledger/internal/platform/cache"
)

const (
	suspensionPrefix = "suspension:"
	matchPrefix      = "match:"
	rosterPrefix     = "roster:"
)

// SuspensionRepository caches the full listing only. ListByTeams, GetByID
// and Find feed read-modify-write paths (card recording, match settlement,
// edits) and always go to the store, so a ban decrement is never computed
// from a cached copy. Every successful write drops all suspension keys.
type SuspensionRepository struct {
	next  suspension.Repository
	cache *basecache.Store
}

func NewSuspensionRepository(next suspension.Repository, cache *basecache.Store) *SuspensionRepository {
	return &SuspensionRepository{next: next, cache: cache}
}

func (r *SuspensionRepository) List(ctx context.Context) ([]suspension.Record, error) {
	return loadSlice(ctx, r.cache, suspensionPrefix+"list", func(ctx context.Context) ([]suspension.Record, error) {
		return r.next.List(ctx)
	})
}

func (r *SuspensionRepository) ListByTeams(ctx context.Context, teams ...string) ([]suspension.Record, error) {
	return r.next.ListByTeams(ctx, teams...)
}

func (r *SuspensionRepository) GetByID(ctx context.Context, id string) (suspension.Record, bool, error) {
	return r.next.GetByID(ctx, id)
}

func (r *SuspensionRepository) Find(ctx context.Context, team, player string) (suspension.Record, bool, error) {
	return r.next.Find(ctx, team, player)
}

func (r *SuspensionRepository) Create(ctx context.Context, record suspension.Record) (suspension.Record, error) {
	out, err := r.next.Create(ctx, record)
	if err != nil {
		return suspension.Record{}, err
	}
	r.cache.DeletePrefix(ctx, suspensionPrefix)
	return out, nil
}

func (r *SuspensionRepository) Update(ctx context.Context, record suspension.Record) error {
	if err := r.next.Update(ctx, record); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, suspensionPrefix)
	return nil
}

func (r *SuspensionRepository) BatchUpdate(ctx context.Context, records []suspension.Record) error {
	if err := r.next.BatchUpdate(ctx, records); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, suspensionPrefix)
	return nil
}

func (r *SuspensionRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, suspensionPrefix)
	return nil
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return loadSlice(ctx, r.cache, matchPrefix+"list", r.next.List)
}

// Count is not cached; it feeds the next game number and must see every save.
func (r *MatchRepository) Count(ctx context.Context) (int, error) {
	return r.next.Count(ctx)
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	return loadOne(ctx, r.cache, matchPrefix+"id:"+id, func(ctx context.Context) (match.Match, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	out, err := r.next.Create(ctx, item)
	if err != nil {
		return match.Match{}, err
	}
	r.cache.DeletePrefix(ctx, matchPrefix)
	return out, nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, matchPrefix)
	return nil
}

type RosterRepository struct {
	next  roster.Repository
	cache *basecache.Store
}

func NewRosterRepository(next roster.Repository, cache *basecache.Store) *RosterRepository {
	return &RosterRepository{next: next, cache: cache}
}

func (r *RosterRepository) List(ctx context.Context) ([]roster.Player, error) {
	return loadSlice(ctx, r.cache, rosterPrefix+"list", r.next.List)
}

func (r *RosterRepository) ListByTeam(ctx context.Context, team string) ([]roster.Player, error) {
	return loadSlice(ctx, r.cache, rosterPrefix+"team:"+team, func(ctx context.Context) ([]roster.Player, error) {
		return r.next.ListByTeam(ctx, team)
	})
}

func (r *RosterRepository) Exists(ctx context.Context, team, name string) (bool, error) {
	_, exists, err := loadOne(ctx, r.cache, rosterPrefix+"exists:"+team+"|"+name, func(ctx context.Context) (struct{}, bool, error) {
		ok, err := r.next.Exists(ctx, team, name)
		return struct{}{}, ok, err
	})
	return exists, err
}

func (r *RosterRepository) Create(ctx context.Context, item roster.Player) (roster.Player, error) {
	out, err := r.next.Create(ctx, item)
	if err != nil {
		return roster.Player{}, err
	}
	r.cache.DeletePrefix(ctx, rosterPrefix)
	return out, nil
}

func (r *RosterRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, rosterPrefix)
	return nil
}

type cachedOne[T any] struct {
	value  T
	exists bool
}

// loadSlice hands out a copy so callers cannot mutate the cached backing array.
func loadSlice[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return slices.Clone(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]T)
	return slices.Clone(items), nil
}

func loadOne[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedOne[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	cached, _ := v.(cachedOne[T])
	return cached.value, cached.exists, nil
}

package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/schema"
)

type RosterRepository struct {
	mu     sync.RWMutex
	items  map[string]schema.PlayerDocument
	orders []string
}

func NewRosterRepository(players ...roster.Player) (*RosterRepository, error) {
	r := &RosterRepository{items: make(map[string]schema.PlayerDocument, len(players))}
	for _, p := range players {
		if _, err := r.Create(context.Background(), p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *RosterRepository) List(_ context.Context) ([]roster.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]schema.PlayerDocument, 0, len(r.orders))
	for _, id := range r.orders {
		docs = append(docs, r.items[id])
	}
	return schema.Players(docs)
}

func (r *RosterRepository) ListByTeam(_ context.Context, team string) ([]roster.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]schema.PlayerDocument, 0)
	for _, id := range r.orders {
		if doc := r.items[id]; doc.Team == team {
			docs = append(docs, doc)
		}
	}
	return schema.Players(docs)
}

func (r *RosterRepository) Exists(_ context.Context, team, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, doc := range r.items {
		if doc.Team == team && doc.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *RosterRepository) Create(_ context.Context, item roster.Player) (roster.Player, error) {
	doc, err := schema.FromPlayer(item)
	if err != nil {
		return roster.Player{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[doc.ID]; exists {
		return roster.Player{}, docstore.OperationFailed(nil, "create player %s: key already exists", doc.ID)
	}
	r.items[doc.ID] = doc
	r.orders = append(r.orders, doc.ID)

	return doc.Player()
}

func (r *RosterRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return docstore.NotFound("player %s", id)
	}
	delete(r.items, id)
	r.orders = slices.DeleteFunc(r.orders, func(v string) bool { return v == id })
	return nil
}

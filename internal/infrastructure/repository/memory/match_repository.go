package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/schema"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[string]schema.MatchDocument
	orders []string
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{items: make(map[string]schema.MatchDocument)}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]schema.MatchDocument, 0, len(r.orders))
	for _, id := range r.orders {
		docs = append(docs, r.items[id])
	}
	return schema.Matches(docs)
}

func (r *MatchRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.items[id]
	if !ok {
		return match.Match{}, false, nil
	}
	item, err := doc.Match()
	if err != nil {
		return match.Match{}, false, err
	}
	return item, true, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	doc, err := schema.FromMatch(item)
	if err != nil {
		return match.Match{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[doc.ID]; exists {
		return match.Match{}, docstore.OperationFailed(nil, "create match %s: key already exists", doc.ID)
	}
	r.items[doc.ID] = doc
	r.orders = append(r.orders, doc.ID)

	return doc.Match()
}

func (r *MatchRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return docstore.NotFound("match %s", id)
	}
	delete(r.items, id)
	r.orders = slices.DeleteFunc(r.orders, func(v string) bool { return v == id })
	return nil
}

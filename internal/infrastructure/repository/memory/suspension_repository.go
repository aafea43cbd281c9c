package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/schema"
)

type SuspensionRepository struct {
	mu     sync.RWMutex
	items  map[string]schema.SuspensionDocument
	orders []string
}

func NewSuspensionRepository(records ...suspension.Record) (*SuspensionRepository, error) {
	r := &SuspensionRepository{items: make(map[string]schema.SuspensionDocument, len(records))}
	for _, rec := range records {
		if _, err := r.Create(context.Background(), rec); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *SuspensionRepository) List(_ context.Context) ([]suspension.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]schema.SuspensionDocument, 0, len(r.orders))
	for _, id := range r.orders {
		docs = append(docs, r.items[id])
	}
	return schema.Suspensions(docs)
}

func (r *SuspensionRepository) ListByTeams(_ context.Context, teams ...string) ([]suspension.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]schema.SuspensionDocument, 0)
	for _, id := range r.orders {
		doc := r.items[id]
		if slices.Contains(teams, doc.Team) {
			docs = append(docs, doc)
		}
	}
	return schema.Suspensions(docs)
}

func (r *SuspensionRepository) GetByID(_ context.Context, id string) (suspension.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.items[id]
	if !ok {
		return suspension.Record{}, false, nil
	}
	rec, err := doc.Record()
	if err != nil {
		return suspension.Record{}, false, err
	}
	return rec, true, nil
}

func (r *SuspensionRepository) Find(_ context.Context, team, player string) (suspension.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.findLocked(team, player)
	if !ok {
		return suspension.Record{}, false, nil
	}
	rec, err := r.items[id].Record()
	if err != nil {
		return suspension.Record{}, false, err
	}
	return rec, true, nil
}

func (r *SuspensionRepository) Create(_ context.Context, record suspension.Record) (suspension.Record, error) {
	doc, err := schema.FromSuspension(record)
	if err != nil {
		return suspension.Record{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[doc.ID]; exists {
		return suspension.Record{}, docstore.OperationFailed(nil, "create suspension %s: key already exists", doc.ID)
	}
	if _, exists := r.findLocked(doc.Team, doc.Player); exists {
		return suspension.Record{}, docstore.OperationFailed(nil, "create suspension %s/%s: player already has a record", doc.Team, doc.Player)
	}

	r.items[doc.ID] = doc
	r.orders = append(r.orders, doc.ID)
	return record, nil
}

func (r *SuspensionRepository) Update(_ context.Context, record suspension.Record) error {
	doc, err := schema.FromSuspension(record)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[doc.ID]; !exists {
		return docstore.NotFound("suspension %s", doc.ID)
	}
	r.items[doc.ID] = doc
	return nil
}

func (r *SuspensionRepository) BatchUpdate(_ context.Context, records []suspension.Record) error {
	docs := make([]schema.SuspensionDocument, 0, len(records))
	for _, rec := range records {
		doc, err := schema.FromSuspension(rec)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, doc := range docs {
		if _, exists := r.items[doc.ID]; !exists {
			return docstore.NotFound("suspension %s", doc.ID)
		}
	}
	for _, doc := range docs {
		r.items[doc.ID] = doc
	}
	return nil
}

func (r *SuspensionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return docstore.NotFound("suspension %s", id)
	}
	delete(r.items, id)
	r.orders = slices.DeleteFunc(r.orders, func(v string) bool { return v == id })
	return nil
}

func (r *SuspensionRepository) findLocked(team, player string) (string, bool) {
	for _, id := range r.orders {
		doc := r.items[id]
		if doc.Team == team && doc.Player == player {
			return id, true
		}
	}
	return "", false
}

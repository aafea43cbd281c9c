package usecase

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/stretchr/testify/mock"
)

const (
	teamCity   = "MANCHESTER CITY"
	teamMadrid = "REAL MADRID"
	teamBayern = "BAYER MUNICH"
)

func testLeague() League {
	return NewLeague([]string{teamCity, teamMadrid, teamBayern})
}

func sameCtx(ctx context.Context) interface{} {
	return mock.MatchedBy(func(v context.Context) bool { return v == ctx })
}

func intPtr(v int) *int {
	return &v
}

type recordingPublisher struct {
	mu      sync.Mutex
	changes []docstore.Change
}

func (p *recordingPublisher) Publish(change docstore.Change) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, change)
}

func (p *recordingPublisher) Changes() []docstore.Change {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]docstore.Change(nil), p.changes...)
}

package changefeed

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/platform/logging"
)

const defaultBuffer = 16

// Broker fans committed changes out to subscribers. Publish never blocks on a
// slow subscriber: when its buffer is full the oldest pending change is
// dropped in favour of the new one.
type Broker struct {
	mu     sync.RWMutex
	subs   map[uint64]*subscription
	nextID uint64
	closed bool
	done   chan struct{}

	pool   *ants.Pool
	buffer int
	logger *logging.Logger
}

type subscription struct {
	mu          sync.Mutex
	ch          chan docstore.Change
	collections map[docstore.Collection]struct{}
	closed      bool
}

func NewBroker(workers int, logger *logging.Logger) (*Broker, error) {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}

	b := &Broker{
		subs:   make(map[uint64]*subscription),
		done:   make(chan struct{}),
		buffer: defaultBuffer,
		logger: logger,
	}
	pool, err := ants.NewPool(workers, ants.WithPanicHandler(func(rec any) {
		b.logger.Error("change delivery panicked", "panic", rec)
	}))
	if err != nil {
		return nil, fmt.Errorf("create change feed pool: %w", err)
	}
	b.pool = pool

	return b, nil
}

// Subscribe returns a channel receiving changes of the given collections, or
// of every collection when none is given. The channel is closed once ctx is
// done or the broker is closed.
func (b *Broker) Subscribe(ctx context.Context, collections ...docstore.Collection) <-chan docstore.Change {
	sub := &subscription{
		ch:          make(chan docstore.Change, b.buffer),
		collections: make(map[docstore.Collection]struct{}, len(collections)),
	}
	for _, c := range collections {
		sub.collections[c] = struct{}{}
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		sub.close()
		return sub.ch
	}
	b.nextID++
	id := b.nextID
	b.subs[id] = sub
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-b.done:
		}
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
		sub.close()
	}()

	return sub.ch
}

func (b *Broker) Publish(change docstore.Change) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	targets := make([]*subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.wants(change.Collection) {
			targets = append(targets, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range targets {
		sub := sub
		if err := b.pool.Submit(func() { sub.deliver(change) }); err != nil {
			b.logger.Warn("change delivery rejected", "collection", change.Collection, "error", err)
		}
	}
}

// Subscribers reports the number of live subscriptions.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Broker) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.done)
	subs := b.subs
	b.subs = make(map[uint64]*subscription)
	b.mu.Unlock()

	b.pool.Release()
	for _, sub := range subs {
		sub.close()
	}
}

func (s *subscription) wants(c docstore.Collection) bool {
	if len(s.collections) == 0 {
		return true
	}
	_, ok := s.collections[c]
	return ok
}

func (s *subscription) deliver(change docstore.Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	for {
		select {
		case s.ch <- change:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

func (s *subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

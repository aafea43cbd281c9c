package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"
	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/platform/logging"
)

// NotifyChannel is the postgres channel the collection triggers notify on.
const NotifyChannel = "league_changes"

const (
	listenerMinReconnect = 2 * time.Second
	listenerMaxReconnect = time.Minute
	listenerPingInterval = 90 * time.Second
)

// Listener relays postgres change notifications onto a local publisher, so
// writes made by other instances reach this instance's subscribers.
type Listener struct {
	dsn       string
	publisher docstore.Publisher
	onChange  func(docstore.Change)
	logger    *logging.Logger
}

func NewListener(dsn string, publisher docstore.Publisher, logger *logging.Logger) *Listener {
	if logger == nil {
		logger = logging.Default()
	}
	return &Listener{dsn: dsn, publisher: publisher, logger: logger}
}

// OnChange registers a hook that runs before each relayed change is published.
func (l *Listener) OnChange(fn func(docstore.Change)) *Listener {
	l.onChange = fn
	return l
}

// Run blocks until ctx is done.
func (l *Listener) Run(ctx context.Context) error {
	listener := pq.NewListener(l.dsn, listenerMinReconnect, listenerMaxReconnect, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			l.logger.Warn("change listener event", "event", int(ev), "error", err)
		}
	})
	defer listener.Close()

	if err := listener.Listen(NotifyChannel); err != nil {
		return classify(err, "listen %s", NotifyChannel)
	}
	l.logger.Info("change listener started", "channel", NotifyChannel)

	ticker := time.NewTicker(listenerPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-listener.Notify:
			// nil after a reconnect; notifications may have been missed.
			if n == nil {
				l.relay(docstore.Change{Collection: docstore.CollectionSuspensions, Op: docstore.OpBatch, At: time.Now().UTC()})
				l.relay(docstore.Change{Collection: docstore.CollectionMatches, Op: docstore.OpBatch, At: time.Now().UTC()})
				continue
			}
			change, err := decodeNotification(n.Extra)
			if err != nil {
				l.logger.Warn("drop malformed change notification", "payload", n.Extra, "error", err)
				continue
			}
			l.relay(change)
		case <-ticker.C:
			if err := listener.Ping(); err != nil {
				l.logger.Warn("change listener ping failed", "error", err)
			}
		}
	}
}

func (l *Listener) relay(change docstore.Change) {
	if l.onChange != nil {
		l.onChange(change)
	}
	l.publisher.Publish(change)
}

func decodeNotification(payload string) (docstore.Change, error) {
	var change docstore.Change
	if err := sonic.UnmarshalString(payload, &change); err != nil {
		return docstore.Change{}, fmt.Errorf("decode notification: %w", err)
	}

	switch change.Collection {
	case docstore.CollectionSuspensions, docstore.CollectionMatches, docstore.CollectionPlayers:
	default:
		return docstore.Change{}, fmt.Errorf("unknown collection %q", change.Collection)
	}
	if change.Op == "insert" {
		change.Op = docstore.OpCreate
	}
	if change.At.IsZero() {
		change.At = time.Now().UTC()
	}
	return change, nil
}

package boltstore

import (
	"context"
	"slices"

	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/schema"
	bolt "go.etcd.io/bbolt"
)

type SuspensionRepository struct {
	db *bolt.DB
}

func (r *SuspensionRepository) List(_ context.Context) ([]suspension.Record, error) {
	return r.scan(nil)
}

func (r *SuspensionRepository) ListByTeams(_ context.Context, teams ...string) ([]suspension.Record, error) {
	return r.scan(func(d schema.SuspensionDocument) bool { return slices.Contains(teams, d.Team) })
}

func (r *SuspensionRepository) GetByID(_ context.Context, id string) (suspension.Record, bool, error) {
	var (
		doc   schema.SuspensionDocument
		found bool
	)
	err := r.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketSuspensions)
		if err != nil {
			return err
		}
		item, ok, err := get[schema.SuspensionDocument](b, id)
		doc, found = item.Doc, ok
		return err
	})
	if err != nil {
		return suspension.Record{}, false, wrap(err, "get suspension %s", id)
	}
	if !found {
		return suspension.Record{}, false, nil
	}

	rec, err := doc.Record()
	if err != nil {
		return suspension.Record{}, false, err
	}
	return rec, true, nil
}

func (r *SuspensionRepository) Find(_ context.Context, team, player string) (suspension.Record, bool, error) {
	items, err := r.scan(func(d schema.SuspensionDocument) bool { return d.Team == team && d.Player == player })
	if err != nil {
		return suspension.Record{}, false, err
	}
	if len(items) == 0 {
		return suspension.Record{}, false, nil
	}
	return items[0], true, nil
}

func (r *SuspensionRepository) Create(_ context.Context, record suspension.Record) (suspension.Record, error) {
	doc, err := schema.FromSuspension(record)
	if err != nil {
		return suspension.Record{}, err
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketSuspensions)
		if err != nil {
			return err
		}
		taken, err := scan(b, func(d schema.SuspensionDocument) bool { return d.Team == doc.Team && d.Player == doc.Player })
		if err != nil {
			return err
		}
		if len(taken) > 0 {
			return docstore.OperationFailed(nil, "player %s/%s already has a record", doc.Team, doc.Player)
		}
		return insert(b, doc.ID, doc)
	})
	if err != nil {
		return suspension.Record{}, wrap(err, "create suspension %s", doc.ID)
	}

	return doc.Record()
}

func (r *SuspensionRepository) Update(_ context.Context, record suspension.Record) error {
	doc, err := schema.FromSuspension(record)
	if err != nil {
		return err
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketSuspensions)
		if err != nil {
			return err
		}
		return replace(b, doc.ID, doc)
	})
	return wrap(err, "update suspension %s", doc.ID)
}

// BatchUpdate runs in one bolt write transaction, so a failure leaves every
// record untouched.
func (r *SuspensionRepository) BatchUpdate(_ context.Context, records []suspension.Record) error {
	docs := make([]schema.SuspensionDocument, 0, len(records))
	for _, rec := range records {
		doc, err := schema.FromSuspension(rec)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil
	}

	err := r.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketSuspensions)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if err := replace(b, doc.ID, doc); err != nil {
				return err
			}
		}
		return nil
	})
	return wrap(err, "batch update suspensions")
}

func (r *SuspensionRepository) Delete(_ context.Context, id string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketSuspensions)
		if err != nil {
			return err
		}
		return remove(b, id)
	})
	return wrap(err, "delete suspension %s", id)
}

func (r *SuspensionRepository) scan(keep func(schema.SuspensionDocument) bool) ([]suspension.Record, error) {
	var docs []schema.SuspensionDocument
	err := r.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketSuspensions)
		if err != nil {
			return err
		}
		docs, err = scan(b, keep)
		return err
	})
	if err != nil {
		return nil, wrap(err, "scan suspensions")
	}
	return schema.Suspensions(docs)
}

type MatchRepository struct {
	db *bolt.DB
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	var docs []schema.MatchDocument
	err := r.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketMatches)
		if err != nil {
			return err
		}
		docs, err = scan[schema.MatchDocument](b, nil)
		return err
	})
	if err != nil {
		return nil, wrap(err, "list matches")
	}
	return schema.Matches(docs)
}

func (r *MatchRepository) Count(_ context.Context) (int, error) {
	var n int
	err := r.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketMatches)
		if err != nil {
			return err
		}
		n = b.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, wrap(err, "count matches")
	}
	return n, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	var (
		doc   schema.MatchDocument
		found bool
	)
	err := r.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketMatches)
		if err != nil {
			return err
		}
		item, ok, err := get[schema.MatchDocument](b, id)
		doc, found = item.Doc, ok
		return err
	})
	if err != nil {
		return match.Match{}, false, wrap(err, "get match %s", id)
	}
	if !found {
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

	err = r.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketMatches)
		if err != nil {
			return err
		}
		return insert(b, doc.ID, doc)
	})
	if err != nil {
		return match.Match{}, wrap(err, "create match %s", doc.ID)
	}

	return doc.Match()
}

func (r *MatchRepository) Delete(_ context.Context, id string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketMatches)
		if err != nil {
			return err
		}
		return remove(b, id)
	})
	return wrap(err, "delete match %s", id)
}

type RosterRepository struct {
	db *bolt.DB
}

func (r *RosterRepository) List(_ context.Context) ([]roster.Player, error) {
	return r.scan(nil)
}

func (r *RosterRepository) ListByTeam(_ context.Context, team string) ([]roster.Player, error) {
	return r.scan(func(d schema.PlayerDocument) bool { return d.Team == team })
}

func (r *RosterRepository) Exists(_ context.Context, team, name string) (bool, error) {
	items, err := r.scan(func(d schema.PlayerDocument) bool { return d.Team == team && d.Name == name })
	if err != nil {
		return false, err
	}
	return len(items) > 0, nil
}

func (r *RosterRepository) Create(_ context.Context, item roster.Player) (roster.Player, error) {
	doc, err := schema.FromPlayer(item)
	if err != nil {
		return roster.Player{}, err
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketPlayers)
		if err != nil {
			return err
		}
		taken, err := scan(b, func(d schema.PlayerDocument) bool { return d.Team == doc.Team && d.Name == doc.Name })
		if err != nil {
			return err
		}
		if len(taken) > 0 {
			return docstore.OperationFailed(nil, "player %s/%s already exists", doc.Team, doc.Name)
		}
		return insert(b, doc.ID, doc)
	})
	if err != nil {
		return roster.Player{}, wrap(err, "create player %s", doc.ID)
	}

	return doc.Player()
}

func (r *RosterRepository) Delete(_ context.Context, id string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketPlayers)
		if err != nil {
			return err
		}
		return remove(b, id)
	})
	return wrap(err, "delete player %s", id)
}

func (r *RosterRepository) scan(keep func(schema.PlayerDocument) bool) ([]roster.Player, error) {
	var docs []schema.PlayerDocument
	err := r.db.View(func(tx *bolt.Tx) error {
		b, err := bucket(tx, bucketPlayers)
		if err != nil {
			return err
		}
		docs, err = scan(b, keep)
		return err
	})
	if err != nil {
		return nil, wrap(err, "scan players")
	}
	return schema.Players(docs)
}

package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/schema"
	qb "github.com/riskibarqy/league-ledger/internal/platform/querybuilder"
)

var playerColumns = []string{"id", "team", "name", "added_at"}

type RosterRepository struct {
	db *sqlx.DB
	ph qb.Placeholder
}

func (r *RosterRepository) List(ctx context.Context) ([]roster.Player, error) {
	query, args, err := qb.Select(playerColumns...).
		PlaceholderFormat(r.ph).
		From(playersTable).
		OrderBy("team", "seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	return r.selectPlayers(ctx, query, args)
}

func (r *RosterRepository) ListByTeam(ctx context.Context, team string) ([]roster.Player, error) {
	query, args, err := qb.Select(playerColumns...).
		PlaceholderFormat(r.ph).
		From(playersTable).
		Where(qb.Eq("team", team)).
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}

	return r.selectPlayers(ctx, query, args)
}

func (r *RosterRepository) Exists(ctx context.Context, team, name string) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").
		PlaceholderFormat(r.ph).
		From(playersTable).
		Where(qb.Eq("team", team), qb.Eq("name", name)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build player exists query: %w", err)
	}

	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return false, classify(err, "count %s", docstore.CollectionPlayers)
	}
	return n > 0, nil
}

func (r *RosterRepository) Create(ctx context.Context, item roster.Player) (roster.Player, error) {
	doc, err := schema.FromPlayer(item)
	if err != nil {
		return roster.Player{}, err
	}

	query, args, err := qb.InsertModel(r.ph, playersTable, doc, "")
	if err != nil {
		return roster.Player{}, fmt.Errorf("build insert player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return roster.Player{}, classify(err, "insert player %s", doc.ID)
	}

	return doc.Player()
}

func (r *RosterRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom(playersTable).
		PlaceholderFormat(r.ph).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}

	return execOne(ctx, r.db, query, args, "player "+id)
}

func (r *RosterRepository) selectPlayers(ctx context.Context, query string, args []any) ([]roster.Player, error) {
	var rows []schema.PlayerDocument
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classify(err, "select %s", docstore.CollectionPlayers)
	}
	return schema.Players(rows)
}

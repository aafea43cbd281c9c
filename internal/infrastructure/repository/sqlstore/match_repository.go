package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/schema"
	qb "github.com/riskibarqy/league-ledger/internal/platform/querybuilder"
)

var matchColumns = []string{"id", "team1", "team2", "score1", "score2", "match_date", "game_number", "saved_at"}

type MatchRepository struct {
	db *sqlx.DB
	ph qb.Placeholder
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).
		PlaceholderFormat(r.ph).
		From(matchesTable).
		OrderBy("saved_at", "game_number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []schema.MatchDocument
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classify(err, "select %s", docstore.CollectionMatches)
	}
	return schema.Matches(rows)
}

func (r *MatchRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(1)").
		PlaceholderFormat(r.ph).
		From(matchesTable).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count matches query: %w", err)
	}

	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, classify(err, "count %s", docstore.CollectionMatches)
	}
	return n, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).
		PlaceholderFormat(r.ph).
		From(matchesTable).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row schema.MatchDocument
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, classify(err, "get %s", docstore.CollectionMatches)
	}

	item, err := row.Match()
	if err != nil {
		return match.Match{}, false, err
	}
	return item, true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	doc, err := schema.FromMatch(item)
	if err != nil {
		return match.Match{}, err
	}

	query, args, err := qb.InsertModel(r.ph, matchesTable, doc, "")
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return match.Match{}, classify(err, "insert match %s", doc.ID)
	}

	return doc.Match()
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom(matchesTable).
		PlaceholderFormat(r.ph).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}

	return execOne(ctx, r.db, query, args, "match "+id)
}

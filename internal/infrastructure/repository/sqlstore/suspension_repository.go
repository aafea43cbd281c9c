package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/schema"
	qb "github.com/riskibarqy/league-ledger/internal/platform/querybuilder"
)

var suspensionColumns = []string{"id", "team", "player", "active_yellows", "yellow_ban_left", "red_ban_left"}

type SuspensionRepository struct {
	db *sqlx.DB
	ph qb.Placeholder
}

func (r *SuspensionRepository) List(ctx context.Context) ([]suspension.Record, error) {
	query, args, err := qb.Select(suspensionColumns...).
		PlaceholderFormat(r.ph).
		From(suspensionsTable).
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select suspensions query: %w", err)
	}

	return r.selectRecords(ctx, query, args)
}

func (r *SuspensionRepository) ListByTeams(ctx context.Context, teams ...string) ([]suspension.Record, error) {
	query, args, err := qb.Select(suspensionColumns...).
		PlaceholderFormat(r.ph).
		From(suspensionsTable).
		Where(qb.InStrings("team", teams)).
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select suspensions by teams query: %w", err)
	}

	return r.selectRecords(ctx, query, args)
}

func (r *SuspensionRepository) GetByID(ctx context.Context, id string) (suspension.Record, bool, error) {
	query, args, err := qb.Select(suspensionColumns...).
		PlaceholderFormat(r.ph).
		From(suspensionsTable).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return suspension.Record{}, false, fmt.Errorf("build get suspension query: %w", err)
	}

	return r.getRecord(ctx, query, args)
}

func (r *SuspensionRepository) Find(ctx context.Context, team, player string) (suspension.Record, bool, error) {
	query, args, err := qb.Select(suspensionColumns...).
		PlaceholderFormat(r.ph).
		From(suspensionsTable).
		Where(qb.Eq("team", team), qb.Eq("player", player)).
		ToSQL()
	if err != nil {
		return suspension.Record{}, false, fmt.Errorf("build find suspension query: %w", err)
	}

	return r.getRecord(ctx, query, args)
}

func (r *SuspensionRepository) Create(ctx context.Context, record suspension.Record) (suspension.Record, error) {
	doc, err := schema.FromSuspension(record)
	if err != nil {
		return suspension.Record{}, err
	}

	query, args, err := qb.InsertModel(r.ph, suspensionsTable, doc, "")
	if err != nil {
		return suspension.Record{}, fmt.Errorf("build insert suspension query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return suspension.Record{}, classify(err, "insert suspension %s", doc.ID)
	}

	return doc.Record()
}

func (r *SuspensionRepository) Update(ctx context.Context, record suspension.Record) error {
	doc, err := schema.FromSuspension(record)
	if err != nil {
		return err
	}
	return r.update(ctx, r.db, doc)
}

// BatchUpdate writes every record in one transaction. A missing key aborts
// the whole batch.
func (r *SuspensionRepository) BatchUpdate(ctx context.Context, records []suspension.Record) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]schema.SuspensionDocument, 0, len(records))
	for _, rec := range records {
		doc, err := schema.FromSuspension(rec)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return classify(err, "begin tx for suspension batch")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, doc := range docs {
		if err := r.update(ctx, tx, doc); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return classify(err, "commit suspension batch")
	}
	return nil
}

func (r *SuspensionRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom(suspensionsTable).
		PlaceholderFormat(r.ph).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete suspension query: %w", err)
	}

	return execOne(ctx, r.db, query, args, "suspension "+id)
}

func (r *SuspensionRepository) update(ctx context.Context, exec sqlx.ExecerContext, doc schema.SuspensionDocument) error {
	query, args, err := qb.Update(suspensionsTable).
		PlaceholderFormat(r.ph).
		Set("active_yellows", doc.ActiveYellows).
		Set("yellow_ban_left", doc.YellowBanLeft).
		Set("red_ban_left", doc.RedBanLeft).
		SetExpr("updated_at", "CURRENT_TIMESTAMP").
		Where(qb.Eq("id", doc.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update suspension query: %w", err)
	}

	return execOne(ctx, exec, query, args, "suspension "+doc.ID)
}

func (r *SuspensionRepository) selectRecords(ctx context.Context, query string, args []any) ([]suspension.Record, error) {
	var rows []schema.SuspensionDocument
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, classify(err, "select %s", docstore.CollectionSuspensions)
	}
	return schema.Suspensions(rows)
}

func (r *SuspensionRepository) getRecord(ctx context.Context, query string, args []any) (suspension.Record, bool, error) {
	var row schema.SuspensionDocument
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return suspension.Record{}, false, nil
		}
		return suspension.Record{}, false, classify(err, "get %s", docstore.CollectionSuspensions)
	}

	rec, err := row.Record()
	if err != nil {
		return suspension.Record{}, false, err
	}
	return rec, true, nil
}

// execOne runs a statement that must touch exactly one row.
func execOne(ctx context.Context, exec sqlx.ExecerContext, query string, args []any, what string) error {
	res, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return classify(err, "write %s", what)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify(err, "rows affected for %s", what)
	}
	if n == 0 {
		return docstore.NotFound("%s", what)
	}
	return nil
}

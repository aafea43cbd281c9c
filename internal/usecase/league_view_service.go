package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/leagueview"
	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/domain/standing"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	"github.com/riskibarqy/league-ledger/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// ChangeFeed delivers store change notifications.
type ChangeFeed interface {
	Subscribe(ctx context.Context, collections ...docstore.Collection) <-chan docstore.Change
}

type LeagueViewService struct {
	matchRepo      match.Repository
	suspensionRepo suspension.Repository
	feed           ChangeFeed
	league         League
	logger         *logging.Logger
}

func NewLeagueViewService(
	matchRepo match.Repository,
	suspensionRepo suspension.Repository,
	feed ChangeFeed,
	league League,
	logger *logging.Logger,
) *LeagueViewService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LeagueViewService{
		matchRepo:      matchRepo,
		suspensionRepo: suspensionRepo,
		feed:           feed,
		league:         league,
		logger:         logger,
	}
}

func (s *LeagueViewService) Teams() []string {
	return append([]string(nil), s.league.Teams...)
}

// Snapshot loads the current match and suspension sets and derives the view.
func (s *LeagueViewService) Snapshot(ctx context.Context) (leagueview.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueViewService.Snapshot")
	defer span.End()

	var (
		matches []match.Match
		records []suspension.Record
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		matches = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.suspensionRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list suspensions: %w", err)
		}
		records = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return leagueview.View{}, err
	}

	return leagueview.Build(s.league.Teams, matches, records), nil
}

// Subscribe emits the current view and then a fresh one after every change
// to matches or suspensions. The channel is closed when ctx is done.
func (s *LeagueViewService) Subscribe(ctx context.Context) (<-chan leagueview.View, error) {
	if s.feed == nil {
		return nil, fmt.Errorf("league view: change feed is not configured")
	}

	// Subscribe before the first load so a change racing with it still
	// produces a refresh.
	changes := s.feed.Subscribe(ctx, docstore.CollectionMatches, docstore.CollectionSuspensions)

	initial, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan leagueview.View, 1)
	out <- initial

	go func() {
		defer close(out)
		for range changes {
			view, err := s.Snapshot(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.logger.WarnContext(ctx, "refresh league view failed", "error", err)
				continue
			}

			select {
			case out <- view:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (s *LeagueViewService) Standings(ctx context.Context) ([]standing.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueViewService.Standings")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return standing.Compute(s.league.Teams, matches), nil
}

func (s *LeagueViewService) Encounters(ctx context.Context) ([]standing.Encounter, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueViewService.Encounters")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return standing.Encounters(matches), nil
}

// History lists matches newest first.
func (s *LeagueViewService) History(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueViewService.History")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(matches))
	for i := len(matches) - 1; i >= 0; i-- {
		out = append(out, matches[i])
	}
	return out, nil
}

// Cards lists every suspension record with its status.
func (s *LeagueViewService) Cards(ctx context.Context) ([]leagueview.CardRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueViewService.Cards")
	defer span.End()

	records, err := s.suspensionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suspensions: %w", err)
	}

	return leagueview.Build(nil, nil, records).Cards, nil
}

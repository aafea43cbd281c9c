package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	idgen "github.com/riskibarqy/league-ledger/internal/platform/id"
	"github.com/riskibarqy/league-ledger/internal/platform/logging"
)

type SaveMatchInput struct {
	Team1  string
	Team2  string
	Score1 *int
	Score2 *int
	Date   string
}

// SavedMatch is the result of recording a match. Match carries the two teams
// the follow-up card entry must use.
type SavedMatch struct {
	Match   match.Match
	Settled []suspension.Record
}

// MatchSettler serves pending bans after a match. DisciplineService
// implements it.
type MatchSettler interface {
	SettleMatch(ctx context.Context, team1, team2 string) ([]suspension.Record, error)
}

type MatchService struct {
	matchRepo match.Repository
	settler   MatchSettler
	league    League
	idGen     idgen.Generator
	publisher docstore.Publisher
	logger    *logging.Logger
	now       func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	settler MatchSettler,
	league League,
	idGen idgen.Generator,
	publisher docstore.Publisher,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	if publisher == nil {
		publisher = docstore.NopPublisher{}
	}

	return &MatchService{
		matchRepo: matchRepo,
		settler:   settler,
		league:    league,
		idGen:     idGen,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// SaveMatch stores a new match and settles pending bans of both teams. When
// settlement fails the match is removed again so the action can be retried
// from scratch.
func (s *MatchService) SaveMatch(ctx context.Context, input SaveMatchInput) (SavedMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SaveMatch")
	defer span.End()

	input.Team1 = strings.TrimSpace(input.Team1)
	input.Team2 = strings.TrimSpace(input.Team2)
	input.Date = strings.TrimSpace(input.Date)
	span.SetAttributes(fixtureAttrs(input.Team1, input.Team2)...)

	if err := s.league.validatePair(input.Team1, input.Team2); err != nil {
		return SavedMatch{}, err
	}
	if input.Score1 == nil || input.Score2 == nil {
		return SavedMatch{}, fmt.Errorf("%w: both scores are required", ErrInvalidInput)
	}
	if *input.Score1 < 0 || *input.Score2 < 0 {
		return SavedMatch{}, fmt.Errorf("%w: scores must be >= 0", ErrInvalidInput)
	}
	if input.Date == "" {
		return SavedMatch{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(match.DateLayout, input.Date); err != nil {
		return SavedMatch{}, fmt.Errorf("%w: date must use YYYY-MM-DD", ErrInvalidInput)
	}

	count, err := s.matchRepo.Count(ctx)
	if err != nil {
		return SavedMatch{}, fmt.Errorf("count matches: %w", err)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return SavedMatch{}, fmt.Errorf("generate match id: %w", err)
	}

	created, err := s.matchRepo.Create(ctx, match.Match{
		ID:         id,
		Team1:      input.Team1,
		Team2:      input.Team2,
		Score1:     *input.Score1,
		Score2:     *input.Score2,
		Date:       input.Date,
		GameNumber: count + 1,
		SavedAt:    s.now().UTC(),
	})
	if err != nil {
		return SavedMatch{}, fmt.Errorf("create match: %w", err)
	}
	span.SetAttributes(attrGameNumber.Int(created.GameNumber))
	s.publish(docstore.Change{Collection: docstore.CollectionMatches, Op: docstore.OpCreate, Key: created.ID})

	settled, err := s.settler.SettleMatch(ctx, created.Team1, created.Team2)
	if err != nil {
		if delErr := s.matchRepo.Delete(ctx, created.ID); delErr != nil {
			s.logger.ErrorContext(ctx, "rollback of unsettled match failed",
				"match_id", created.ID,
				"error", delErr,
			)
		} else {
			s.publish(docstore.Change{Collection: docstore.CollectionMatches, Op: docstore.OpDelete, Key: created.ID})
		}
		return SavedMatch{}, fmt.Errorf("settle match: %w", err)
	}

	s.logger.InfoContext(ctx, "match saved",
		"match_id", created.ID,
		"game_number", created.GameNumber,
		"team1", created.Team1,
		"team2", created.Team2,
		"settled", len(settled),
	)

	return SavedMatch{Match: created, Settled: settled}, nil
}

// ListMatches returns the match history, newest first.
func (s *MatchService) ListMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	items = slices.Clone(items)
	slices.Reverse(items)
	return items, nil
}

// DeleteMatch removes a match document. Bans already served for it stay served.
func (s *MatchService) DeleteMatch(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete match: %w", storeError(err))
	}

	s.publish(docstore.Change{Collection: docstore.CollectionMatches, Op: docstore.OpDelete, Key: id})
	return nil
}

func (s *MatchService) publish(change docstore.Change) {
	change.At = s.now().UTC()
	s.publisher.Publish(change)
}

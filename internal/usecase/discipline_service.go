package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	idgen "github.com/riskibarqy/league-ledger/internal/platform/id"
	"github.com/riskibarqy/league-ledger/internal/platform/logging"
)

// RecordCardInput carries one card event. MatchTeam1 and MatchTeam2 are the
// teams of the match the card was shown in, as returned by SaveMatch.
type RecordCardInput struct {
	MatchTeam1 string
	MatchTeam2 string
	Team       string
	Player     string
	Card       string
}

// EditSuspensionInput is a manual correction; nil fields are left unchanged.
type EditSuspensionInput struct {
	ActiveYellows *int
	YellowBanLeft *int
	RedBanLeft    *int
}

const maxEditableYellows = 3

type DisciplineService struct {
	suspensionRepo suspension.Repository
	rosterRepo     roster.Repository
	league         League
	idGen          idgen.Generator
	publisher      docstore.Publisher
	logger         *logging.Logger
	now            func() time.Time
}

func NewDisciplineService(
	suspensionRepo suspension.Repository,
	rosterRepo roster.Repository,
	league League,
	idGen idgen.Generator,
	publisher docstore.Publisher,
	logger *logging.Logger,
) *DisciplineService {
	if logger == nil {
		logger = logging.Default()
	}
	if publisher == nil {
		publisher = docstore.NopPublisher{}
	}

	return &DisciplineService{
		suspensionRepo: suspensionRepo,
		rosterRepo:     rosterRepo,
		league:         league,
		idGen:          idGen,
		publisher:      publisher,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *DisciplineService) RecordCard(ctx context.Context, input RecordCardInput) (suspension.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.RecordCard")
	defer span.End()

	input.MatchTeam1 = strings.TrimSpace(input.MatchTeam1)
	input.MatchTeam2 = strings.TrimSpace(input.MatchTeam2)
	input.Team = strings.TrimSpace(input.Team)
	input.Player = strings.TrimSpace(input.Player)

	if err := s.league.validatePair(input.MatchTeam1, input.MatchTeam2); err != nil {
		return suspension.Record{}, err
	}
	if input.Team == "" {
		return suspension.Record{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	if input.Player == "" {
		return suspension.Record{}, fmt.Errorf("%w: player is required", ErrInvalidInput)
	}
	if input.Team != input.MatchTeam1 && input.Team != input.MatchTeam2 {
		return suspension.Record{}, fmt.Errorf("%w: team %q did not play in %s vs %s", ErrInvalidInput, input.Team, input.MatchTeam1, input.MatchTeam2)
	}
	card, err := suspension.ParseCardType(input.Card)
	if err != nil {
		return suspension.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	onRoster, err := s.rosterRepo.Exists(ctx, input.Team, input.Player)
	if err != nil {
		return suspension.Record{}, fmt.Errorf("check roster: %w", err)
	}
	if !onRoster {
		return suspension.Record{}, fmt.Errorf("%w: player %q is not on the %s roster", ErrInvalidInput, input.Player, input.Team)
	}

	current, exists, err := s.suspensionRepo.Find(ctx, input.Team, input.Player)
	if err != nil {
		return suspension.Record{}, fmt.Errorf("find suspension: %w", err)
	}

	if !exists {
		current = suspension.NewRecord(input.Team, input.Player)
		current.ID, err = s.idGen.NewID()
		if err != nil {
			return suspension.Record{}, fmt.Errorf("generate suspension id: %w", err)
		}
	}

	next := suspension.ApplyCard(current, card)
	op := docstore.OpUpdate
	if exists {
		if err := s.suspensionRepo.Update(ctx, next); err != nil {
			return suspension.Record{}, fmt.Errorf("update suspension: %w", storeError(err))
		}
	} else {
		op = docstore.OpCreate
		if next, err = s.suspensionRepo.Create(ctx, next); err != nil {
			return suspension.Record{}, fmt.Errorf("create suspension: %w", err)
		}
	}

	s.publish(docstore.Change{Collection: docstore.CollectionSuspensions, Op: op, Key: next.ID})
	s.logger.InfoContext(ctx, "card recorded",
		"team", next.Team,
		"player", next.Player,
		"card", card,
		"active_yellows", next.ActiveYellows,
		"yellow_ban_left", next.YellowBanLeft,
		"red_ban_left", next.RedBanLeft,
	)

	return next, nil
}

// SettleMatch serves one match of every pending ban held by players of team1
// and team2. All changed records are written in one batch; when nothing
// changed no write is issued.
func (s *DisciplineService) SettleMatch(ctx context.Context, team1, team2 string) ([]suspension.Record, error) {
	team1 = strings.TrimSpace(team1)
	team2 = strings.TrimSpace(team2)
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.SettleMatch", fixtureAttrs(team1, team2)...)
	defer span.End()

	if err := s.league.validatePair(team1, team2); err != nil {
		return nil, err
	}

	records, err := s.suspensionRepo.ListByTeams(ctx, team1, team2)
	if err != nil {
		return nil, fmt.Errorf("list suspensions by teams: %w", err)
	}

	updated := suspension.SettleMatch(records, team1, team2)
	span.SetAttributes(attrBansSettled.Int(len(updated)))
	if len(updated) == 0 {
		return updated, nil
	}

	if err := s.suspensionRepo.BatchUpdate(ctx, updated); err != nil {
		return nil, fmt.Errorf("batch update suspensions: %w", storeError(err))
	}

	s.publish(docstore.Change{Collection: docstore.CollectionSuspensions, Op: docstore.OpBatch})
	s.logger.InfoContext(ctx, "match settled", "team1", team1, "team2", team2, "updated", len(updated))

	return updated, nil
}

func (s *DisciplineService) CheckEligibility(ctx context.Context, teamA, teamB string) (suspension.Eligibility, error) {
	teamA = strings.TrimSpace(teamA)
	teamB = strings.TrimSpace(teamB)
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.CheckEligibility", fixtureAttrs(teamA, teamB)...)
	defer span.End()

	if err := s.league.validatePair(teamA, teamB); err != nil {
		return suspension.Eligibility{}, err
	}

	records, err := s.suspensionRepo.ListByTeams(ctx, teamA, teamB)
	if err != nil {
		return suspension.Eligibility{}, fmt.Errorf("list suspensions by teams: %w", err)
	}

	return suspension.CheckEligibility(records, teamA, teamB), nil
}

func (s *DisciplineService) ListSuspensions(ctx context.Context) ([]suspension.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.ListSuspensions")
	defer span.End()

	records, err := s.suspensionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suspensions: %w", err)
	}

	return records, nil
}

func (s *DisciplineService) EditSuspension(ctx context.Context, id string, input EditSuspensionInput) (suspension.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.EditSuspension")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return suspension.Record{}, fmt.Errorf("%w: suspension id is required", ErrInvalidInput)
	}
	if input.ActiveYellows == nil && input.YellowBanLeft == nil && input.RedBanLeft == nil {
		return suspension.Record{}, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if err := checkRange("activeYellows", input.ActiveYellows, maxEditableYellows); err != nil {
		return suspension.Record{}, err
	}
	if err := checkRange("yellowBanLeft", input.YellowBanLeft, suspension.YellowBanLength); err != nil {
		return suspension.Record{}, err
	}
	if err := checkRange("redBanLeft", input.RedBanLeft, suspension.RedBanLength); err != nil {
		return suspension.Record{}, err
	}

	record, exists, err := s.suspensionRepo.GetByID(ctx, id)
	if err != nil {
		return suspension.Record{}, fmt.Errorf("get suspension: %w", err)
	}
	if !exists {
		return suspension.Record{}, fmt.Errorf("%w: suspension=%s", ErrNotFound, id)
	}

	if input.ActiveYellows != nil {
		record.ActiveYellows = *input.ActiveYellows
	}
	if input.YellowBanLeft != nil {
		record.YellowBanLeft = *input.YellowBanLeft
	}
	if input.RedBanLeft != nil {
		record.RedBanLeft = *input.RedBanLeft
	}

	if err := s.suspensionRepo.Update(ctx, record); err != nil {
		return suspension.Record{}, fmt.Errorf("update suspension: %w", storeError(err))
	}

	s.publish(docstore.Change{Collection: docstore.CollectionSuspensions, Op: docstore.OpUpdate, Key: record.ID})
	s.logger.InfoContext(ctx, "suspension edited", "suspension_id", record.ID, "team", record.Team, "player", record.Player)

	return record, nil
}

func (s *DisciplineService) DeleteSuspension(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisciplineService.DeleteSuspension", attrSuspensionID.String(id))
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: suspension id is required", ErrInvalidInput)
	}

	if err := s.suspensionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete suspension: %w", storeError(err))
	}

	s.publish(docstore.Change{Collection: docstore.CollectionSuspensions, Op: docstore.OpDelete, Key: id})
	return nil
}

func (s *DisciplineService) publish(change docstore.Change) {
	change.At = s.now().UTC()
	s.publisher.Publish(change)
}

func checkRange(field string, v *int, max int) error {
	if v == nil {
		return nil
	}
	if *v < 0 || *v > max {
		return fmt.Errorf("%w: %s must be within [0,%d]", ErrInvalidInput, field, max)
	}
	return nil
}

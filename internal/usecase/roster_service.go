package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	idgen "github.com/riskibarqy/league-ledger/internal/platform/id"
	"github.com/riskibarqy/league-ledger/internal/platform/logging"
)

type AddPlayerInput struct {
	Team string
	Name string
}

type RosterService struct {
	rosterRepo roster.Repository
	league     League
	idGen      idgen.Generator
	publisher  docstore.Publisher
	logger     *logging.Logger
	now        func() time.Time
}

func NewRosterService(
	rosterRepo roster.Repository,
	league League,
	idGen idgen.Generator,
	publisher docstore.Publisher,
	logger *logging.Logger,
) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}
	if publisher == nil {
		publisher = docstore.NopPublisher{}
	}

	return &RosterService{
		rosterRepo: rosterRepo,
		league:     league,
		idGen:      idGen,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *RosterService) AddPlayer(ctx context.Context, input AddPlayerInput) (roster.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.AddPlayer")
	defer span.End()

	input.Team = strings.TrimSpace(input.Team)
	input.Name = strings.TrimSpace(input.Name)

	if err := s.league.validateTeam(input.Team); err != nil {
		return roster.Player{}, err
	}
	if input.Name == "" {
		return roster.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	exists, err := s.rosterRepo.Exists(ctx, input.Team, input.Name)
	if err != nil {
		return roster.Player{}, fmt.Errorf("check roster: %w", err)
	}
	if exists {
		return roster.Player{}, fmt.Errorf("%w: player %q already exists in %s", ErrInvalidInput, input.Name, input.Team)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return roster.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	item := roster.Player{
		ID:      id,
		Team:    input.Team,
		Name:    input.Name,
		AddedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return roster.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.rosterRepo.Create(ctx, item)
	if err != nil {
		return roster.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.publisher.Publish(docstore.Change{
		Collection: docstore.CollectionPlayers,
		Op:         docstore.OpCreate,
		Key:        created.ID,
		At:         s.now().UTC(),
	})

	return created, nil
}

// ListPlayers returns the roster of team, or every roster when team is empty.
func (s *RosterService) ListPlayers(ctx context.Context, team string) ([]roster.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListPlayers")
	defer span.End()

	team = strings.TrimSpace(team)
	if team == "" {
		items, err := s.rosterRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		return items, nil
	}

	if err := s.league.validateTeam(team); err != nil {
		return nil, err
	}

	items, err := s.rosterRepo.ListByTeam(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return items, nil
}

func (s *RosterService) DeletePlayer(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.DeletePlayer")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	if err := s.rosterRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete player: %w", storeError(err))
	}

	s.publisher.Publish(docstore.Change{
		Collection: docstore.CollectionPlayers,
		Op:         docstore.OpDelete,
		Key:        id,
		At:         s.now().UTC(),
	})
	return nil
}

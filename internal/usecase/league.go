package usecase

import (
	"fmt"
	"slices"
	"strings"
)

// League is the fixed set of teams the tracker accepts.
type League struct {
	Teams []string
}

func NewLeague(teams []string) League {
	out := make([]string, 0, len(teams))
	for _, team := range teams {
		team = strings.TrimSpace(team)
		if team == "" || slices.Contains(out, team) {
			continue
		}
		out = append(out, team)
	}
	return League{Teams: out}
}

func (l League) Has(team string) bool {
	return slices.Contains(l.Teams, team)
}

func (l League) validateTeam(team string) error {
	if team == "" {
		return fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	if !l.Has(team) {
		return fmt.Errorf("%w: unknown team %q", ErrInvalidInput, team)
	}
	return nil
}

// validatePair checks two selected teams: both known and not the same team.
func (l League) validatePair(team1, team2 string) error {
	if team1 == "" || team2 == "" {
		return fmt.Errorf("%w: both teams are required", ErrInvalidInput)
	}
	if team1 == team2 {
		return fmt.Errorf("%w: teams must be different", ErrInvalidInput)
	}
	if err := l.validateTeam(team1); err != nil {
		return err
	}
	return l.validateTeam(team2)
}

package suspension

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// YellowBanThreshold is the active yellow count that triggers a one-match ban.
	YellowBanThreshold = 3
	YellowBanLength    = 1
	RedBanLength       = 3
)

var ErrUnknownCardType = errors.New("unknown card type")

type CardType string

const (
	CardYellow CardType = "yellow"
	CardRed    CardType = "red"
)

func ParseCardType(v string) (CardType, error) {
	switch CardType(strings.ToLower(strings.TrimSpace(v))) {
	case CardYellow:
		return CardYellow, nil
	case CardRed:
		return CardRed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCardType, v)
	}
}

// Record is the disciplinary ledger entry of one player within one team.
type Record struct {
	ID            string
	Team          string
	Player        string
	ActiveYellows int
	YellowBanLeft int
	RedBanLeft    int
}

// NewRecord returns the zeroed record created on a lookup miss.
func NewRecord(team, player string) Record {
	return Record{
		Team:   strings.TrimSpace(team),
		Player: strings.TrimSpace(player),
	}
}

// Key identifies a record by its (team, player) pair.
type Key struct {
	Team   string
	Player string
}

func (r Record) Key() Key {
	return Key{Team: r.Team, Player: r.Player}
}

func (r Record) Suspended() bool {
	return r.RedBanLeft > 0 || r.YellowBanLeft > 0
}

// Validate enforces the stored shape. ActiveYellows has no upper bound:
// repeated yellows between two settlements keep counting.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Team) == "" {
		return fmt.Errorf("suspension team is required")
	}
	if strings.TrimSpace(r.Player) == "" {
		return fmt.Errorf("suspension player is required")
	}
	if r.ActiveYellows < 0 {
		return fmt.Errorf("active yellows must be >= 0, got %d", r.ActiveYellows)
	}
	if r.YellowBanLeft < 0 || r.YellowBanLeft > YellowBanLength {
		return fmt.Errorf("yellow ban left must be within [0,%d], got %d", YellowBanLength, r.YellowBanLeft)
	}
	if r.RedBanLeft < 0 || r.RedBanLeft > RedBanLength {
		return fmt.Errorf("red ban left must be within [0,%d], got %d", RedBanLength, r.RedBanLeft)
	}

	return nil
}

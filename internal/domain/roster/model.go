package roster

import (
	"fmt"
	"strings"
	"time"
)

// Player is a roster entry of a team.
type Player struct {
	ID      string
	Team    string
	Name    string
	AddedAt time.Time
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Team) == "" {
		return fmt.Errorf("player team is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if len(p.Name) > 100 {
		return fmt.Errorf("player name must be at most 100 characters")
	}

	return nil
}

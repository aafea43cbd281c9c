package match

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format of a match day.
const DateLayout = "2006-01-02"

// Match is one recorded fixture. Matches are immutable once saved.
type Match struct {
	ID         string
	Team1      string
	Team2      string
	Score1     int
	Score2     int
	Date       string
	GameNumber int
	SavedAt    time.Time
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.Team1) == "" || strings.TrimSpace(m.Team2) == "" {
		return fmt.Errorf("match teams are required")
	}
	if m.Team1 == m.Team2 {
		return fmt.Errorf("match teams must differ, got %q twice", m.Team1)
	}
	if m.Score1 < 0 || m.Score2 < 0 {
		return fmt.Errorf("match scores must be >= 0")
	}
	if _, err := time.Parse(DateLayout, m.Date); err != nil {
		return fmt.Errorf("match date %q must use %s", m.Date, DateLayout)
	}
	if m.GameNumber < 1 {
		return fmt.Errorf("match game number must be >= 1")
	}

	return nil
}

// Involves reports whether team played in the match.
func (m Match) Involves(team string) bool {
	return m.Team1 == team || m.Team2 == team
}

// Winner returns the winning team, or "" for a draw.
func (m Match) Winner() string {
	switch {
	case m.Score1 > m.Score2:
		return m.Team1
	case m.Score2 > m.Score1:
		return m.Team2
	default:
		return ""
	}
}

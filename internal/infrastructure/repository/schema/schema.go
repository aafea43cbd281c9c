// Package schema defines the stored shape of every collection. Backends
// convert domain values through it on the way in and out, so a malformed
// document is rejected at the store boundary instead of leaking into the
// ban logic.
package schema

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
)

var validate = validator.New()

type SuspensionDocument struct {
	ID            string `json:"id" db:"id" validate:"required"`
	Team          string `json:"team" db:"team" validate:"required"`
	Player        string `json:"player" db:"player" validate:"required"`
	ActiveYellows int    `json:"activeYellows" db:"active_yellows" validate:"gte=0"`
	YellowBanLeft int    `json:"yellowBanLeft" db:"yellow_ban_left" validate:"gte=0,lte=1"`
	RedBanLeft    int    `json:"redBanLeft" db:"red_ban_left" validate:"gte=0,lte=3"`
}

type MatchDocument struct {
	ID         string    `json:"id" db:"id" validate:"required"`
	Team1      string    `json:"team1" db:"team1" validate:"required"`
	Team2      string    `json:"team2" db:"team2" validate:"required,nefield=Team1"`
	Score1     int       `json:"score1" db:"score1" validate:"gte=0"`
	Score2     int       `json:"score2" db:"score2" validate:"gte=0"`
	Date       string    `json:"date" db:"match_date" validate:"required,datetime=2006-01-02"`
	GameNumber int       `json:"gameNumber" db:"game_number" validate:"gte=1"`
	SavedAt    time.Time `json:"savedAt" db:"saved_at" validate:"required"`
}

type PlayerDocument struct {
	ID      string    `json:"id" db:"id" validate:"required"`
	Team    string    `json:"team" db:"team" validate:"required"`
	Name    string    `json:"name" db:"name" validate:"required,max=100"`
	AddedAt time.Time `json:"addedAt" db:"added_at"`
}

func check(collection docstore.Collection, doc any) error {
	if err := validate.Struct(doc); err != nil {
		return docstore.OperationFailed(err, "%s: schema violation", collection)
	}
	return nil
}

func FromSuspension(r suspension.Record) (SuspensionDocument, error) {
	doc := SuspensionDocument{
		ID:            r.ID,
		Team:          r.Team,
		Player:        r.Player,
		ActiveYellows: r.ActiveYellows,
		YellowBanLeft: r.YellowBanLeft,
		RedBanLeft:    r.RedBanLeft,
	}
	if err := check(docstore.CollectionSuspensions, doc); err != nil {
		return SuspensionDocument{}, err
	}
	return doc, nil
}

func (d SuspensionDocument) Record() (suspension.Record, error) {
	if err := check(docstore.CollectionSuspensions, d); err != nil {
		return suspension.Record{}, err
	}
	return suspension.Record{
		ID:            d.ID,
		Team:          d.Team,
		Player:        d.Player,
		ActiveYellows: d.ActiveYellows,
		YellowBanLeft: d.YellowBanLeft,
		RedBanLeft:    d.RedBanLeft,
	}, nil
}

func FromMatch(m match.Match) (MatchDocument, error) {
	doc := MatchDocument{
		ID:         m.ID,
		Team1:      m.Team1,
		Team2:      m.Team2,
		Score1:     m.Score1,
		Score2:     m.Score2,
		Date:       m.Date,
		GameNumber: m.GameNumber,
		SavedAt:    m.SavedAt.UTC(),
	}
	if err := check(docstore.CollectionMatches, doc); err != nil {
		return MatchDocument{}, err
	}
	return doc, nil
}

func (d MatchDocument) Match() (match.Match, error) {
	if err := check(docstore.CollectionMatches, d); err != nil {
		return match.Match{}, err
	}
	return match.Match{
		ID:         d.ID,
		Team1:      d.Team1,
		Team2:      d.Team2,
		Score1:     d.Score1,
		Score2:     d.Score2,
		Date:       d.Date,
		GameNumber: d.GameNumber,
		SavedAt:    d.SavedAt.UTC(),
	}, nil
}

func FromPlayer(p roster.Player) (PlayerDocument, error) {
	doc := PlayerDocument{
		ID:      p.ID,
		Team:    p.Team,
		Name:    p.Name,
		AddedAt: p.AddedAt.UTC(),
	}
	if err := check(docstore.CollectionPlayers, doc); err != nil {
		return PlayerDocument{}, err
	}
	return doc, nil
}

func (d PlayerDocument) Player() (roster.Player, error) {
	if err := check(docstore.CollectionPlayers, d); err != nil {
		return roster.Player{}, err
	}
	return roster.Player{
		ID:      d.ID,
		Team:    d.Team,
		Name:    d.Name,
		AddedAt: d.AddedAt.UTC(),
	}, nil
}

// Suspensions converts a slice of documents, failing on the first invalid one.
func Suspensions(docs []SuspensionDocument) ([]suspension.Record, error) {
	out := make([]suspension.Record, 0, len(docs))
	for _, d := range docs {
		r, err := d.Record()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func Matches(docs []MatchDocument) ([]match.Match, error) {
	out := make([]match.Match, 0, len(docs))
	for _, d := range docs {
		m, err := d.Match()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func Players(docs []PlayerDocument) ([]roster.Player, error) {
	out := make([]roster.Player, 0, len(docs))
	for _, d := range docs {
		p, err := d.Player()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

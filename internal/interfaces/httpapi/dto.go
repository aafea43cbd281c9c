package httpapi

import (
	"time"

	"github.com/riskibarqy/league-ledger/internal/domain/leagueview"
	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	"github.com/riskibarqy/league-ledger/internal/domain/standing"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	"github.com/riskibarqy/league-ledger/internal/usecase"
)

type saveMatchRequest struct {
	Team1  string `json:"team1" validate:"required"`
	Team2  string `json:"team2" validate:"required,nefield=Team1"`
	Score1 *int   `json:"score1" validate:"required,gte=0"`
	Score2 *int   `json:"score2" validate:"required,gte=0"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
}

type recordCardRequest struct {
	MatchTeam1 string `json:"matchTeam1" validate:"required"`
	MatchTeam2 string `json:"matchTeam2" validate:"required,nefield=MatchTeam1"`
	Team       string `json:"team" validate:"required"`
	Player     string `json:"player" validate:"required,max=100"`
	Card       string `json:"card" validate:"required"`
}

type editSuspensionRequest struct {
	ActiveYellows *int `json:"activeYellows" validate:"omitempty,gte=0"`
	YellowBanLeft *int `json:"yellowBanLeft" validate:"omitempty,gte=0"`
	RedBanLeft    *int `json:"redBanLeft" validate:"omitempty,gte=0"`
}

type addPlayerRequest struct {
	Team string `json:"team" validate:"required"`
	Name string `json:"name" validate:"required,max=100"`
}

type eligibilityRequest struct {
	Team1 string `validate:"required"`
	Team2 string `validate:"required,nefield=Team1"`
}

type matchDTO struct {
	ID         string `json:"id"`
	Team1      string `json:"team1"`
	Team2      string `json:"team2"`
	Score1     int    `json:"score1"`
	Score2     int    `json:"score2"`
	Date       string `json:"date"`
	GameNumber int    `json:"gameNumber"`
	SavedAt    string `json:"savedAt"`
}

type savedMatchDTO struct {
	Match matchDTO `json:"match"`
	// CardTeams are the teams a follow-up card may be recorded for.
	CardTeams [2]string       `json:"cardTeams"`
	Settled   []suspensionDTO `json:"settled"`
}

type suspensionDTO struct {
	ID            string `json:"id"`
	Team          string `json:"team"`
	Player        string `json:"player"`
	ActiveYellows int    `json:"activeYellows"`
	YellowBanLeft int    `json:"yellowBanLeft"`
	RedBanLeft    int    `json:"redBanLeft"`
	Status        string `json:"status"`
}

type standingDTO struct {
	Rank         int    `json:"rank"`
	Team         string `json:"team"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Drawn        int    `json:"drawn"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	Diff         int    `json:"diff"`
	Points       int    `json:"points"`
}

type encounterDTO struct {
	Team     string `json:"team"`
	Opponent string `json:"opponent"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
}

type suspendedPlayerDTO struct {
	Team      string `json:"team"`
	Player    string `json:"player"`
	Card      string `json:"card"`
	Remaining int    `json:"remaining"`
}

type warnedPlayerDTO struct {
	Team          string `json:"team"`
	Player        string `json:"player"`
	ActiveYellows int    `json:"activeYellows"`
}

type eligibilityDTO struct {
	Suspended []suspendedPlayerDTO `json:"suspended"`
	Warned    []warnedPlayerDTO    `json:"warned"`
}

type playerDTO struct {
	ID      string `json:"id"`
	Team    string `json:"team"`
	Name    string `json:"name"`
	AddedAt string `json:"addedAt"`
}

type viewDTO struct {
	Teams      []string        `json:"teams"`
	TotalGames int             `json:"totalGames"`
	Standings  []standingDTO   `json:"standings"`
	History    []matchDTO      `json:"history"`
	Encounters []encounterDTO  `json:"encounters"`
	Cards      []suspensionDTO `json:"cards"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:         m.ID,
		Team1:      m.Team1,
		Team2:      m.Team2,
		Score1:     m.Score1,
		Score2:     m.Score2,
		Date:       m.Date,
		GameNumber: m.GameNumber,
		SavedAt:    m.SavedAt.UTC().Format(time.RFC3339),
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchToDTO(m))
	}
	return out
}

func savedMatchToDTO(saved usecase.SavedMatch) savedMatchDTO {
	return savedMatchDTO{
		Match:     matchToDTO(saved.Match),
		CardTeams: [2]string{saved.Match.Team1, saved.Match.Team2},
		Settled:   suspensionsToDTO(saved.Settled),
	}
}

func suspensionToDTO(r suspension.Record) suspensionDTO {
	return suspensionDTO{
		ID:            r.ID,
		Team:          r.Team,
		Player:        r.Player,
		ActiveYellows: r.ActiveYellows,
		YellowBanLeft: r.YellowBanLeft,
		RedBanLeft:    r.RedBanLeft,
		Status:        string(suspension.Classify(r)),
	}
}

func suspensionsToDTO(items []suspension.Record) []suspensionDTO {
	out := make([]suspensionDTO, 0, len(items))
	for _, r := range items {
		out = append(out, suspensionToDTO(r))
	}
	return out
}

func cardsToDTO(rows []leagueview.CardRow) []suspensionDTO {
	out := make([]suspensionDTO, 0, len(rows))
	for _, row := range rows {
		item := suspensionToDTO(row.Record)
		item.Status = string(row.Status)
		out = append(out, item)
	}
	return out
}

func standingsToDTO(rows []standing.Row) []standingDTO {
	out := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingDTO{
			Rank:         row.Rank,
			Team:         row.Team,
			Played:       row.Played,
			Won:          row.Won,
			Drawn:        row.Drawn,
			Lost:         row.Lost,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			Diff:         row.Diff,
			Points:       row.Points,
		})
	}
	return out
}

func encountersToDTO(items []standing.Encounter) []encounterDTO {
	out := make([]encounterDTO, 0, len(items))
	for _, e := range items {
		out = append(out, encounterDTO{Team: e.Team, Opponent: e.Opponent, Wins: e.Wins, Losses: e.Losses})
	}
	return out
}

func eligibilityToDTO(e suspension.Eligibility) eligibilityDTO {
	out := eligibilityDTO{
		Suspended: make([]suspendedPlayerDTO, 0, len(e.Suspended)),
		Warned:    make([]warnedPlayerDTO, 0, len(e.Warned)),
	}
	for _, s := range e.Suspended {
		out.Suspended = append(out.Suspended, suspendedPlayerDTO{
			Team:      s.Team,
			Player:    s.Player,
			Card:      string(s.Card),
			Remaining: s.Remaining,
		})
	}
	for _, w := range e.Warned {
		out.Warned = append(out.Warned, warnedPlayerDTO{Team: w.Team, Player: w.Player, ActiveYellows: w.ActiveYellows})
	}
	return out
}

func playersToDTO(items []roster.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerToDTO(p))
	}
	return out
}

func playerToDTO(p roster.Player) playerDTO {
	return playerDTO{
		ID:      p.ID,
		Team:    p.Team,
		Name:    p.Name,
		AddedAt: p.AddedAt.UTC().Format(time.RFC3339),
	}
}

func viewToDTO(v leagueview.View) viewDTO {
	return viewDTO{
		Teams:      append([]string{}, v.Teams...),
		TotalGames: v.TotalGames,
		Standings:  standingsToDTO(v.Standings),
		History:    matchesToDTO(v.History),
		Encounters: encountersToDTO(v.Encounters),
		Cards:      cardsToDTO(v.Cards),
	}
}

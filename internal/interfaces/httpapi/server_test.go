package httpapi

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-ledger/internal/platform/changefeed"
	idgen "github.com/riskibarqy/league-ledger/internal/platform/id"
	"github.com/riskibarqy/league-ledger/internal/platform/logging"
	"github.com/riskibarqy/league-ledger/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testPassword = "touchline"
	teamCity     = "MANCHESTER CITY"
	teamMadrid   = "REAL MADRID"
	teamBayern   = "BAYER MUNICH"
)

type envelope[T any] struct {
	APIVersion string `json:"apiVersion"`
	Data       T      `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	league := usecase.NewLeague([]string{teamCity, teamMadrid, teamBayern})

	suspensions, err := memory.NewSuspensionRepository()
	require.NoError(t, err)
	players, err := memory.NewRosterRepository()
	require.NoError(t, err)
	matches := memory.NewMatchRepository()

	broker, err := changefeed.NewBroker(2, logger)
	require.NoError(t, err)
	t.Cleanup(broker.Close)

	ids := idgen.NewUUIDGenerator()
	discipline := usecase.NewDisciplineService(suspensions, players, league, ids, broker, logger)
	handler := NewHandler(
		discipline,
		usecase.NewMatchService(matches, discipline, league, ids, broker, logger),
		usecase.NewRosterService(players, league, ids, broker, logger),
		usecase.NewLeagueViewService(matches, suspensions, broker, league, logger),
		logger,
	)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return NewRouter(handler, NewAdminGate(string(hash)), logger, []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set(AdminPasswordHeader, testPassword)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var out envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/healthz", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ListTeams(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/teams", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[[]string](t, rec)
	assert.Equal(t, []string{teamCity, teamMadrid, teamBayern}, body.Data)
}

func TestRouter_AdminRoutesRequirePassword(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	payload := `{"team":"REAL MADRID","name":"Vinicius"}`

	rec := doRequest(t, router, http.MethodPost, "/v1/players", payload, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/players", strings.NewReader(payload))
	req.Header.Set(AdminPasswordHeader, "wrong")
	wrong := httptest.NewRecorder()
	router.ServeHTTP(wrong, req)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)

	rec = doRequest(t, router, http.MethodPost, "/v1/players", payload, true)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_SaveMatchValidation(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	tests := []struct {
		name string
		body string
	}{
		{name: "same team", body: `{"team1":"REAL MADRID","team2":"REAL MADRID","score1":1,"score2":0,"date":"2024-05-04"}`},
		{name: "missing score", body: `{"team1":"REAL MADRID","team2":"BAYER MUNICH","score1":1,"date":"2024-05-04"}`},
		{name: "negative score", body: `{"team1":"REAL MADRID","team2":"BAYER MUNICH","score1":-1,"score2":0,"date":"2024-05-04"}`},
		{name: "bad date", body: `{"team1":"REAL MADRID","team2":"BAYER MUNICH","score1":1,"score2":0,"date":"04/05/2024"}`},
		{name: "unknown field", body: `{"team1":"REAL MADRID","team2":"BAYER MUNICH","score1":1,"score2":0,"date":"2024-05-04","venue":"home"}`},
		{name: "unknown team", body: `{"team1":"REAL MADRID","team2":"ARSENAL","score1":1,"score2":0,"date":"2024-05-04"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/v1/matches", tt.body, true)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_MatchCardEligibilityFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/players", `{"team":"REAL MADRID","name":"Vinicius"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodPost, "/v1/matches",
		`{"team1":"REAL MADRID","team2":"BAYER MUNICH","score1":2,"score2":1,"date":"2024-05-04"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	saved := decodeBody[savedMatchDTO](t, rec)
	assert.Equal(t, 1, saved.Data.Match.GameNumber)
	assert.Equal(t, [2]string{teamMadrid, teamBayern}, saved.Data.CardTeams)
	assert.Empty(t, saved.Data.Settled)

	rec = doRequest(t, router, http.MethodPost, "/v1/cards",
		`{"matchTeam1":"REAL MADRID","matchTeam2":"BAYER MUNICH","team":"REAL MADRID","player":"Vinicius","card":"red"}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	card := decodeBody[suspensionDTO](t, rec)
	assert.Equal(t, 3, card.Data.RedBanLeft)
	assert.Equal(t, "suspended_red", card.Data.Status)

	rec = doRequest(t, router, http.MethodGet, "/v1/eligibility?team1=REAL+MADRID&team2=MANCHESTER+CITY", "", false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	eligibility := decodeBody[eligibilityDTO](t, rec)
	require.Len(t, eligibility.Data.Suspended, 1)
	assert.Equal(t, suspendedPlayerDTO{Team: teamMadrid, Player: "Vinicius", Card: "red", Remaining: 3}, eligibility.Data.Suspended[0])
	assert.Empty(t, eligibility.Data.Warned)

	rec = doRequest(t, router, http.MethodPost, "/v1/matches",
		`{"team1":"MANCHESTER CITY","team2":"REAL MADRID","score1":0,"score2":0,"date":"2024-05-11"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	saved = decodeBody[savedMatchDTO](t, rec)
	assert.Equal(t, 2, saved.Data.Match.GameNumber)
	require.Len(t, saved.Data.Settled, 1)
	assert.Equal(t, 2, saved.Data.Settled[0].RedBanLeft)

	rec = doRequest(t, router, http.MethodGet, "/v1/standings", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	standings := decodeBody[[]standingDTO](t, rec)
	require.Len(t, standings.Data, 3)
	assert.Equal(t, teamMadrid, standings.Data[0].Team)
	assert.Equal(t, 4, standings.Data[0].Points)
}

func TestRouter_CardForTeamOutsideMatch(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodPost, "/v1/players", `{"team":"MANCHESTER CITY","name":"Rodri"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/v1/cards",
		`{"matchTeam1":"REAL MADRID","matchTeam2":"BAYER MUNICH","team":"MANCHESTER CITY","player":"Rodri","card":"yellow"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_DeleteMissingSuspension(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(t), http.MethodDelete, "/v1/suspensions/missing", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}

func TestRouter_StreamView(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(newTestRouter(t))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/v1/views/stream", nil)
	require.NoError(t, err)
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	event, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: view\n", event)

	data, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(data, "data: "))

	var view viewDTO
	require.NoError(t, sonic.UnmarshalString(strings.TrimPrefix(strings.TrimSpace(data), "data: "), &view))
	assert.Equal(t, 0, view.TotalGames)
	assert.Len(t, view.Standings, 3)
}

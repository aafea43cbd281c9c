package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/league-ledger/internal/usecase"
)

func (h *Handler) SaveMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMatch")
	defer span.End()

	var req saveMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(fixtureAttributes(req.Team1, req.Team2)...)

	saved, err := h.matchService.SaveMatch(ctx, usecase.SaveMatchInput{
		Team1:  req.Team1,
		Team2:  req.Team2,
		Score1: req.Score1,
		Score2: req.Score2,
		Date:   req.Date,
	})
	if err != nil {
		h.fail(ctx, w, "save match", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, savedMatchToDTO(saved))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	items, err := h.matchService.ListMatches(ctx)
	if err != nil {
		h.fail(ctx, w, "list matches", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	id := strings.TrimSpace(r.PathValue("matchID"))
	if err := h.matchService.DeleteMatch(ctx, id); err != nil {
		h.fail(ctx, w, "delete match", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": id})
}

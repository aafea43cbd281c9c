package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/league-ledger/internal/usecase"
)

func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayer")
	defer span.End()

	var req addPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	player, err := h.rosterService.AddPlayer(ctx, usecase.AddPlayerInput{Team: req.Team, Name: req.Name})
	if err != nil {
		h.fail(ctx, w, "add player", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(player))
}

// ListPlayers returns the roster of ?team=, or every roster when team is empty.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	items, err := h.rosterService.ListPlayers(ctx, strings.TrimSpace(r.URL.Query().Get("team")))
	if err != nil {
		h.fail(ctx, w, "list players", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	id := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.rosterService.DeletePlayer(ctx, id); err != nil {
		h.fail(ctx, w, "delete player", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": id})
}

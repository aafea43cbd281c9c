package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/riskibarqy/league-ledger/internal/usecase"
)

func (h *Handler) RecordCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordCard")
	defer span.End()

	var req recordCardRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(cardAttributes(req)...)

	record, err := h.disciplineService.RecordCard(ctx, usecase.RecordCardInput{
		MatchTeam1: req.MatchTeam1,
		MatchTeam2: req.MatchTeam2,
		Team:       req.Team,
		Player:     req.Player,
		Card:       req.Card,
	})
	if err != nil {
		h.fail(ctx, w, "record card", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, suspensionToDTO(record))
}

func (h *Handler) ListSuspensions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSuspensions")
	defer span.End()

	items, err := h.disciplineService.ListSuspensions(ctx)
	if err != nil {
		h.fail(ctx, w, "list suspensions", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, suspensionsToDTO(items))
}

func (h *Handler) EditSuspension(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EditSuspension")
	defer span.End()

	var req editSuspensionRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.disciplineService.EditSuspension(ctx, strings.TrimSpace(r.PathValue("suspensionID")), usecase.EditSuspensionInput{
		ActiveYellows: req.ActiveYellows,
		YellowBanLeft: req.YellowBanLeft,
		RedBanLeft:    req.RedBanLeft,
	})
	if err != nil {
		h.fail(ctx, w, "edit suspension", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, suspensionToDTO(record))
}

func (h *Handler) DeleteSuspension(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSuspension")
	defer span.End()

	id := strings.TrimSpace(r.PathValue("suspensionID"))
	if err := h.disciplineService.DeleteSuspension(ctx, id); err != nil {
		h.fail(ctx, w, "delete suspension", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": id})
}

// CheckEligibility answers GET /v1/eligibility?team1=..&team2=.. for the
// upcoming fixture between the two teams.
func (h *Handler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckEligibility")
	defer span.End()

	query := r.URL.Query()
	req := eligibilityRequest{
		Team1: strings.TrimSpace(query.Get("team1")),
		Team2: strings.TrimSpace(query.Get("team2")),
	}
	span.SetAttributes(fixtureAttributes(req.Team1, req.Team2)...)
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.disciplineService.CheckEligibility(ctx, req.Team1, req.Team2)
	if err != nil {
		h.fail(ctx, w, "check eligibility", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eligibilityToDTO(result))
}

// fail writes err and logs the ones the caller cannot fix.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, op string, err error) {
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, op+" failed", "error", err)
	}
	writeError(ctx, w, err)
}

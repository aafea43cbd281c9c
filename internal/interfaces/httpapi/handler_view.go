package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-ledger/internal/domain/leagueview"
	"github.com/valyala/bytebufferpool"
)

const viewStreamHeartbeat = 25 * time.Second

func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetView")
	defer span.End()

	view, err := h.viewService.Snapshot(ctx)
	if err != nil {
		h.fail(ctx, w, "load league view", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, viewToDTO(view))
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	rows, err := h.viewService.Standings(ctx)
	if err != nil {
		h.fail(ctx, w, "load standings", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) GetEncounters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEncounters")
	defer span.End()

	items, err := h.viewService.Encounters(ctx)
	if err != nil {
		h.fail(ctx, w, "load encounters", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, encountersToDTO(items))
}

// StreamView pushes the full league view as server-sent events: once on
// connect and again after every change to matches or suspensions.
func (h *Handler) StreamView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	views, err := h.viewService.Subscribe(ctx)
	if err != nil {
		h.fail(ctx, w, "subscribe league view", err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	ticker := time.NewTicker(viewStreamHeartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case view, ok := <-views:
			if !ok {
				return
			}
			if err := writeViewEvent(w, view); err != nil {
				h.logger.DebugContext(ctx, "view stream closed", "error", err)
				return
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			h.logger.DebugContext(ctx, "view stream flush failed", "error", err)
			return
		}
	}
}

func writeViewEvent(w http.ResponseWriter, view leagueview.View) error {
	payload, err := sonic.Marshal(viewToDTO(view))
	if err != nil {
		return fmt.Errorf("encode view: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("event: view\ndata: ")
	_, _ = buf.Write(payload)
	_, _ = buf.WriteString("\n\n")

	_, err = w.Write(buf.B)
	return err
}

package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/encounters", handler.GetEncounters)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/suspensions", handler.ListSuspensions)
	mux.HandleFunc("GET /v1/eligibility", handler.CheckEligibility)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/views", handler.GetView)
	mux.HandleFunc("GET /v1/views/stream", handler.StreamView)
}

// registerAdminRoutes mounts every mutating route behind the admin password.
func registerAdminRoutes(mux *http.ServeMux, handler *Handler, gate *AdminGate) {
	mux.Handle("POST /v1/matches", RequireAdmin(gate, http.HandlerFunc(handler.SaveMatch)))
	mux.Handle("DELETE /v1/matches/{matchID}", RequireAdmin(gate, http.HandlerFunc(handler.DeleteMatch)))
	mux.Handle("POST /v1/cards", RequireAdmin(gate, http.HandlerFunc(handler.RecordCard)))
	mux.Handle("PUT /v1/suspensions/{suspensionID}", RequireAdmin(gate, http.HandlerFunc(handler.EditSuspension)))
	mux.Handle("DELETE /v1/suspensions/{suspensionID}", RequireAdmin(gate, http.HandlerFunc(handler.DeleteSuspension)))
	mux.Handle("POST /v1/players", RequireAdmin(gate, http.HandlerFunc(handler.AddPlayer)))
	mux.Handle("DELETE /v1/players/{playerID}", RequireAdmin(gate, http.HandlerFunc(handler.DeletePlayer)))
}

package mux

import (
	"context"
	"net/http"

	"bridge-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxTableKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())

	tr := r.PathPrefix("/game/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tr.Use(this.tableMiddleware)

	tr.Methods(http.MethodGet).Path("").Handler(this.getGameUUID())
	tr.Methods(http.MethodDelete).Path("").Handler(this.deleteGameUUID())
	tr.Methods(http.MethodGet).Path("/board").Handler(this.getGameUUIDBoard())
	tr.Methods(http.MethodGet).Path("/log").Handler(this.getGameUUIDLog())
	tr.Methods(http.MethodPost).Path("/action").Handler(this.postGameUUIDAction())
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getGameUUIDWS())

	return this
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dealer, err := m.pitBoss.Dealer(gmux.Vars(r)["uuid"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxTableKey, dealer)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

package mux

import (
	"net/http"

	"bridge-server/pkg/bridge"
	"bridge-server/pkg/room"
)

type tableResponse struct {
	UUID string           `json:"uuid"`
	Name string           `json:"name"`
	Game *bridge.Snapshot `json:"game"`
}

type postGameUUIDActionPayload struct {
	Action string `json:"action"`
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := m.pitBoss.OpenTable()
		snapshot, err := dealer.Snapshot(r.Context())
		if err != nil {
			writeCommandError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, tableResponse{
			UUID: dealer.UUID,
			Name: dealer.Name,
			Game: snapshot,
		})
	}
}

func (m *Mux) getGameUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxTableKey).(*room.Dealer)
		snapshot, err := dealer.Snapshot(r.Context())
		if err != nil {
			writeCommandError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tableResponse{
			UUID: dealer.UUID,
			Name: dealer.Name,
			Game: snapshot,
		})
	}
}

func (m *Mux) deleteGameUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxTableKey).(*room.Dealer)
		if err := m.pitBoss.CloseTable(dealer.UUID); err != nil {
			writeCommandError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (m *Mux) getGameUUIDBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxTableKey).(*room.Dealer)
		snapshot, err := dealer.Snapshot(r.Context())
		if err != nil {
			writeCommandError(w, err)
			return
		}

		writeText(w, http.StatusOK, snapshot.Board)
	}
}

func (m *Mux) getGameUUIDLog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxTableKey).(*room.Dealer)
		messages, err := dealer.LogMessages(r.Context())
		if err != nil {
			writeCommandError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, messages)
	}
}

func (m *Mux) postGameUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postGameUUIDActionPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		cmd, err := bridge.ParseCommand(payload.Action)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		dealer := r.Context().Value(ctxTableKey).(*room.Dealer)
		snapshot, err := dealer.Exec(r.Context(), cmd)
		if err != nil {
			writeCommandError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tableResponse{
			UUID: dealer.UUID,
			Name: dealer.Name,
			Game: snapshot,
		})
	}
}

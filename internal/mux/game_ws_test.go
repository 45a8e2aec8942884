package mux

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"bridge-server/pkg/bridge"
	"bridge-server/pkg/room"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

type wsResponse struct {
	Key     string          `json:"key"`
	Value   string          `json:"value"`
	Data    json.RawMessage `json:"data"`
	Context string          `json:"context"`
}

func readResponse(t *testing.T, conn *websocket.Conn) wsResponse {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 2))
	var res wsResponse
	if err := conn.ReadJSON(&res); err != nil {
		t.Fatal(err)
	}

	return res
}

func Test_getGameUUIDWS(t *testing.T) {
	a := assert.New(t)
	ts := newTestServer(t)

	var tr tableResponse
	assertPost(t, ts, "/game", nil, &tr, 201)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/game/" + tr.UUID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if !a.NoError(err) {
		return
	}
	defer conn.Close()

	// the current game is sent on connect
	res := readResponse(t, conn)
	a.Equal("game", res.Key)

	var snapshot bridge.Snapshot
	a.NoError(json.Unmarshal(res.Data, &snapshot))
	a.Equal(tr.Game.DeckHash, snapshot.DeckHash)
	a.Equal(0, len(snapshot.Played))

	a.NoError(conn.WriteJSON(room.PayloadIn{Action: "nextCard", Context: "1"}))
	res = readResponse(t, conn)
	a.Equal("game", res.Key)
	a.NoError(json.Unmarshal(res.Data, &snapshot))
	a.Equal(1, len(snapshot.Played))

	res = readResponse(t, conn)
	a.Equal("status", res.Key)
	a.Equal("1", res.Context)

	// commands over HTTP are pushed to connected clients
	assertPost(t, ts, "/game/"+tr.UUID+"/action", postGameUUIDActionPayload{Action: "revealCards"}, nil, 200)
	res = readResponse(t, conn)
	a.Equal("game", res.Key)
	a.NoError(json.Unmarshal(res.Data, &snapshot))
	a.True(snapshot.Revealed)

	a.NoError(conn.WriteJSON(room.PayloadIn{Action: "bogus", Context: "2"}))
	res = readResponse(t, conn)
	a.Equal("error", res.Key)
	a.Equal("unknown command: bogus", res.Value)
	a.Equal("2", res.Context)

	// closing the table closes the socket
	assertDelete(t, ts, "/game/"+tr.UUID, 204)
	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 2))
	_, _, err = conn.ReadMessage()
	a.True(websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
}

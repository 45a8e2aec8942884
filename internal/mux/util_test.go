package mux

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bridge-server/pkg/bridge"
	"bridge-server/pkg/room"

	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	pitBoss := room.NewPitBoss(bridge.DefaultOptions(), 1, 0)
	ts := httptest.NewServer(NewMux("v1.2.3", pitBoss))
	t.Cleanup(func() {
		ts.Close()
		pitBoss.EndShift()
	})

	return ts
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	switch obj := respObj.(type) {
	case nil:
	case *string:
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Error(err)
			return nil
		}

		*obj = string(b)
	default:
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return nil
	}

	return assertDo(t, req, respObj, statusCode)
}

func assertDelete(t *testing.T, ts *httptest.Server, path string, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, nil, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case nil:
		body = http.NoBody
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return nil
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	return assertDo(t, req, respObj, statusCode)
}

func Test_writeCommandError(t *testing.T) {
	tests := []struct {
		err        error
		statusCode int
		message    string
	}{
		{bridge.UnknownCommandError("deal"), http.StatusBadRequest, "unknown command: deal"},
		{bridge.ErrGameComplete, http.StatusConflict, "game is complete"},
		{fmt.Errorf("wrapped: %w", room.ErrTableClosed), http.StatusNotFound, "wrapped: table is closed"},
		{room.ErrTableNotFound, http.StatusNotFound, "table not found"},
		{errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, test := range tests {
		w := httptest.NewRecorder()
		writeCommandError(w, test.err)

		var res errorResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&res))
		assert.Equal(t, test.statusCode, w.Code)
		assert.Equal(t, test.statusCode, res.StatusCode)
		assert.Equal(t, test.message, res.Message)
	}
}

package room

import "bridge-server/pkg/bridge"

// Response is a message sent to a connected client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action string `json:"action"`
	// Context will be passed back on any direct response
	Context string `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

func newGameResponse(s *bridge.Snapshot) *Response {
	return &Response{
		Key:  "game",
		Data: s,
	}
}

package room

import (
	"context"
	"fmt"
	"time"

	"bridge-server/pkg/bridge"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// commandTimeout is how long a client message may wait on the dealer
const commandTimeout = time.Second * 5

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	id     string
	dealer *Dealer
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		send:  make(chan interface{}, 256),
		Close: make(chan string, 1),
		Conn:  conn,
		id:    uuid.New().String(),
	}
}

// Send send a message to the web client
// Returns false if the message could not be queued
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client and table
func (c *Client) String() string {
	if c.dealer == nil {
		return c.id
	}

	return fmt.Sprintf("%s:%s", c.dealer.UUID, c.id)
}

func (c *Client) close(reason string) {
	select {
	case c.Close <- reason:
	default:
	}
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	cmd, err := bridge.ParseCommand(msg.Action)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if _, err := c.dealer.Exec(ctx, cmd); err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(OK(msg.Context))
}

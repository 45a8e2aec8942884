package room

import (
	"context"
	"sync"
	"time"

	"bridge-server/pkg/bridge"

	"github.com/sirupsen/logrus"
)

// Dealer owns a single game and applies commands to it one at a time
type Dealer struct {
	// UUID identifies the table
	UUID string

	// Name is a friendly name for the table
	Name string

	game        *bridge.Game
	logMessages []*bridge.LogMessage
	logger      logrus.FieldLogger

	clients    map[*Client]bool
	lastActive time.Time
	lock       sync.RWMutex

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
// The game must not be used by anything else once handed to the dealer
func NewDealer(uuid, name string, game *bridge.Game, logger logrus.FieldLogger) *Dealer {
	d := &Dealer{
		UUID:          uuid,
		Name:          name,
		game:          game,
		logger:        logger,
		clients:       make(map[*Client]bool),
		lastActive:    time.Now(),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}

	d.addLogMessages(game.TakeLogMessages())
	return d
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// EndShift is called when the dealer is no longer needed
// Connected clients are asked to close their connections
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)

		for _, client := range d.Clients() {
			client.close("table closed")
		}
	})
}

// exec runs fn in the run loop and waits for it to finish
func (d *Dealer) exec(ctx context.Context, fn func()) error {
	d.touch()
	done := make(chan bool)

	select {
	case d.execInRunLoop <- func() {
		fn()
		close(done)
	}:
	case <-d.close:
		return ErrTableClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-d.close:
		select {
		case <-done:
			return nil
		default:
			return ErrTableClosed
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Exec applies the command to the game and returns the new snapshot
// Every connected client receives the new snapshot as well
func (d *Dealer) Exec(ctx context.Context, cmd bridge.Command) (*bridge.Snapshot, error) {
	var snapshot *bridge.Snapshot
	var cmdErr error

	err := d.exec(ctx, func() {
		game, err := bridge.Apply(d.game, cmd)
		d.game = game
		d.addLogMessages(game.TakeLogMessages())

		if err != nil {
			d.logger.WithError(err).WithField("command", cmd).Debug("could not apply command")
			cmdErr = err
			return
		}

		d.logger.WithField("command", cmd).Debug("applied command")
		snapshot = game.Snapshot()
		d.broadcast(newGameResponse(snapshot))
	})

	if err != nil {
		return nil, err
	}

	if cmdErr != nil {
		return nil, cmdErr
	}

	return snapshot, nil
}

// Snapshot returns the current snapshot of the game
func (d *Dealer) Snapshot(ctx context.Context) (*bridge.Snapshot, error) {
	var snapshot *bridge.Snapshot
	err := d.exec(ctx, func() {
		snapshot = d.game.Snapshot()
	})

	return snapshot, err
}

// AddClient adds a client and sends it the current game
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	select {
	case d.execInRunLoop <- func() {
		client.Send(newGameResponse(d.game.Snapshot()))
	}:
	case <-d.close:
		client.close("table closed")
	}
}

func (d *Dealer) touch() {
	d.lock.Lock()
	d.lastActive = time.Now()
	d.lock.Unlock()
}

// idle returns true if nobody is connected and no command has arrived within timeout
func (d *Dealer) idle(now time.Time, timeout time.Duration) bool {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return len(d.clients) == 0 && now.Sub(d.lastActive) >= timeout
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lastActive = time.Now()
	d.lock.Unlock()

	return nClients == 0
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast(res *Response) {
	for _, client := range d.Clients() {
		if !client.Send(res) {
			d.logger.WithField("client", client.String()).Warn("client send buffer is full, dropping message")
		}
	}
}

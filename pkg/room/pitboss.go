package room

import (
	"errors"
	"sync"
	"time"

	"bridge-server/internal/rng"
	"bridge-server/internal/util"
	"bridge-server/pkg/bridge"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PitBoss is responsible for opening tables and dispatching clients to them
type PitBoss struct {
	dealers map[string]*Dealer
	lock    sync.RWMutex

	options     bridge.Options
	seed        int64
	idleTimeout time.Duration

	close     chan bool
	closeOnce sync.Once
}

// NewPitBoss returns a new dispatch object
// If seed is non-zero, every table deals from a generator seeded with it.
// If idleTimeout is non-zero, StartShift will close tables nobody has used for that long
func NewPitBoss(options bridge.Options, seed int64, idleTimeout time.Duration) *PitBoss {
	return &PitBoss{
		dealers:     make(map[string]*Dealer),
		options:     options,
		seed:        seed,
		idleTimeout: idleTimeout,
		close:       make(chan bool),
	}
}

// StartShift starts the PitBoss run loop, which closes idle tables
func (p *PitBoss) StartShift() {
	if p.idleTimeout <= 0 {
		return
	}

	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	interval := p.idleTimeout / 2
	if interval <= 0 {
		interval = p.idleTimeout
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			if n := p.closeIdleTables(now); n > 0 {
				logrus.WithField("tables", n).Info("closed idle tables")
			}
		case <-p.close:
			return
		}
	}
}

// closeIdleTables closes every table without clients that has been idle for the idle timeout
func (p *PitBoss) closeIdleTables(now time.Time) int {
	p.lock.Lock()
	idle := make([]*Dealer, 0)
	for id, dealer := range p.dealers {
		if dealer.idle(now, p.idleTimeout) {
			idle = append(idle, dealer)
			delete(p.dealers, id)
		}
	}
	p.lock.Unlock()

	for _, dealer := range idle {
		dealer.EndShift()
		logrus.WithField("uuid", dealer.UUID).Debug("idle table closed")
	}

	return len(idle)
}

// OpenTable deals a new game and starts a dealer for it
func (p *PitBoss) OpenTable() *Dealer {
	id := uuid.New().String()
	name := util.GetRandomName()
	logger := logrus.WithFields(logrus.Fields{
		"uuid": id,
		"name": name,
	})

	game := bridge.NewGame(logger, rng.New(p.seed), p.options)
	dealer := NewDealer(id, name, game, logger)
	dealer.StartShift()

	p.lock.Lock()
	p.dealers[id] = dealer
	p.lock.Unlock()

	logger.Info("table opened")
	return dealer
}

// Dealer returns the dealer for the table
func (p *PitBoss) Dealer(id string) (*Dealer, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dealer, found := p.dealers[id]
	if !found {
		return nil, ErrTableNotFound
	}

	return dealer, nil
}

// CloseTable ends the dealer's shift and forgets the table
func (p *PitBoss) CloseTable(id string) error {
	p.lock.Lock()
	dealer, found := p.dealers[id]
	delete(p.dealers, id)
	p.lock.Unlock()

	if !found {
		return ErrTableNotFound
	}

	dealer.EndShift()
	logrus.WithField("uuid", id).Info("table closed")
	return nil
}

// TableCount returns the number of open tables
func (p *PitBoss) TableCount() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.dealers)
}

// EndShift stops the run loop and closes every table
func (p *PitBoss) EndShift() {
	p.closeOnce.Do(func() {
		close(p.close)
	})

	p.lock.Lock()
	dealers := p.dealers
	p.dealers = make(map[string]*Dealer)
	p.lock.Unlock()

	for _, dealer := range dealers {
		dealer.EndShift()
	}
}

// ClientConnected is called when a client connects to a table
func (p *PitBoss) ClientConnected(dealer *Dealer, client *Client) {
	logrus.WithField("client", client.String()).Debug("client connected")
	dealer.AddClient(client)
}

// ClientDisconnected is called when a client disconnects from the server
// The table is closed once its last client leaves
func (p *PitBoss) ClientDisconnected(client *Client) {
	logrus.WithField("client", client.String()).Debug("client disconnected")
	if client.dealer == nil {
		return
	}

	if !client.dealer.RemoveClient(client) {
		return
	}

	logrus.WithField("uuid", client.dealer.UUID).Debug("last client left the table")
	if err := p.CloseTable(client.dealer.UUID); err != nil && !errors.Is(err, ErrTableNotFound) {
		logrus.WithError(err).WithField("uuid", client.dealer.UUID).Error("could not close table")
	}
}

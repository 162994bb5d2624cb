// Package wsbridge connects websocket peers such as editors and players to
// a coordinator's message bus.
package wsbridge

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"

	"golang.org/x/net/websocket"

	"github.com/justyntemme/genart-go/pkg/framework/debug"
	"github.com/justyntemme/genart-go/pkg/framework/message"
)

// MaxFrameBytes bounds inbound frames.
const MaxFrameBytes = 1 << 20

// Bridge is a message.Endpoint that fans posted messages out to every
// connected peer and feeds frames from peers into the bus.
type Bridge struct {
	bus *message.Bus
	log *debug.Logger

	mu    sync.Mutex
	peers map[*peer]struct{}
}

type peer struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (p *peer) send(frame string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return websocket.Message.Send(p.conn, frame)
}

// New creates a bridge for bus. Install it with bus.SetParent to forward
// broadcasts and mount Handler to accept peers.
func New(bus *message.Bus, log *debug.Logger) *Bridge {
	if log == nil {
		log = debug.Default()
	}
	return &Bridge{
		bus:   bus,
		log:   log.Named("wsbridge"),
		peers: make(map[*peer]struct{}),
	}
}

// Handler accepts websocket peers.
func (b *Bridge) Handler() http.Handler {
	return websocket.Handler(b.serve)
}

// Peers returns the number of connected peers.
func (b *Bridge) Peers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.peers)
}

// Post implements message.Endpoint. Peers that fail to accept the frame are
// disconnected.
func (b *Bridge) Post(msg message.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	b.mu.Lock()
	peers := make([]*peer, 0, len(b.peers))
	for p := range b.peers {
		peers = append(peers, p)
	}
	b.mu.Unlock()

	var errs []error
	for _, p := range peers {
		if err := p.send(string(data)); err != nil {
			errs = append(errs, err)
			b.drop(p)
		}
	}
	return errors.Join(errs...)
}

func (b *Bridge) drop(p *peer) {
	b.mu.Lock()
	delete(b.peers, p)
	b.mu.Unlock()
	_ = p.conn.Close()
}

func (b *Bridge) serve(conn *websocket.Conn) {
	conn.MaxPayloadBytes = MaxFrameBytes
	p := &peer{conn: conn}
	b.mu.Lock()
	b.peers[p] = struct{}{}
	b.mu.Unlock()
	defer b.drop(p)

	ctx := context.Background()
	if r := conn.Request(); r != nil {
		ctx = r.Context()
	}
	b.log.Debug("peer connected: %s", conn.RemoteAddr())

	for {
		var data []byte
		if err := websocket.Message.Receive(conn, &data); err != nil {
			if !errors.Is(err, io.EOF) {
				b.log.Debug("peer read: %v", err)
			}
			return
		}
		if _, err := b.bus.Receive(ctx, data); err != nil {
			b.log.Warn("peer frame: %v", err)
		}
	}
}

package gossip

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-kit/kit/log"
)

// Relay owns a set of gossip Nodes standing in for a simulated
// replica set, the in-memory analogue of the "nodes map[string]string"
// config the teacher's Sender/Receiver dial against.
type Relay struct {
	mu     sync.Mutex
	logger log.Logger
	nodes  map[string]*Node
}

// NewRelay returns an empty relay.
func NewRelay(logger log.Logger) *Relay {
	return &Relay{logger: logger, nodes: make(map[string]*Node)}
}

// Join starts a new node named id whose incoming deltas are handed to
// apply, and registers it with the relay.
func (r *Relay) Join(id string, metrics *Metrics, apply Apply) (*Node, error) {
	n, err := NewNode(r.logger, id, metrics, apply)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.nodes[id] = n
	r.mu.Unlock()

	return n, nil
}

// Connect wires a and b as each other's peers so either can broadcast
// to the other.
func (r *Relay) Connect(a, b string) error {
	r.mu.Lock()
	na, ok1 := r.nodes[a]
	nb, ok2 := r.nodes[b]
	r.mu.Unlock()

	if !ok1 || !ok2 {
		return fmt.Errorf("[gossip.Relay.Connect] unknown node in pair (%q, %q)", a, b)
	}

	na.AddPeer(b, nb.Addr())
	nb.AddPeer(a, na.Addr())
	return nil
}

// FullMesh connects every currently joined node to every other one.
func (r *Relay) FullMesh() {
	r.mu.Lock()
	ids := make([]string, 0, len(r.nodes))
	for id := range r.nodes {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			_ = r.Connect(ids[i], ids[j])
		}
	}
}

// Broadcast ships payload from the named node to its peers.
func (r *Relay) Broadcast(ctx context.Context, from string, payload []byte) error {
	r.mu.Lock()
	n, ok := r.nodes[from]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("[gossip.Relay.Broadcast] unknown node %q", from)
	}
	n.Broadcast(ctx, payload)
	return nil
}

// Shutdown stops every node in the relay.
func (r *Relay) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.nodes {
		n.Shutdown()
	}
}

// Package gossip is an in-memory, non-reliable broadcast relay used by
// cmd/crdtdemo and integration tests to ship opaque CRDT deltas
// between simulated replicas over a real (loopback) gRPC connection.
// It is grounded on the shape of the teacher's comm package — a
// mutex-guarded struct, a go-kit logger threaded through, goroutines
// doing the sending and receiving — but it makes none of comm's
// causal-delivery-ordering or durable-log guarantees: a failed send is
// logged and dropped, not retried, and nothing is ever persisted to
// disk. Delivery ordering is the CRDT join algebra's problem, not
// this package's.
package gossip

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"google.golang.org/grpc"

	"github.com/go-pluto/delta-crdt/internal/gossip/deltapb"
)

// Apply is called with the broadcasting replica's ID and its raw
// delta payload whenever a Node accepts an incoming delta. Callers
// typically unmarshal payload into their CRDT type and Join it into
// local state.
type Apply func(replica string, payload []byte)

// Node is one simulated replica's gossip endpoint: a gRPC server
// accepting deltas from peers, and a client-side Broadcast that fans
// a delta out to every known peer.
type Node struct {
	deltapb.UnimplementedDeltaServiceServer

	id      string
	logger  log.Logger
	metrics *Metrics
	apply   Apply

	listener net.Listener
	server   *grpc.Server

	mu    sync.Mutex
	seq   uint64
	peers map[string]string // peer id -> dial address

	wg sync.WaitGroup
}

// NewNode starts a Node listening on a loopback port and returns it.
// apply is invoked synchronously from the gRPC handler goroutine for
// every accepted delta, mirroring how comm.Receiver hands accepted
// messages straight to its applyCRDTUpdChan consumer.
func NewNode(logger log.Logger, id string, metrics *Metrics, apply Apply) (*Node, error) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("[gossip.NewNode] listening for node %q failed: %w", id, err)
	}

	n := &Node{
		id:       id,
		logger:   log.With(logger, "replica", id),
		metrics:  metrics,
		apply:    apply,
		listener: lis,
		peers:    make(map[string]string),
	}

	n.server = grpc.NewServer(serverOptions()...)
	deltapb.RegisterDeltaServiceServer(n.server, n)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := n.server.Serve(n.listener); err != nil {
			level.Debug(n.logger).Log("msg", "gossip server stopped", "err", err)
		}
	}()

	return n, nil
}

// Addr returns the loopback address peers dial to reach this node.
func (n *Node) Addr() string {
	return n.listener.Addr().String()
}

// AddPeer registers addr as peerID's dial address for future
// broadcasts. Peering is one-directional; Relay.Connect wires both
// sides.
func (n *Node) AddPeer(peerID, addr string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.peers[peerID] = addr
}

// Send implements deltapb.DeltaServiceServer: it hands the incoming
// delta to apply and acknowledges it unconditionally — there is no
// notion of rejecting a delta, since Join is total.
func (n *Node) Send(ctx context.Context, in *deltapb.Delta) (*deltapb.Ack, error) {
	n.metrics.DeltasReceived.Add(1)
	n.apply(in.GetReplica(), in.GetPayload())
	n.metrics.DeltasJoined.Add(1)
	level.Debug(n.logger).Log("msg", "applied incoming delta", "from", in.GetReplica(), "seq", in.GetSeq())
	return &deltapb.Ack{Applied: true}, nil
}

// Broadcast ships payload to every currently known peer. Unlike
// comm.Sender it never retries or exits the process on failure: a
// peer that is down is logged and skipped, since this relay promises
// nothing about reliable delivery.
func (n *Node) Broadcast(ctx context.Context, payload []byte) {
	n.mu.Lock()
	n.seq++
	seq := n.seq
	peers := make(map[string]string, len(n.peers))
	for id, addr := range n.peers {
		peers[id] = addr
	}
	n.mu.Unlock()

	delta := &deltapb.Delta{Replica: n.id, Seq: seq, Payload: payload}

	for peerID, addr := range peers {
		if err := n.sendTo(ctx, addr, delta); err != nil {
			level.Error(n.logger).Log("msg", "broadcast to peer failed", "peer", peerID, "err", err)
			continue
		}
		n.metrics.DeltasSent.Add(1)
	}
}

func (n *Node) sendTo(ctx context.Context, addr string, delta *deltapb.Delta) error {
	conn, err := grpc.DialContext(ctx, addr, dialOptions()...)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	client := deltapb.NewDeltaServiceClient(conn)
	if _, err := client.Send(ctx, delta); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the node's gRPC server and waits for its
// serving goroutine to return, the same graceful-teardown shape as
// comm.Receiver.Shutdown.
func (n *Node) Shutdown() {
	n.server.GracefulStop()
	n.wg.Wait()
}

package gossip

import (
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// maxMsgSize bounds how large a single delta envelope may be, the same
// generous ceiling the teacher's comm package uses for CRDT sync
// traffic.
const maxMsgSize = 268437504

// serverOptions returns the gRPC server options a relay node listens
// with. Adapted from comm.ReceiverOptions: the teacher dials up TLS
// credentials from a cluster-wide cert; this relay is loopback-only
// demo infrastructure, so it swaps in insecure transport credentials
// and drops the GZIP compressor knobs grpc-go has since deprecated.
func serverOptions() []grpc.ServerOption {
	enfPolicy := keepalive.EnforcementPolicy{
		MinTime:             5 * time.Second,
		PermitWithoutStream: true,
	}

	kaParams := keepalive.ServerParameters{
		Time:    30 * time.Second,
		Timeout: 20 * time.Second,
	}

	return []grpc.ServerOption{
		grpc.Creds(insecure.NewCredentials()),
		grpc.KeepaliveEnforcementPolicy(enfPolicy),
		grpc.KeepaliveParams(kaParams),
		grpc.MaxRecvMsgSize(maxMsgSize),
		grpc.MaxSendMsgSize(maxMsgSize),
	}
}

// dialOptions returns the gRPC dial options a relay node uses to reach
// its peers. Adapted from comm.SenderOptions for the same reason.
func dialOptions() []grpc.DialOption {
	kaParams := keepalive.ClientParameters{
		Time:                30 * time.Second,
		Timeout:             20 * time.Second,
		PermitWithoutStream: true,
	}

	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(kaParams),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxMsgSize),
			grpc.MaxCallSendMsgSize(maxMsgSize),
		),
	}
}

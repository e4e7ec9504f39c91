package deltapb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// DeltaServiceClient is the client API for DeltaService, the single
// unary RPC a gossip relay node exposes to its peers.
type DeltaServiceClient interface {
	Send(ctx context.Context, in *Delta, opts ...grpc.CallOption) (*Ack, error)
}

type deltaServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDeltaServiceClient wraps an established connection in a
// DeltaServiceClient stub.
func NewDeltaServiceClient(cc grpc.ClientConnInterface) DeltaServiceClient {
	return &deltaServiceClient{cc}
}

func (c *deltaServiceClient) Send(ctx context.Context, in *Delta, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/deltapb.DeltaService/Send", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeltaServiceServer is the server API for DeltaService.
type DeltaServiceServer interface {
	Send(context.Context, *Delta) (*Ack, error)
}

// UnimplementedDeltaServiceServer can be embedded to satisfy
// DeltaServiceServer while only overriding the methods a given node
// actually needs.
type UnimplementedDeltaServiceServer struct{}

func (UnimplementedDeltaServiceServer) Send(context.Context, *Delta) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Send not implemented")
}

// RegisterDeltaServiceServer registers srv with s under the service
// descriptor below.
func RegisterDeltaServiceServer(s grpc.ServiceRegistrar, srv DeltaServiceServer) {
	s.RegisterService(&DeltaService_ServiceDesc, srv)
}

func deltaServiceSendHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Delta)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeltaServiceServer).Send(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/deltapb.DeltaService/Send",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeltaServiceServer).Send(ctx, req.(*Delta))
	}
	return interceptor(ctx, in, info, handler)
}

// DeltaService_ServiceDesc is the grpc.ServiceDesc for DeltaService,
// built by hand in place of what protoc-gen-go-grpc would emit.
var DeltaService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "deltapb.DeltaService",
	HandlerType: (*DeltaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Send",
			Handler:    deltaServiceSendHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "delta.proto",
}

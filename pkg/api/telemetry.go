// Package api defines the gRPC surface of the telemetry ingress service.
// Message types are generated from proto/telemetry.proto; the service
// descriptor and stream wrappers below are maintained by hand and kept in
// sync with it.
package api

import (
	"context"
	"errors"

	"google.golang.org/grpc"
)

// TelemetryIngressClient defines the gRPC client interface for publishing frames.
type TelemetryIngressClient interface {
	PublishFrames(ctx context.Context, opts ...grpc.CallOption) (TelemetryIngress_PublishFramesClient, error)
}

type telemetryIngressClient struct {
	cc grpc.ClientConnInterface
}

// NewTelemetryIngressClient creates a new TelemetryIngress client.
func NewTelemetryIngressClient(cc grpc.ClientConnInterface) TelemetryIngressClient {
	return &telemetryIngressClient{cc: cc}
}

func (c *telemetryIngressClient) PublishFrames(ctx context.Context, opts ...grpc.CallOption) (TelemetryIngress_PublishFramesClient, error) {
	stream, err := c.cc.NewStream(ctx, &TelemetryIngress_ServiceDesc.Streams[0], "/telemetry.TelemetryIngress/PublishFrames", opts...)
	if err != nil {
		return nil, err
	}
	return &telemetryIngressPublishFramesClient{stream}, nil
}

// TelemetryIngress_PublishFramesClient is the client side of the frame stream.
type TelemetryIngress_PublishFramesClient interface {
	Send(*FramePush) error
	CloseAndRecv() (*PublishSummary, error)
	grpc.ClientStream
}

type telemetryIngressPublishFramesClient struct {
	grpc.ClientStream
}

func (x *telemetryIngressPublishFramesClient) Send(m *FramePush) error {
	return x.ClientStream.SendMsg(m)
}

func (x *telemetryIngressPublishFramesClient) CloseAndRecv() (*PublishSummary, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(PublishSummary)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// TelemetryIngressServer defines the gRPC interface for the frame ingress service.
type TelemetryIngressServer interface {
	PublishFrames(TelemetryIngress_PublishFramesServer) error
}

// UnimplementedTelemetryIngressServer can be embedded to provide default unimplemented behaviour.
type UnimplementedTelemetryIngressServer struct{}

// PublishFrames returns an unimplemented error by default.
func (UnimplementedTelemetryIngressServer) PublishFrames(TelemetryIngress_PublishFramesServer) error {
	return errors.New("method PublishFrames not implemented")
}

// RegisterTelemetryIngressServer registers the service implementation with the provided registrar.
func RegisterTelemetryIngressServer(s grpc.ServiceRegistrar, srv TelemetryIngressServer) {
	s.RegisterService(&TelemetryIngress_ServiceDesc, srv)
}

// TelemetryIngress_PublishFramesServer is the server side of the frame stream.
type TelemetryIngress_PublishFramesServer interface {
	SendAndClose(*PublishSummary) error
	Recv() (*FramePush, error)
	grpc.ServerStream
}

type telemetryIngressPublishFramesServer struct {
	grpc.ServerStream
}

func (x *telemetryIngressPublishFramesServer) SendAndClose(m *PublishSummary) error {
	return x.ServerStream.SendMsg(m)
}

func (x *telemetryIngressPublishFramesServer) Recv() (*FramePush, error) {
	m := new(FramePush)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _TelemetryIngress_PublishFrames_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(TelemetryIngressServer).PublishFrames(&telemetryIngressPublishFramesServer{stream})
}

// TelemetryIngress_ServiceDesc describes the ingress service for the gRPC server.
var TelemetryIngress_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "telemetry.TelemetryIngress",
	HandlerType: (*TelemetryIngressServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "PublishFrames",
			Handler:       _TelemetryIngress_PublishFrames_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "proto/telemetry.proto",
}

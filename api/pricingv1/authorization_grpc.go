package pricingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	AuthorizationService_VerifyPIN_FullMethodName = "/omnipos.pricing.v1.AuthorizationService/VerifyPIN"
	AuthorizationService_SetPIN_FullMethodName    = "/omnipos.pricing.v1.AuthorizationService/SetPIN"
)

type AuthorizationServiceClient interface {
	VerifyPIN(ctx context.Context, in *VerifyPINRequest, opts ...grpc.CallOption) (*VerifyPINResponse, error)
	SetPIN(ctx context.Context, in *SetPINRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type authorizationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthorizationServiceClient(cc grpc.ClientConnInterface) AuthorizationServiceClient {
	return &authorizationServiceClient{cc}
}

func (c *authorizationServiceClient) VerifyPIN(ctx context.Context, in *VerifyPINRequest, opts ...grpc.CallOption) (*VerifyPINResponse, error) {
	out := new(VerifyPINResponse)
	if err := c.cc.Invoke(ctx, AuthorizationService_VerifyPIN_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authorizationServiceClient) SetPIN(ctx context.Context, in *SetPINRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, AuthorizationService_SetPIN_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// AuthorizationServiceServer must embed UnimplementedAuthorizationServiceServer.
type AuthorizationServiceServer interface {
	VerifyPIN(context.Context, *VerifyPINRequest) (*VerifyPINResponse, error)
	SetPIN(context.Context, *SetPINRequest) (*emptypb.Empty, error)
	mustEmbedUnimplementedAuthorizationServiceServer()
}

type UnimplementedAuthorizationServiceServer struct{}

func (UnimplementedAuthorizationServiceServer) VerifyPIN(context.Context, *VerifyPINRequest) (*VerifyPINResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VerifyPIN not implemented")
}
func (UnimplementedAuthorizationServiceServer) SetPIN(context.Context, *SetPINRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetPIN not implemented")
}
func (UnimplementedAuthorizationServiceServer) mustEmbedUnimplementedAuthorizationServiceServer() {}

func RegisterAuthorizationServiceServer(s grpc.ServiceRegistrar, srv AuthorizationServiceServer) {
	s.RegisterService(&AuthorizationService_ServiceDesc, srv)
}

func _AuthorizationService_VerifyPIN_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(VerifyPINRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthorizationServiceServer).VerifyPIN(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuthorizationService_VerifyPIN_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthorizationServiceServer).VerifyPIN(ctx, req.(*VerifyPINRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuthorizationService_SetPIN_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetPINRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthorizationServiceServer).SetPIN(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuthorizationService_SetPIN_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthorizationServiceServer).SetPIN(ctx, req.(*SetPINRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var AuthorizationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.pricing.v1.AuthorizationService",
	HandlerType: (*AuthorizationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "VerifyPIN",
			Handler:    _AuthorizationService_VerifyPIN_Handler,
		},
		{
			MethodName: "SetPIN",
			Handler:    _AuthorizationService_SetPIN_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pricing/v1/authorization.proto",
}

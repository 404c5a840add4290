package pricingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	PriceService_ResolvePrice_FullMethodName        = "/omnipos.pricing.v1.PriceService/ResolvePrice"
	PriceService_UpsertPriceOverride_FullMethodName = "/omnipos.pricing.v1.PriceService/UpsertPriceOverride"
	PriceService_ListPriceOverrides_FullMethodName  = "/omnipos.pricing.v1.PriceService/ListPriceOverrides"
	PriceService_DeletePriceOverride_FullMethodName = "/omnipos.pricing.v1.PriceService/DeletePriceOverride"
)

type PriceServiceClient interface {
	ResolvePrice(ctx context.Context, in *ResolvePriceRequest, opts ...grpc.CallOption) (*ResolvePriceResponse, error)
	UpsertPriceOverride(ctx context.Context, in *UpsertPriceOverrideRequest, opts ...grpc.CallOption) (*PriceOverrideResponse, error)
	ListPriceOverrides(ctx context.Context, in *ListPriceOverridesRequest, opts ...grpc.CallOption) (*ListPriceOverridesResponse, error)
	DeletePriceOverride(ctx context.Context, in *DeletePriceOverrideRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type priceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPriceServiceClient(cc grpc.ClientConnInterface) PriceServiceClient {
	return &priceServiceClient{cc}
}

func (c *priceServiceClient) ResolvePrice(ctx context.Context, in *ResolvePriceRequest, opts ...grpc.CallOption) (*ResolvePriceResponse, error) {
	out := new(ResolvePriceResponse)
	if err := c.cc.Invoke(ctx, PriceService_ResolvePrice_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *priceServiceClient) UpsertPriceOverride(ctx context.Context, in *UpsertPriceOverrideRequest, opts ...grpc.CallOption) (*PriceOverrideResponse, error) {
	out := new(PriceOverrideResponse)
	if err := c.cc.Invoke(ctx, PriceService_UpsertPriceOverride_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *priceServiceClient) ListPriceOverrides(ctx context.Context, in *ListPriceOverridesRequest, opts ...grpc.CallOption) (*ListPriceOverridesResponse, error) {
	out := new(ListPriceOverridesResponse)
	if err := c.cc.Invoke(ctx, PriceService_ListPriceOverrides_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *priceServiceClient) DeletePriceOverride(ctx context.Context, in *DeletePriceOverrideRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, PriceService_DeletePriceOverride_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// PriceServiceServer must embed UnimplementedPriceServiceServer.
type PriceServiceServer interface {
	ResolvePrice(context.Context, *ResolvePriceRequest) (*ResolvePriceResponse, error)
	UpsertPriceOverride(context.Context, *UpsertPriceOverrideRequest) (*PriceOverrideResponse, error)
	ListPriceOverrides(context.Context, *ListPriceOverridesRequest) (*ListPriceOverridesResponse, error)
	DeletePriceOverride(context.Context, *DeletePriceOverrideRequest) (*emptypb.Empty, error)
	mustEmbedUnimplementedPriceServiceServer()
}

type UnimplementedPriceServiceServer struct{}

func (UnimplementedPriceServiceServer) ResolvePrice(context.Context, *ResolvePriceRequest) (*ResolvePriceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolvePrice not implemented")
}
func (UnimplementedPriceServiceServer) UpsertPriceOverride(context.Context, *UpsertPriceOverrideRequest) (*PriceOverrideResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpsertPriceOverride not implemented")
}
func (UnimplementedPriceServiceServer) ListPriceOverrides(context.Context, *ListPriceOverridesRequest) (*ListPriceOverridesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPriceOverrides not implemented")
}
func (UnimplementedPriceServiceServer) DeletePriceOverride(context.Context, *DeletePriceOverrideRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeletePriceOverride not implemented")
}
func (UnimplementedPriceServiceServer) mustEmbedUnimplementedPriceServiceServer() {}

func RegisterPriceServiceServer(s grpc.ServiceRegistrar, srv PriceServiceServer) {
	s.RegisterService(&PriceService_ServiceDesc, srv)
}

func _PriceService_ResolvePrice_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ResolvePriceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PriceServiceServer).ResolvePrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PriceService_ResolvePrice_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PriceServiceServer).ResolvePrice(ctx, req.(*ResolvePriceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PriceService_UpsertPriceOverride_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpsertPriceOverrideRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PriceServiceServer).UpsertPriceOverride(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PriceService_UpsertPriceOverride_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PriceServiceServer).UpsertPriceOverride(ctx, req.(*UpsertPriceOverrideRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PriceService_ListPriceOverrides_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListPriceOverridesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PriceServiceServer).ListPriceOverrides(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PriceService_ListPriceOverrides_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PriceServiceServer).ListPriceOverrides(ctx, req.(*ListPriceOverridesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PriceService_DeletePriceOverride_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeletePriceOverrideRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PriceServiceServer).DeletePriceOverride(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PriceService_DeletePriceOverride_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PriceServiceServer).DeletePriceOverride(ctx, req.(*DeletePriceOverrideRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var PriceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.pricing.v1.PriceService",
	HandlerType: (*PriceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ResolvePrice",
			Handler:    _PriceService_ResolvePrice_Handler,
		},
		{
			MethodName: "UpsertPriceOverride",
			Handler:    _PriceService_UpsertPriceOverride_Handler,
		},
		{
			MethodName: "ListPriceOverrides",
			Handler:    _PriceService_ListPriceOverrides_Handler,
		},
		{
			MethodName: "DeletePriceOverride",
			Handler:    _PriceService_DeletePriceOverride_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pricing/v1/price.proto",
}

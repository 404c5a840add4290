package pricingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	PromotionService_CreatePromotion_FullMethodName    = "/omnipos.pricing.v1.PromotionService/CreatePromotion"
	PromotionService_UpdatePromotion_FullMethodName    = "/omnipos.pricing.v1.PromotionService/UpdatePromotion"
	PromotionService_GetPromotion_FullMethodName       = "/omnipos.pricing.v1.PromotionService/GetPromotion"
	PromotionService_ListPromotions_FullMethodName     = "/omnipos.pricing.v1.PromotionService/ListPromotions"
	PromotionService_SetPromotionActive_FullMethodName = "/omnipos.pricing.v1.PromotionService/SetPromotionActive"
	PromotionService_DeletePromotion_FullMethodName    = "/omnipos.pricing.v1.PromotionService/DeletePromotion"
)

type PromotionServiceClient interface {
	CreatePromotion(ctx context.Context, in *CreatePromotionRequest, opts ...grpc.CallOption) (*PromotionResponse, error)
	UpdatePromotion(ctx context.Context, in *UpdatePromotionRequest, opts ...grpc.CallOption) (*PromotionResponse, error)
	GetPromotion(ctx context.Context, in *GetPromotionRequest, opts ...grpc.CallOption) (*PromotionResponse, error)
	ListPromotions(ctx context.Context, in *ListPromotionsRequest, opts ...grpc.CallOption) (*ListPromotionsResponse, error)
	SetPromotionActive(ctx context.Context, in *SetPromotionActiveRequest, opts ...grpc.CallOption) (*PromotionResponse, error)
	DeletePromotion(ctx context.Context, in *DeletePromotionRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type promotionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPromotionServiceClient(cc grpc.ClientConnInterface) PromotionServiceClient {
	return &promotionServiceClient{cc}
}

func (c *promotionServiceClient) CreatePromotion(ctx context.Context, in *CreatePromotionRequest, opts ...grpc.CallOption) (*PromotionResponse, error) {
	out := new(PromotionResponse)
	if err := c.cc.Invoke(ctx, PromotionService_CreatePromotion_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *promotionServiceClient) UpdatePromotion(ctx context.Context, in *UpdatePromotionRequest, opts ...grpc.CallOption) (*PromotionResponse, error) {
	out := new(PromotionResponse)
	if err := c.cc.Invoke(ctx, PromotionService_UpdatePromotion_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *promotionServiceClient) GetPromotion(ctx context.Context, in *GetPromotionRequest, opts ...grpc.CallOption) (*PromotionResponse, error) {
	out := new(PromotionResponse)
	if err := c.cc.Invoke(ctx, PromotionService_GetPromotion_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *promotionServiceClient) ListPromotions(ctx context.Context, in *ListPromotionsRequest, opts ...grpc.CallOption) (*ListPromotionsResponse, error) {
	out := new(ListPromotionsResponse)
	if err := c.cc.Invoke(ctx, PromotionService_ListPromotions_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *promotionServiceClient) SetPromotionActive(ctx context.Context, in *SetPromotionActiveRequest, opts ...grpc.CallOption) (*PromotionResponse, error) {
	out := new(PromotionResponse)
	if err := c.cc.Invoke(ctx, PromotionService_SetPromotionActive_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *promotionServiceClient) DeletePromotion(ctx context.Context, in *DeletePromotionRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, PromotionService_DeletePromotion_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// PromotionServiceServer must embed UnimplementedPromotionServiceServer.
type PromotionServiceServer interface {
	CreatePromotion(context.Context, *CreatePromotionRequest) (*PromotionResponse, error)
	UpdatePromotion(context.Context, *UpdatePromotionRequest) (*PromotionResponse, error)
	GetPromotion(context.Context, *GetPromotionRequest) (*PromotionResponse, error)
	ListPromotions(context.Context, *ListPromotionsRequest) (*ListPromotionsResponse, error)
	SetPromotionActive(context.Context, *SetPromotionActiveRequest) (*PromotionResponse, error)
	DeletePromotion(context.Context, *DeletePromotionRequest) (*emptypb.Empty, error)
	mustEmbedUnimplementedPromotionServiceServer()
}

type UnimplementedPromotionServiceServer struct{}

func (UnimplementedPromotionServiceServer) CreatePromotion(context.Context, *CreatePromotionRequest) (*PromotionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreatePromotion not implemented")
}
func (UnimplementedPromotionServiceServer) UpdatePromotion(context.Context, *UpdatePromotionRequest) (*PromotionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdatePromotion not implemented")
}
func (UnimplementedPromotionServiceServer) GetPromotion(context.Context, *GetPromotionRequest) (*PromotionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPromotion not implemented")
}
func (UnimplementedPromotionServiceServer) ListPromotions(context.Context, *ListPromotionsRequest) (*ListPromotionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPromotions not implemented")
}
func (UnimplementedPromotionServiceServer) SetPromotionActive(context.Context, *SetPromotionActiveRequest) (*PromotionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetPromotionActive not implemented")
}
func (UnimplementedPromotionServiceServer) DeletePromotion(context.Context, *DeletePromotionRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeletePromotion not implemented")
}
func (UnimplementedPromotionServiceServer) mustEmbedUnimplementedPromotionServiceServer() {}

func RegisterPromotionServiceServer(s grpc.ServiceRegistrar, srv PromotionServiceServer) {
	s.RegisterService(&PromotionService_ServiceDesc, srv)
}

func _PromotionService_CreatePromotion_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreatePromotionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PromotionServiceServer).CreatePromotion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PromotionService_CreatePromotion_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PromotionServiceServer).CreatePromotion(ctx, req.(*CreatePromotionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PromotionService_UpdatePromotion_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdatePromotionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PromotionServiceServer).UpdatePromotion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PromotionService_UpdatePromotion_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PromotionServiceServer).UpdatePromotion(ctx, req.(*UpdatePromotionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PromotionService_GetPromotion_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetPromotionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PromotionServiceServer).GetPromotion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PromotionService_GetPromotion_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PromotionServiceServer).GetPromotion(ctx, req.(*GetPromotionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PromotionService_ListPromotions_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListPromotionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PromotionServiceServer).ListPromotions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PromotionService_ListPromotions_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PromotionServiceServer).ListPromotions(ctx, req.(*ListPromotionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PromotionService_SetPromotionActive_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetPromotionActiveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PromotionServiceServer).SetPromotionActive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PromotionService_SetPromotionActive_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PromotionServiceServer).SetPromotionActive(ctx, req.(*SetPromotionActiveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PromotionService_DeletePromotion_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeletePromotionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PromotionServiceServer).DeletePromotion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PromotionService_DeletePromotion_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PromotionServiceServer).DeletePromotion(ctx, req.(*DeletePromotionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var PromotionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.pricing.v1.PromotionService",
	HandlerType: (*PromotionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreatePromotion",
			Handler:    _PromotionService_CreatePromotion_Handler,
		},
		{
			MethodName: "UpdatePromotion",
			Handler:    _PromotionService_UpdatePromotion_Handler,
		},
		{
			MethodName: "GetPromotion",
			Handler:    _PromotionService_GetPromotion_Handler,
		},
		{
			MethodName: "ListPromotions",
			Handler:    _PromotionService_ListPromotions_Handler,
		},
		{
			MethodName: "SetPromotionActive",
			Handler:    _PromotionService_SetPromotionActive_Handler,
		},
		{
			MethodName: "DeletePromotion",
			Handler:    _PromotionService_DeletePromotion_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pricing/v1/promotion.proto",
}

package pricingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	InventoryService_CreateInventoryItem_FullMethodName         = "/omnipos.pricing.v1.InventoryService/CreateInventoryItem"
	InventoryService_UpdateInventoryPresentation_FullMethodName = "/omnipos.pricing.v1.InventoryService/UpdateInventoryPresentation"
	InventoryService_GetInventoryItem_FullMethodName            = "/omnipos.pricing.v1.InventoryService/GetInventoryItem"
	InventoryService_ListInventoryItems_FullMethodName          = "/omnipos.pricing.v1.InventoryService/ListInventoryItems"
	InventoryService_PreviewUnitConversion_FullMethodName       = "/omnipos.pricing.v1.InventoryService/PreviewUnitConversion"
	InventoryService_AdjustBranchStock_FullMethodName           = "/omnipos.pricing.v1.InventoryService/AdjustBranchStock"
	InventoryService_ReceivePurchase_FullMethodName             = "/omnipos.pricing.v1.InventoryService/ReceivePurchase"
	InventoryService_ListLowStock_FullMethodName                = "/omnipos.pricing.v1.InventoryService/ListLowStock"
	InventoryService_ListInventoryMovements_FullMethodName      = "/omnipos.pricing.v1.InventoryService/ListInventoryMovements"
	InventoryService_SetRecipe_FullMethodName                   = "/omnipos.pricing.v1.InventoryService/SetRecipe"
	InventoryService_GetRecipe_FullMethodName                   = "/omnipos.pricing.v1.InventoryService/GetRecipe"
	InventoryService_GetTheoreticalStock_FullMethodName         = "/omnipos.pricing.v1.InventoryService/GetTheoreticalStock"
)

type InventoryServiceClient interface {
	CreateInventoryItem(ctx context.Context, in *CreateInventoryItemRequest, opts ...grpc.CallOption) (*InventoryItemResponse, error)
	UpdateInventoryPresentation(ctx context.Context, in *UpdateInventoryPresentationRequest, opts ...grpc.CallOption) (*InventoryItemResponse, error)
	GetInventoryItem(ctx context.Context, in *GetInventoryItemRequest, opts ...grpc.CallOption) (*InventoryItemResponse, error)
	ListInventoryItems(ctx context.Context, in *ListInventoryItemsRequest, opts ...grpc.CallOption) (*ListInventoryItemsResponse, error)
	PreviewUnitConversion(ctx context.Context, in *PreviewUnitConversionRequest, opts ...grpc.CallOption) (*UnitConversion, error)
	AdjustBranchStock(ctx context.Context, in *AdjustBranchStockRequest, opts ...grpc.CallOption) (*BranchStock, error)
	ReceivePurchase(ctx context.Context, in *ReceivePurchaseRequest, opts ...grpc.CallOption) (*ReceivePurchaseResponse, error)
	ListLowStock(ctx context.Context, in *ListLowStockRequest, opts ...grpc.CallOption) (*ListLowStockResponse, error)
	ListInventoryMovements(ctx context.Context, in *ListInventoryMovementsRequest, opts ...grpc.CallOption) (*ListInventoryMovementsResponse, error)
	SetRecipe(ctx context.Context, in *SetRecipeRequest, opts ...grpc.CallOption) (*RecipeResponse, error)
	GetRecipe(ctx context.Context, in *GetRecipeRequest, opts ...grpc.CallOption) (*RecipeResponse, error)
	GetTheoreticalStock(ctx context.Context, in *GetTheoreticalStockRequest, opts ...grpc.CallOption) (*TheoreticalStockResponse, error)
}

type inventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryServiceClient(cc grpc.ClientConnInterface) InventoryServiceClient {
	return &inventoryServiceClient{cc}
}

func (c *inventoryServiceClient) CreateInventoryItem(ctx context.Context, in *CreateInventoryItemRequest, opts ...grpc.CallOption) (*InventoryItemResponse, error) {
	out := new(InventoryItemResponse)
	if err := c.cc.Invoke(ctx, InventoryService_CreateInventoryItem_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) UpdateInventoryPresentation(ctx context.Context, in *UpdateInventoryPresentationRequest, opts ...grpc.CallOption) (*InventoryItemResponse, error) {
	out := new(InventoryItemResponse)
	if err := c.cc.Invoke(ctx, InventoryService_UpdateInventoryPresentation_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) GetInventoryItem(ctx context.Context, in *GetInventoryItemRequest, opts ...grpc.CallOption) (*InventoryItemResponse, error) {
	out := new(InventoryItemResponse)
	if err := c.cc.Invoke(ctx, InventoryService_GetInventoryItem_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) ListInventoryItems(ctx context.Context, in *ListInventoryItemsRequest, opts ...grpc.CallOption) (*ListInventoryItemsResponse, error) {
	out := new(ListInventoryItemsResponse)
	if err := c.cc.Invoke(ctx, InventoryService_ListInventoryItems_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) PreviewUnitConversion(ctx context.Context, in *PreviewUnitConversionRequest, opts ...grpc.CallOption) (*UnitConversion, error) {
	out := new(UnitConversion)
	if err := c.cc.Invoke(ctx, InventoryService_PreviewUnitConversion_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) AdjustBranchStock(ctx context.Context, in *AdjustBranchStockRequest, opts ...grpc.CallOption) (*BranchStock, error) {
	out := new(BranchStock)
	if err := c.cc.Invoke(ctx, InventoryService_AdjustBranchStock_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) ReceivePurchase(ctx context.Context, in *ReceivePurchaseRequest, opts ...grpc.CallOption) (*ReceivePurchaseResponse, error) {
	out := new(ReceivePurchaseResponse)
	if err := c.cc.Invoke(ctx, InventoryService_ReceivePurchase_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) ListLowStock(ctx context.Context, in *ListLowStockRequest, opts ...grpc.CallOption) (*ListLowStockResponse, error) {
	out := new(ListLowStockResponse)
	if err := c.cc.Invoke(ctx, InventoryService_ListLowStock_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) ListInventoryMovements(ctx context.Context, in *ListInventoryMovementsRequest, opts ...grpc.CallOption) (*ListInventoryMovementsResponse, error) {
	out := new(ListInventoryMovementsResponse)
	if err := c.cc.Invoke(ctx, InventoryService_ListInventoryMovements_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) SetRecipe(ctx context.Context, in *SetRecipeRequest, opts ...grpc.CallOption) (*RecipeResponse, error) {
	out := new(RecipeResponse)
	if err := c.cc.Invoke(ctx, InventoryService_SetRecipe_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) GetRecipe(ctx context.Context, in *GetRecipeRequest, opts ...grpc.CallOption) (*RecipeResponse, error) {
	out := new(RecipeResponse)
	if err := c.cc.Invoke(ctx, InventoryService_GetRecipe_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) GetTheoreticalStock(ctx context.Context, in *GetTheoreticalStockRequest, opts ...grpc.CallOption) (*TheoreticalStockResponse, error) {
	out := new(TheoreticalStockResponse)
	if err := c.cc.Invoke(ctx, InventoryService_GetTheoreticalStock_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// InventoryServiceServer must embed UnimplementedInventoryServiceServer.
type InventoryServiceServer interface {
	CreateInventoryItem(context.Context, *CreateInventoryItemRequest) (*InventoryItemResponse, error)
	UpdateInventoryPresentation(context.Context, *UpdateInventoryPresentationRequest) (*InventoryItemResponse, error)
	GetInventoryItem(context.Context, *GetInventoryItemRequest) (*InventoryItemResponse, error)
	ListInventoryItems(context.Context, *ListInventoryItemsRequest) (*ListInventoryItemsResponse, error)
	PreviewUnitConversion(context.Context, *PreviewUnitConversionRequest) (*UnitConversion, error)
	AdjustBranchStock(context.Context, *AdjustBranchStockRequest) (*BranchStock, error)
	ReceivePurchase(context.Context, *ReceivePurchaseRequest) (*ReceivePurchaseResponse, error)
	ListLowStock(context.Context, *ListLowStockRequest) (*ListLowStockResponse, error)
	ListInventoryMovements(context.Context, *ListInventoryMovementsRequest) (*ListInventoryMovementsResponse, error)
	SetRecipe(context.Context, *SetRecipeRequest) (*RecipeResponse, error)
	GetRecipe(context.Context, *GetRecipeRequest) (*RecipeResponse, error)
	GetTheoreticalStock(context.Context, *GetTheoreticalStockRequest) (*TheoreticalStockResponse, error)
	mustEmbedUnimplementedInventoryServiceServer()
}

type UnimplementedInventoryServiceServer struct{}

func (UnimplementedInventoryServiceServer) CreateInventoryItem(context.Context, *CreateInventoryItemRequest) (*InventoryItemResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateInventoryItem not implemented")
}
func (UnimplementedInventoryServiceServer) UpdateInventoryPresentation(context.Context, *UpdateInventoryPresentationRequest) (*InventoryItemResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateInventoryPresentation not implemented")
}
func (UnimplementedInventoryServiceServer) GetInventoryItem(context.Context, *GetInventoryItemRequest) (*InventoryItemResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetInventoryItem not implemented")
}
func (UnimplementedInventoryServiceServer) ListInventoryItems(context.Context, *ListInventoryItemsRequest) (*ListInventoryItemsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInventoryItems not implemented")
}
func (UnimplementedInventoryServiceServer) PreviewUnitConversion(context.Context, *PreviewUnitConversionRequest) (*UnitConversion, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PreviewUnitConversion not implemented")
}
func (UnimplementedInventoryServiceServer) AdjustBranchStock(context.Context, *AdjustBranchStockRequest) (*BranchStock, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AdjustBranchStock not implemented")
}
func (UnimplementedInventoryServiceServer) ReceivePurchase(context.Context, *ReceivePurchaseRequest) (*ReceivePurchaseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReceivePurchase not implemented")
}
func (UnimplementedInventoryServiceServer) ListLowStock(context.Context, *ListLowStockRequest) (*ListLowStockResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLowStock not implemented")
}
func (UnimplementedInventoryServiceServer) ListInventoryMovements(context.Context, *ListInventoryMovementsRequest) (*ListInventoryMovementsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInventoryMovements not implemented")
}
func (UnimplementedInventoryServiceServer) SetRecipe(context.Context, *SetRecipeRequest) (*RecipeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetRecipe not implemented")
}
func (UnimplementedInventoryServiceServer) GetRecipe(context.Context, *GetRecipeRequest) (*RecipeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRecipe not implemented")
}
func (UnimplementedInventoryServiceServer) GetTheoreticalStock(context.Context, *GetTheoreticalStockRequest) (*TheoreticalStockResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTheoreticalStock not implemented")
}
func (UnimplementedInventoryServiceServer) mustEmbedUnimplementedInventoryServiceServer() {}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

func _InventoryService_CreateInventoryItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateInventoryItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).CreateInventoryItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_CreateInventoryItem_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).CreateInventoryItem(ctx, req.(*CreateInventoryItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_UpdateInventoryPresentation_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateInventoryPresentationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).UpdateInventoryPresentation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_UpdateInventoryPresentation_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).UpdateInventoryPresentation(ctx, req.(*UpdateInventoryPresentationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_GetInventoryItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetInventoryItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).GetInventoryItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_GetInventoryItem_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).GetInventoryItem(ctx, req.(*GetInventoryItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_ListInventoryItems_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListInventoryItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ListInventoryItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_ListInventoryItems_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).ListInventoryItems(ctx, req.(*ListInventoryItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_PreviewUnitConversion_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PreviewUnitConversionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).PreviewUnitConversion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_PreviewUnitConversion_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).PreviewUnitConversion(ctx, req.(*PreviewUnitConversionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_AdjustBranchStock_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AdjustBranchStockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).AdjustBranchStock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_AdjustBranchStock_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).AdjustBranchStock(ctx, req.(*AdjustBranchStockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_ReceivePurchase_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ReceivePurchaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ReceivePurchase(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_ReceivePurchase_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).ReceivePurchase(ctx, req.(*ReceivePurchaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_ListLowStock_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListLowStockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ListLowStock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_ListLowStock_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).ListLowStock(ctx, req.(*ListLowStockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_ListInventoryMovements_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListInventoryMovementsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ListInventoryMovements(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_ListInventoryMovements_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).ListInventoryMovements(ctx, req.(*ListInventoryMovementsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_SetRecipe_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetRecipeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).SetRecipe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_SetRecipe_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).SetRecipe(ctx, req.(*SetRecipeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_GetRecipe_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetRecipeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).GetRecipe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_GetRecipe_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).GetRecipe(ctx, req.(*GetRecipeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_GetTheoreticalStock_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetTheoreticalStockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).GetTheoreticalStock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_GetTheoreticalStock_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).GetTheoreticalStock(ctx, req.(*GetTheoreticalStockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.pricing.v1.InventoryService",
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateInventoryItem",
			Handler:    _InventoryService_CreateInventoryItem_Handler,
		},
		{
			MethodName: "UpdateInventoryPresentation",
			Handler:    _InventoryService_UpdateInventoryPresentation_Handler,
		},
		{
			MethodName: "GetInventoryItem",
			Handler:    _InventoryService_GetInventoryItem_Handler,
		},
		{
			MethodName: "ListInventoryItems",
			Handler:    _InventoryService_ListInventoryItems_Handler,
		},
		{
			MethodName: "PreviewUnitConversion",
			Handler:    _InventoryService_PreviewUnitConversion_Handler,
		},
		{
			MethodName: "AdjustBranchStock",
			Handler:    _InventoryService_AdjustBranchStock_Handler,
		},
		{
			MethodName: "ReceivePurchase",
			Handler:    _InventoryService_ReceivePurchase_Handler,
		},
		{
			MethodName: "ListLowStock",
			Handler:    _InventoryService_ListLowStock_Handler,
		},
		{
			MethodName: "ListInventoryMovements",
			Handler:    _InventoryService_ListInventoryMovements_Handler,
		},
		{
			MethodName: "SetRecipe",
			Handler:    _InventoryService_SetRecipe_Handler,
		},
		{
			MethodName: "GetRecipe",
			Handler:    _InventoryService_GetRecipe_Handler,
		},
		{
			MethodName: "GetTheoreticalStock",
			Handler:    _InventoryService_GetTheoreticalStock_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pricing/v1/inventory.proto",
}

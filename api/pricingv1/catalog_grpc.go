package pricingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CatalogService_GetProduct_FullMethodName         = "/omnipos.pricing.v1.CatalogService/GetProduct"
	CatalogService_ListPricedProducts_FullMethodName = "/omnipos.pricing.v1.CatalogService/ListPricedProducts"
	CatalogService_ReindexProducts_FullMethodName    = "/omnipos.pricing.v1.CatalogService/ReindexProducts"
	CatalogService_ListCategories_FullMethodName     = "/omnipos.pricing.v1.CatalogService/ListCategories"
)

type CatalogServiceClient interface {
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*ProductResponse, error)
	ListPricedProducts(ctx context.Context, in *ListPricedProductsRequest, opts ...grpc.CallOption) (*ListPricedProductsResponse, error)
	ReindexProducts(ctx context.Context, in *ReindexProductsRequest, opts ...grpc.CallOption) (*ReindexProductsResponse, error)
	ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc}
}

func (c *catalogServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	out := new(ProductResponse)
	if err := c.cc.Invoke(ctx, CatalogService_GetProduct_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ListPricedProducts(ctx context.Context, in *ListPricedProductsRequest, opts ...grpc.CallOption) (*ListPricedProductsResponse, error) {
	out := new(ListPricedProductsResponse)
	if err := c.cc.Invoke(ctx, CatalogService_ListPricedProducts_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ReindexProducts(ctx context.Context, in *ReindexProductsRequest, opts ...grpc.CallOption) (*ReindexProductsResponse, error) {
	out := new(ReindexProductsResponse)
	if err := c.cc.Invoke(ctx, CatalogService_ReindexProducts_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	out := new(ListCategoriesResponse)
	if err := c.cc.Invoke(ctx, CatalogService_ListCategories_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// CatalogServiceServer must embed UnimplementedCatalogServiceServer.
type CatalogServiceServer interface {
	GetProduct(context.Context, *GetProductRequest) (*ProductResponse, error)
	ListPricedProducts(context.Context, *ListPricedProductsRequest) (*ListPricedProductsResponse, error)
	ReindexProducts(context.Context, *ReindexProductsRequest) (*ReindexProductsResponse, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	mustEmbedUnimplementedCatalogServiceServer()
}

type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) GetProduct(context.Context, *GetProductRequest) (*ProductResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetProduct not implemented")
}
func (UnimplementedCatalogServiceServer) ListPricedProducts(context.Context, *ListPricedProductsRequest) (*ListPricedProductsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPricedProducts not implemented")
}
func (UnimplementedCatalogServiceServer) ReindexProducts(context.Context, *ReindexProductsRequest) (*ReindexProductsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReindexProducts not implemented")
}
func (UnimplementedCatalogServiceServer) ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCategories not implemented")
}
func (UnimplementedCatalogServiceServer) mustEmbedUnimplementedCatalogServiceServer() {}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

func _CatalogService_GetProduct_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetProductRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_GetProduct_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).GetProduct(ctx, req.(*GetProductRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_ListPricedProducts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListPricedProductsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListPricedProducts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_ListPricedProducts_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).ListPricedProducts(ctx, req.(*ListPricedProductsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_ReindexProducts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ReindexProductsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ReindexProducts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_ReindexProducts_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).ReindexProducts(ctx, req.(*ReindexProductsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_ListCategories_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListCategoriesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListCategories(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_ListCategories_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).ListCategories(ctx, req.(*ListCategoriesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.pricing.v1.CatalogService",
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetProduct",
			Handler:    _CatalogService_GetProduct_Handler,
		},
		{
			MethodName: "ListPricedProducts",
			Handler:    _CatalogService_ListPricedProducts_Handler,
		},
		{
			MethodName: "ReindexProducts",
			Handler:    _CatalogService_ReindexProducts_Handler,
		},
		{
			MethodName: "ListCategories",
			Handler:    _CatalogService_ListCategories_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pricing/v1/catalog.proto",
}

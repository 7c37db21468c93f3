package pricing

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Service and method names of pricing.v1.PricingService. Messages are
// google.protobuf.Struct so clients in any language can call the service
// with only the well-known types.
const (
	ServiceName = "pricing.v1.PricingService"

	GetDisplayPriceMethod    = "/pricing.v1.PricingService/GetDisplayPrice"
	SelectDisplayPriceMethod = "/pricing.v1.PricingService/SelectDisplayPrice"
	SyncCatalogMethod        = "/pricing.v1.PricingService/SyncCatalog"
)

// PricingServiceServer is the server API for pricing.v1.PricingService.
type PricingServiceServer interface {
	GetDisplayPrice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectDisplayPrice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SyncCatalog(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterPricingServiceServer registers srv on s.
func RegisterPricingServiceServer(s grpc.ServiceRegistrar, srv PricingServiceServer) {
	s.RegisterService(&PricingServiceDesc, srv)
}

// PricingServiceDesc is the grpc.ServiceDesc for pricing.v1.PricingService.
var PricingServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetDisplayPrice", Handler: unaryHandler(GetDisplayPriceMethod, PricingServiceServer.GetDisplayPrice)},
		{MethodName: "SelectDisplayPrice", Handler: unaryHandler(SelectDisplayPriceMethod, PricingServiceServer.SelectDisplayPrice)},
		{MethodName: "SyncCatalog", Handler: unaryHandler(SyncCatalogMethod, PricingServiceServer.SyncCatalog)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pricing/v1/pricing.proto",
}

type structMethod func(PricingServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call structMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PricingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(PricingServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PricingServiceClient is the client API for pricing.v1.PricingService.
type PricingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPricingServiceClient(cc grpc.ClientConnInterface) *PricingServiceClient {
	return &PricingServiceClient{cc: cc}
}

func (c *PricingServiceClient) GetDisplayPrice(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetDisplayPriceMethod, in, opts...)
}

func (c *PricingServiceClient) SelectDisplayPrice(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SelectDisplayPriceMethod, in, opts...)
}

func (c *PricingServiceClient) SyncCatalog(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SyncCatalogMethod, in, opts...)
}

func (c *PricingServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

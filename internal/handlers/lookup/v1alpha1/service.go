package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "pokelookup.lookup.v1alpha1.LookupService"

// Method names, one per lookup
const (
	MethodVarieties  = "Varieties"
	MethodTypes      = "Types"
	MethodAbilities  = "Abilities"
	MethodMoves      = "Moves"
	MethodEggs       = "Eggs"
	MethodGenders    = "Genders"
	MethodEncounters = "Encounters"
	MethodEvolutions = "Evolutions"
	MethodMatchups   = "Matchups"
)

// Request fields understood by every method. Methods ignore the fields
// they have no use for.
const (
	FieldSubject      = "subject"
	FieldSecondary    = "secondary"
	FieldVersion      = "version"
	FieldVersionGroup = "version_group"
	FieldLevel        = "level"
	FieldLanguage     = "language"
	FieldFast         = "fast"
	FieldRecursive    = "recursive"
	FieldSecret       = "secret"
	FieldAll          = "all"
	FieldList         = "list"
)

// Response fields
const (
	FieldRequestID = "request_id"
	FieldLines     = "lines"
)

// LookupServiceServer is the server API for the lookup service. Requests and
// responses are google.protobuf.Struct messages keyed by the Field constants.
type LookupServiceServer interface {
	Varieties(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Types(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Abilities(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Moves(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Eggs(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Genders(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Encounters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Evolutions(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Matchups(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(LookupServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func methodDesc(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv any,
			ctx context.Context,
			dec func(any) error,
			interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(LookupServiceServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// LookupServiceDesc is the grpc.ServiceDesc for the lookup service
var LookupServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LookupServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		methodDesc(MethodVarieties, LookupServiceServer.Varieties),
		methodDesc(MethodTypes, LookupServiceServer.Types),
		methodDesc(MethodAbilities, LookupServiceServer.Abilities),
		methodDesc(MethodMoves, LookupServiceServer.Moves),
		methodDesc(MethodEggs, LookupServiceServer.Eggs),
		methodDesc(MethodGenders, LookupServiceServer.Genders),
		methodDesc(MethodEncounters, LookupServiceServer.Encounters),
		methodDesc(MethodEvolutions, LookupServiceServer.Evolutions),
		methodDesc(MethodMatchups, LookupServiceServer.Matchups),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterLookupServiceServer registers srv on s
func RegisterLookupServiceServer(s grpc.ServiceRegistrar, srv LookupServiceServer) {
	s.RegisterService(&LookupServiceDesc, srv)
}

// LookupServiceClient calls a lookup method by name
type LookupServiceClient interface {
	Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type lookupServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLookupServiceClient creates a client on an established connection
func NewLookupServiceClient(cc grpc.ClientConnInterface) LookupServiceClient {
	return &lookupServiceClient{cc: cc}
}

func (c *lookupServiceClient) Call(
	ctx context.Context,
	method string,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Lines extracts the rendered lines from a lookup response
func Lines(resp *structpb.Struct) []string {
	list := resp.GetFields()[FieldLines].GetListValue()
	lines := make([]string, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		lines = append(lines, v.GetStringValue())
	}
	return lines
}

// RequestID extracts the server-assigned request id from a lookup response
func RequestID(resp *structpb.Struct) string {
	return resp.GetFields()[FieldRequestID].GetStringValue()
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

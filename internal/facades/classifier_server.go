package facades

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-water-quality/internal/models"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Classifier is a model that can be served over gRPC.
type Classifier interface {
	Classify(ctx context.Context, features []float64) (models.Classification, error)
}

// PredictServer is the server side of the classifier service.
type PredictServer interface {
	Predict(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// ClassifierServiceDesc describes potability.PotabilityClassifier.
var ClassifierServiceDesc = grpc.ServiceDesc{
	ServiceName: classifierService,
	HandlerType: (*PredictServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Predict", Handler: predictHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "potability.proto",
}

func predictHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PredictServer).Predict(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: predictMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PredictServer).Predict(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// classifierServer adapts a Classifier to PredictServer.
type classifierServer struct {
	model Classifier
}

// RegisterClassifierServer serves model as potability.PotabilityClassifier on s.
func RegisterClassifierServer(s grpc.ServiceRegistrar, model Classifier) {
	s.RegisterService(&ClassifierServiceDesc, &classifierServer{model: model})
}

func (s *classifierServer) Predict(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	list := req.GetFields()["features"].GetListValue()
	if list == nil {
		return nil, errors.New("features is missing")
	}

	features := make([]float64, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, errors.New("features must be numbers")
		}
		features = append(features, n.NumberValue)
	}

	c, err := s.model.Classify(ctx, features)
	if err != nil {
		return nil, err
	}

	return structpb.NewStruct(map[string]any{
		"score":   c.Score,
		"potable": c.Potable,
	})
}

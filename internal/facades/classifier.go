package facades

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-water-quality/internal/logger"
	"github.com/sbilibin2017/gw-water-quality/internal/models"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	classifierService = "potability.PotabilityClassifier"
	predictMethod     = "/" + classifierService + "/Predict"

	// potableThreshold is applied when the model returns a score only.
	potableThreshold = 0.5
)

var ErrMalformedClassifierResponse = errors.New("malformed classifier response")

// ClassifierGRPCFacade calls a remote potability model over gRPC.
// Requests and responses are google.protobuf.Struct messages:
// {features: [...], feature_names: [...]} -> {score: n, potable?: b}.
type ClassifierGRPCFacade struct {
	conn grpc.ClientConnInterface
}

// NewClassifierGRPCFacade creates a new facade with a gRPC connection.
func NewClassifierGRPCFacade(conn grpc.ClientConnInterface) *ClassifierGRPCFacade {
	return &ClassifierGRPCFacade{conn: conn}
}

// Classify sends the feature vector and returns the model decision.
func (f *ClassifierGRPCFacade) Classify(ctx context.Context, features []float64) (models.Classification, error) {
	req, err := newPredictRequest(features)
	if err != nil {
		return models.Classification{}, err
	}

	resp := &structpb.Struct{}
	if err := f.conn.Invoke(ctx, predictMethod, req, resp); err != nil {
		logger.Log.Errorw("failed to classify sample via gRPC", "error", err)
		return models.Classification{}, err
	}

	return parsePredictResponse(resp)
}

func newPredictRequest(features []float64) (*structpb.Struct, error) {
	values := make([]any, 0, len(features))
	for _, v := range features {
		values = append(values, v)
	}
	names := make([]any, 0, len(models.Features))
	for _, name := range models.Features {
		names = append(names, name)
	}

	return structpb.NewStruct(map[string]any{
		"features":      values,
		"feature_names": names,
	})
}

func parsePredictResponse(resp *structpb.Struct) (models.Classification, error) {
	score, ok := resp.GetFields()["score"]
	if !ok {
		return models.Classification{}, fmt.Errorf("%w: score is missing", ErrMalformedClassifierResponse)
	}
	n, ok := score.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return models.Classification{}, fmt.Errorf("%w: score is not a number", ErrMalformedClassifierResponse)
	}

	c := models.Classification{Score: n.NumberValue, Potable: n.NumberValue >= potableThreshold}
	if potable, ok := resp.GetFields()["potable"]; ok {
		if b, ok := potable.GetKind().(*structpb.Value_BoolValue); ok {
			c.Potable = b.BoolValue
		}
	}
	return c, nil
}

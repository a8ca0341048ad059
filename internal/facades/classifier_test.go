package facades

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/sbilibin2017/gw-water-quality/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

// --- Fake models ---
type fakeClassifier struct {
	got    []float64
	result models.Classification
	err    error
}

func (f *fakeClassifier) Classify(_ context.Context, features []float64) (models.Classification, error) {
	f.got = features
	return f.result, f.err
}

type rawPredictServer struct {
	resp *structpb.Struct
}

func (s *rawPredictServer) Predict(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return s.resp, nil
}

func dialBufconn(t *testing.T, register func(s *grpc.Server)) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// --- Tests ---
func TestClassify_RoundTrip(t *testing.T) {
	model := &fakeClassifier{result: models.Classification{Score: 0.82, Potable: true}}
	conn := dialBufconn(t, func(s *grpc.Server) { RegisterClassifierServer(s, model) })
	facade := NewClassifierGRPCFacade(conn)

	features := models.DefaultParameters().Values()
	c, err := facade.Classify(context.Background(), features)

	require.NoError(t, err)
	assert.Equal(t, models.Classification{Score: 0.82, Potable: true}, c)
	assert.Equal(t, features, model.got)
}

func TestClassify_RemoteError(t *testing.T) {
	model := &fakeClassifier{err: errors.New("model unavailable")}
	conn := dialBufconn(t, func(s *grpc.Server) { RegisterClassifierServer(s, model) })
	facade := NewClassifierGRPCFacade(conn)

	_, err := facade.Classify(context.Background(), models.DefaultParameters().Values())
	assert.Error(t, err)
}

func TestClassify_ScoreOnlyUsesThreshold(t *testing.T) {
	tests := []struct {
		name    string
		score   float64
		potable bool
	}{
		{"above", 0.7, true},
		{"boundary", 0.5, true},
		{"below", 0.3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := structpb.NewStruct(map[string]any{"score": tt.score})
			require.NoError(t, err)

			conn := dialBufconn(t, func(s *grpc.Server) {
				s.RegisterService(&ClassifierServiceDesc, &rawPredictServer{resp: resp})
			})

			c, err := NewClassifierGRPCFacade(conn).Classify(context.Background(), []float64{1, 2, 3})
			require.NoError(t, err)
			assert.Equal(t, tt.score, c.Score)
			assert.Equal(t, tt.potable, c.Potable)
		})
	}
}

func TestClassify_MalformedResponse(t *testing.T) {
	resp, err := structpb.NewStruct(map[string]any{"score": "high"})
	require.NoError(t, err)

	conn := dialBufconn(t, func(s *grpc.Server) {
		s.RegisterService(&ClassifierServiceDesc, &rawPredictServer{resp: resp})
	})

	_, err = NewClassifierGRPCFacade(conn).Classify(context.Background(), []float64{1})
	assert.ErrorIs(t, err, ErrMalformedClassifierResponse)
}

func TestNewPredictRequest(t *testing.T) {
	req, err := newPredictRequest([]float64{7, 150})
	require.NoError(t, err)

	features := req.GetFields()["features"].GetListValue().GetValues()
	require.Len(t, features, 2)
	assert.Equal(t, 7.0, features[0].GetNumberValue())

	names := req.GetFields()["feature_names"].GetListValue().GetValues()
	require.Len(t, names, len(models.Features))
	assert.Equal(t, models.FeaturePH, names[0].GetStringValue())
}

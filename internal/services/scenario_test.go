package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-water-quality/internal/classifier"
	"github.com/sbilibin2017/gw-water-quality/internal/jwt"
	"github.com/sbilibin2017/gw-water-quality/internal/models"
	"github.com/sbilibin2017/gw-water-quality/internal/repositories"
	"github.com/sbilibin2017/gw-water-quality/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHistory is an append-only prediction log.
type fakeHistory struct {
	mu      sync.Mutex
	records []models.PredictionDB
}

func (f *fakeHistory) Save(_ context.Context, p *models.PredictionDB) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.Seq = int64(len(f.records) + 1)
	f.records = append(f.records, *p)
	return nil
}

func (f *fakeHistory) ListByOwner(_ context.Context, username string) ([]models.PredictionDB, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.PredictionDB{}
	for _, r := range f.records {
		if r.Username == username {
			out = append(out, r)
		}
	}
	return out, nil
}

type app struct {
	auth       *services.AuthService
	prediction *services.PredictionService
	history    *services.HistoryService
	store      *fakeHistory
}

func newApp() *app {
	users := &fakeUsers{accounts: map[string]*models.AccountDB{}}
	store := &fakeHistory{}
	tick := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return &app{
		auth:       services.NewAuthService(users, users, repositories.NewSessionMemoryRepository(), jwt.New(jwt.WithSecretKey("test"))),
		prediction: services.NewPredictionService(classifier.NewBaseline(classifier.DefaultThreshold), store, services.WithClock(clock)),
		history:    services.NewHistoryService(store),
		store:      store,
	}
}

func referenceSample() map[string]any {
	return map[string]any{
		"pH": 7.0, "Hardness": 150.0, "Solids": 500.0, "Chloramines": 4.0, "Sulfate": 250.0,
		"Conductivity": 500.0, "Organic_carbon": 2.0, "Trihalomethanes": 80.0, "Turbidity": 1.0,
	}
}

func TestScenario_SignupLoginSubmitDashboard(t *testing.T) {
	a := newApp()
	ctx := context.Background()

	require.NoError(t, a.auth.Signup(ctx, "alice", "Secret1!"))
	token, err := a.auth.Login(ctx, "alice", "Secret1!")
	require.NoError(t, err)

	username, err := a.auth.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	result, err := a.prediction.Submit(ctx, username, referenceSample())
	require.NoError(t, err)

	records, err := a.store.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "alice", records[0].Username)

	view, err := a.history.Dashboard(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)
	row := view.Rows[0]
	assert.Equal(t, result.Parameters, row.Parameters)
	assert.Equal(t, 7.0, row.Parameters.PH)
	assert.Equal(t, result.Score, row.Score)
	assert.Equal(t, result.Potable, row.Potable)
	assert.Equal(t, result.Label, row.Label)
}

func TestScenario_SubmissionsAppendInOrder(t *testing.T) {
	a := newApp()
	ctx := context.Background()

	for _, ph := range []float64{6.0, 7.0, 8.0} {
		sample := referenceSample()
		sample["pH"] = ph
		_, err := a.prediction.Submit(ctx, "alice", sample)
		require.NoError(t, err)
	}

	view, err := a.history.Dashboard(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, view.Rows, 3)
	for i, ph := range []float64{6.0, 7.0, 8.0} {
		assert.Equal(t, ph, view.Rows[i].Parameters.PH)
	}
	assert.True(t, view.Rows[0].Timestamp.Before(view.Rows[2].Timestamp))
}

func TestScenario_InvalidSubmissionAppendsNothing(t *testing.T) {
	a := newApp()
	ctx := context.Background()

	sample := referenceSample()
	sample["Hardness"] = "hard"
	_, err := a.prediction.Submit(ctx, "alice", sample)
	assert.ErrorIs(t, err, services.ErrInvalidParameters)

	view, err := a.history.Dashboard(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, services.MessageNoHistory, view.Message)
	assert.Empty(t, view.Rows)
}

func TestScenario_OwnershipIsolation(t *testing.T) {
	a := newApp()
	ctx := context.Background()

	_, err := a.prediction.Submit(ctx, "alice", referenceSample())
	require.NoError(t, err)
	_, err = a.prediction.Submit(ctx, "bob", referenceSample())
	require.NoError(t, err)
	_, err = a.prediction.Submit(ctx, "bob", referenceSample())
	require.NoError(t, err)

	aliceView, err := a.history.Dashboard(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, aliceView.Rows, 1)

	bobView, err := a.history.Dashboard(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, bobView.Rows, 2)

	carolView, err := a.history.Dashboard(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, services.MessageNoHistory, carolView.Message)
}

func TestScenario_WrongPasswordStaysAnonymous(t *testing.T) {
	a := newApp()
	ctx := context.Background()

	require.NoError(t, a.auth.Signup(ctx, "alice", "Secret1!"))
	token, err := a.auth.Login(ctx, "alice", "Wrong1!!")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.Empty(t, token)

	// the account can still log in and log out twice
	token, err = a.auth.Login(ctx, "alice", "Secret1!")
	require.NoError(t, err)
	require.NoError(t, a.auth.Logout(ctx, token))
	require.NoError(t, a.auth.Logout(ctx, token))
	_, err = a.auth.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)
}

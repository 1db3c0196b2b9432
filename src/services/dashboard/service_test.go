package dashboard

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"campus-check-dashboard/src/models"
	"campus-check-dashboard/src/services/aggregation"
	"campus-check-dashboard/src/services/apiclient"
	"campus-check-dashboard/src/services/session"
	"campus-check-dashboard/src/storage"
	"campus-check-dashboard/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	ana   = models.StaffMember{ID: "1", FirstName: "Ana", AssignedGate: 2}
	day   = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	inOut = []models.AttendanceRecord{
		{ID: "10", StaffID: "1", Gate: 2, Type: models.RecordIn, CreatedAt: day},
		{ID: "11", StaffID: "1", Gate: 2, Type: models.RecordOut, CreatedAt: day.Add(10 * time.Hour)},
	}
)

// loggedIn wires gateway, client and dashboard against a fake server, already logged in.
func loggedIn(t *testing.T) (*Service, *testutil.FakeServer, *session.Gateway) {
	t.Helper()
	srv := testutil.NewFakeServer(t, "admin", "s3cret")
	srv.SetData([]models.StaffMember{ana}, inOut)

	base := apiclient.New(srv.URL, nil, time.Second)
	gw := session.NewGateway(storage.NewMemoryStore(), base)
	require.NoError(t, gw.Login(context.Background(), "admin", "s3cret"))

	return NewService(base.WithTokenSource(gw), aggregation.Options{GateCount: 7}), srv, gw
}

func TestLoadBuildsView(t *testing.T) {
	svc, srv, _ := loggedIn(t)

	view, err := svc.Load(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, view.CycleID)
	assert.Equal(t, models.Summary{Entries: 1, Exits: 1}, view.Summary)
	assert.Equal(t, []models.DateBucket{{Date: "2024-01-01", Entries: 1, Exits: 1}}, view.ByDate)
	assert.Equal(t, models.GateBucket{Gate: 2, Entries: 1, Exits: 1}, view.ByGate[1])
	assert.Equal(t, []models.StaffAttendance{{Staff: ana, Count: 2}}, view.ByStaff)

	current, errText := svc.Current()
	assert.Equal(t, view, current)
	assert.Empty(t, errText)

	var paths []string
	for _, r := range srv.Requests() {
		if r.Path == "/admin/login" {
			continue
		}
		paths = append(paths, r.Path)
		assert.Equal(t, "Bearer "+srv.Token, r.Authorization)
	}
	assert.ElementsMatch(t, []string{"/staff/", "/record/"}, paths)
}

func TestInitialViewIsEmpty(t *testing.T) {
	svc := NewService(nil, aggregation.Options{})

	view, errText := svc.Current()
	assert.Empty(t, errText)
	assert.Len(t, view.ByGate, aggregation.DefaultGateCount)
	assert.Empty(t, view.ByStaff)
}

func TestAnyFetchFailureKeepsPreviousView(t *testing.T) {
	for _, path := range []string{"/staff/", "/record/"} {
		t.Run(path, func(t *testing.T) {
			svc, srv, _ := loggedIn(t)
			ctx := context.Background()

			first, err := svc.Load(ctx)
			require.NoError(t, err)

			srv.SetData([]models.StaffMember{}, []models.AttendanceRecord{})
			srv.FailWith(path, http.StatusInternalServerError)

			view, err := svc.Load(ctx)
			var httpErr *apiclient.HTTPError
			require.True(t, errors.As(err, &httpErr), "got %v", err)
			assert.Equal(t, first, view)

			current, errText := svc.Current()
			assert.Equal(t, first, current)
			assert.Equal(t, FetchErrorMessage, errText)

			srv.FailWith(path, 0)
			_, err = svc.Load(ctx)
			require.NoError(t, err)
			_, errText = svc.Current()
			assert.Empty(t, errText, "a successful load clears the error")
		})
	}
}

func TestMalformedBodyIsFetchError(t *testing.T) {
	svc, srv, _ := loggedIn(t)
	srv.ServeRaw("/record/", `{"records": [{"createdAt": "yesterday"}]}`)

	_, err := svc.Load(context.Background())

	var decErr *apiclient.DecodeError
	assert.True(t, errors.As(err, &decErr), "got %v", err)
	_, errText := svc.Current()
	assert.Equal(t, FetchErrorMessage, errText)
}

func TestMissingKeyIsFetchError(t *testing.T) {
	cases := map[string]struct {
		path string
		body string
	}{
		"records key absent": {path: "/record/", body: `{"message":"maintenance"}`},
		"records null":       {path: "/record/", body: `{"records":null}`},
		"staff body null":    {path: "/staff/", body: `null`},
		"staff key absent":   {path: "/staff/", body: `{}`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			svc, srv, _ := loggedIn(t)
			ctx := context.Background()

			first, err := svc.Load(ctx)
			require.NoError(t, err)

			srv.ServeRaw(tc.path, tc.body)
			view, err := svc.Load(ctx)

			var decErr *apiclient.DecodeError
			require.True(t, errors.As(err, &decErr), "got %v", err)
			assert.Equal(t, tc.path, decErr.Path)
			assert.Equal(t, first, view)

			current, errText := svc.Current()
			assert.Equal(t, first, current, "last good view stays in place")
			assert.Equal(t, FetchErrorMessage, errText)
		})
	}
}

func TestEmptyListsAreValid(t *testing.T) {
	svc, srv, _ := loggedIn(t)
	srv.ServeRaw("/staff/", `{"staff":[]}`)
	srv.ServeRaw("/record/", `{"records":[]}`)

	view, err := svc.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Summary{}, view.Summary)
	assert.Empty(t, view.ByStaff)
	assert.Len(t, view.ByGate, 7)
}

// barrierGetter blocks each Get until both fetches have started.
type barrierGetter struct {
	started sync.WaitGroup
	both    chan struct{}
}

func newBarrierGetter() *barrierGetter {
	b := &barrierGetter{both: make(chan struct{})}
	b.started.Add(2)
	go func() {
		b.started.Wait()
		close(b.both)
	}()
	return b
}

func (b *barrierGetter) Get(ctx context.Context, path string, out any) error {
	b.started.Done()
	select {
	case <-b.both:
	case <-time.After(2 * time.Second):
		return errors.New(path + ": the other fetch never started")
	}
	switch res := out.(type) {
	case *models.StaffResponse:
		res.Staff = []models.StaffMember{ana}
	case *models.RecordResponse:
		res.Records = inOut
	}
	return nil
}

func TestFetchesRunConcurrently(t *testing.T) {
	view, err := NewService(newBarrierGetter(), aggregation.Options{}).Load(context.Background())

	require.NoError(t, err, "both fetches must be in flight together")
	assert.Equal(t, models.Summary{Entries: 1, Exits: 1}, view.Summary)
}

// failFastGetter fails /staff/ at once and holds /record/ until its context ends.
type failFastGetter struct {
	cancelled chan struct{}
}

func (f *failFastGetter) Get(ctx context.Context, path string, out any) error {
	if path == "/staff/" {
		return assert.AnError
	}
	select {
	case <-ctx.Done():
		close(f.cancelled)
		return ctx.Err()
	case <-time.After(5 * time.Second):
		return errors.New("record fetch was never cancelled")
	}
}

func TestFailingFetchCancelsTheOther(t *testing.T) {
	api := &failFastGetter{cancelled: make(chan struct{})}
	svc := NewService(api, aggregation.Options{})

	start := time.Now()
	_, err := svc.Load(context.Background())

	require.ErrorIs(t, err, assert.AnError)
	assert.Less(t, time.Since(start), 2*time.Second)
	select {
	case <-api.cancelled:
	default:
		t.Fatal("record fetch did not see cancellation")
	}
	_, errText := svc.Current()
	assert.Equal(t, FetchErrorMessage, errText)
}

func TestRejectedTokenEndsSession(t *testing.T) {
	svc, srv, gw := loggedIn(t)
	srv.RotateToken(t)

	_, err := svc.Load(context.Background())

	assert.Error(t, err)
	assert.False(t, gw.IsAuthenticated(context.Background()))
}

type MockGetter struct {
	mock.Mock
}

func (m *MockGetter) Get(ctx context.Context, path string, out any) error {
	args := m.Called(ctx, path, out)
	return args.Error(0)
}

func TestLoadWithMockedClient(t *testing.T) {
	api := new(MockGetter)
	api.On("Get", mock.Anything, "/staff/", mock.AnythingOfType("*models.StaffResponse")).
		Run(func(args mock.Arguments) {
			args.Get(2).(*models.StaffResponse).Staff = []models.StaffMember{ana}
		}).Return(nil)
	api.On("Get", mock.Anything, "/record/", mock.AnythingOfType("*models.RecordResponse")).
		Run(func(args mock.Arguments) {
			args.Get(2).(*models.RecordResponse).Records = inOut[:1]
		}).Return(nil)

	view, err := NewService(api, aggregation.Options{GateCount: 3}).Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, view.ByGate, 3)
	assert.Equal(t, models.Summary{Entries: 1}, view.Summary)
	assert.Equal(t, 1, view.ByStaff[0].Count)
	api.AssertExpectations(t)
}

func TestLoadUnauthenticatedFails(t *testing.T) {
	srv := testutil.NewFakeServer(t, "admin", "s3cret")
	gw := session.NewGateway(storage.NewMemoryStore(), apiclient.New(srv.URL, nil, time.Second))
	svc := NewService(apiclient.New(srv.URL, gw, time.Second), aggregation.Options{})

	_, err := svc.Load(context.Background())

	var httpErr *apiclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

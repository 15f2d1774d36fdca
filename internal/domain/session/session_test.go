package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrisnap/internal/adapters/storage/memory"
	"nutrisnap/internal/domain/accounts"
	"nutrisnap/internal/domain/session"
	"nutrisnap/internal/middleware"
	"nutrisnap/internal/ports/auth"
)

type failingRepo struct{ err error }

func (r failingRepo) CreateUser(context.Context, accounts.User) error { return r.err }
func (r failingRepo) GetUser(context.Context, string) (accounts.User, error) {
	return accounts.User{}, r.err
}
func (r failingRepo) GetProfile(context.Context, string) (accounts.Profile, error) {
	return accounts.Profile{}, accounts.ErrNotFound
}

func strPtr(s string) *string { return &s }

func TestNotifier_SubscribeUnsubscribe(t *testing.T) {
	n := session.NewNotifier()

	var got []session.Event
	unsubscribe := n.Subscribe(func(e session.Event) { got = append(got, e) })

	n.Publish(session.Event{Type: session.EventUserUpdated, UserID: "u1"})
	unsubscribe()
	unsubscribe()
	n.Publish(session.Event{Type: session.EventSignedOut, UserID: "u1"})

	require.Len(t, got, 1)
	assert.Equal(t, session.EventUserUpdated, got[0].Type)
}

func TestNotifier_ConcurrentPublish(t *testing.T) {
	n := session.NewNotifier()

	var (
		mu    sync.Mutex
		count int
	)
	n.Subscribe(func(session.Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.Publish(session.Event{Type: session.EventUserUpdated})
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, count)
}

func TestDestination(t *testing.T) {
	cases := []struct {
		name  string
		state session.State
		want  session.Screen
	}{
		{"logged out", session.State{}, session.ScreenLogin},
		{"logged out ignores flag", session.State{HasCompletedOnboarding: true}, session.ScreenLogin},
		{"pending onboarding", session.State{LoggedIn: true}, session.ScreenOnboarding},
		{"complete", session.State{LoggedIn: true, HasCompletedOnboarding: true}, session.ScreenTabs},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, session.Destination(tc.state))
		})
	}
}

func TestResolve_NoClaims(t *testing.T) {
	svc := session.NewService(accounts.NewService(memory.NewAccountsRepo()), nil, session.Options{})

	st, err := svc.Resolve(context.Background(), auth.Claims{}, false)
	require.NoError(t, err)
	assert.False(t, st.LoggedIn)
	assert.Nil(t, st.User)
}

func TestResolve_MissingRowsTolerated(t *testing.T) {
	svc := session.NewService(accounts.NewService(memory.NewAccountsRepo()), nil, session.Options{})

	st, err := svc.Resolve(context.Background(), auth.Claims{UserID: "u1", Email: "a@b.c"}, true)
	require.NoError(t, err)
	assert.True(t, st.LoggedIn)
	assert.False(t, st.HasCompletedOnboarding)
	assert.Nil(t, st.Profile)
	assert.Nil(t, st.User)
	assert.Equal(t, "a@b.c", st.Email)
}

func TestResolve_LoadsProfileAndUser(t *testing.T) {
	repo := memory.NewAccountsRepo()
	require.NoError(t, repo.SeedProfile(accounts.Profile{ID: "u1", FullName: strPtr("Ada Lovelace")}))
	acc := accounts.NewService(repo)
	_, err := acc.CreateUser(context.Background(), accounts.User{ID: "u1", OnboardingCompleted: true})
	require.NoError(t, err)

	svc := session.NewService(acc, nil, session.Options{})
	st, err := svc.Resolve(context.Background(), auth.Claims{UserID: "u1"}, true)
	require.NoError(t, err)

	assert.True(t, st.HasCompletedOnboarding)
	require.NotNil(t, st.Profile)
	assert.Equal(t, "Ada", st.Profile.FirstName())
	require.NotNil(t, st.User)
}

func TestResolve_BackendErrorFails(t *testing.T) {
	boom := errors.New("boom")
	svc := session.NewService(accounts.NewService(failingRepo{err: boom}), nil, session.Options{})

	_, err := svc.Resolve(context.Background(), auth.Claims{UserID: "u1"}, true)
	assert.ErrorIs(t, err, boom)
}

func TestResolve_CacheEvictedOnUserUpdated(t *testing.T) {
	n := session.NewNotifier()
	acc := accounts.NewService(memory.NewAccountsRepo())
	svc := session.NewService(acc, n, session.Options{})
	ctx := context.Background()
	claims := auth.Claims{UserID: "u1"}

	st, err := svc.Resolve(ctx, claims, true)
	require.NoError(t, err)
	require.False(t, st.HasCompletedOnboarding)

	_, err = acc.CreateUser(ctx, accounts.User{ID: "u1", OnboardingCompleted: true})
	require.NoError(t, err)

	// sigue en cache
	st, err = svc.Resolve(ctx, claims, true)
	require.NoError(t, err)
	assert.False(t, st.HasCompletedOnboarding)

	n.Publish(session.Event{Type: session.EventUserUpdated, UserID: "u1"})

	st, err = svc.Resolve(ctx, claims, true)
	require.NoError(t, err)
	assert.True(t, st.HasCompletedOnboarding)
}

// gatedRepo bloquea GetUser hasta que se cierre release, después de leer
// el estado viejo.
type gatedRepo struct {
	accounts.Repository
	entered chan struct{}
	release chan struct{}
}

func (r *gatedRepo) GetUser(ctx context.Context, id string) (accounts.User, error) {
	u, err := r.Repository.GetUser(ctx, id)
	r.entered <- struct{}{}
	<-r.release
	return u, err
}

func TestResolve_StaleFetchNotCachedAfterEviction(t *testing.T) {
	base := memory.NewAccountsRepo()
	repo := &gatedRepo{Repository: base, entered: make(chan struct{}, 1), release: make(chan struct{})}
	n := session.NewNotifier()
	svc := session.NewService(accounts.NewService(repo), n, session.Options{})
	ctx := context.Background()
	claims := auth.Claims{UserID: "u1"}

	type result struct {
		st  session.State
		err error
	}
	done := make(chan result, 1)
	go func() {
		st, err := svc.Resolve(ctx, claims, true)
		done <- result{st, err}
	}()

	// el fetch en vuelo ya leyó "sin onboarding"
	<-repo.entered
	require.NoError(t, base.CreateUser(ctx, accounts.User{ID: "u1", OnboardingCompleted: true}))
	n.Publish(session.Event{Type: session.EventUserUpdated, UserID: "u1"})
	close(repo.release)

	stale := <-done
	require.NoError(t, stale.err)
	assert.False(t, stale.st.HasCompletedOnboarding)

	st, err := svc.Resolve(ctx, claims, true)
	require.NoError(t, err)
	assert.True(t, st.HasCompletedOnboarding)
	assert.Equal(t, session.ScreenTabs, session.Destination(st))
}

type recordingSignOut struct{ tokens []string }

func (s *recordingSignOut) SignOut(_ context.Context, token string) error {
	s.tokens = append(s.tokens, token)
	return nil
}

func newTestServer(t *testing.T, so session.SignOuter) (*httptest.Server, *session.Notifier) {
	t.Helper()

	n := session.NewNotifier()
	svc := session.NewService(accounts.NewService(memory.NewAccountsRepo()), n, session.Options{})

	r := chi.NewRouter()
	r.Use(middleware.AuthContext(nil))
	session.RegisterRoutes(r, svc, n, so)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, n
}

func TestHandler_GetSession(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	// sin usuario
	resp, err := http.Get(ts.URL + "/me/session")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["is_logged_in"])
	assert.Equal(t, "login", body["destination"])

	// con usuario dev
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/me/session", nil)
	req.Header.Set(middleware.DebugUserHeader, "u1")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()

	body = map[string]any{}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body))
	assert.Equal(t, true, body["is_logged_in"])
	assert.Equal(t, "onboarding", body["destination"])
	assert.Nil(t, body["user_data"])
}

func TestHandler_DeleteSession(t *testing.T) {
	so := &recordingSignOut{}
	ts, n := newTestServer(t, so)

	var events []session.Event
	n.Subscribe(func(e session.Event) { events = append(events, e) })

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/me/session", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, _ = http.NewRequest(http.MethodDelete, ts.URL+"/me/session", nil)
	req.Header.Set(middleware.DebugUserHeader, "u1")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	require.Len(t, events, 1)
	assert.Equal(t, session.EventSignedOut, events[0].Type)
	assert.Equal(t, "u1", events[0].UserID)
	// modo dev: sin token no se llama al proveedor
	assert.Empty(t, so.tokens)
}

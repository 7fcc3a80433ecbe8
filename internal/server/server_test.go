package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roam/internal/models"
	"roam/internal/store"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := NewServer(":0", store.NewMemoryStore(), "test-secret", 30, []string{"*"})
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, token string, body any) (int, envelope) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func register(t *testing.T, ts *httptest.Server, email, password, name string) authData {
	t.Helper()
	status, env := doJSON(t, http.MethodPost, ts.URL+"/auth/register", "", map[string]string{
		"email": email, "password": password, "name": name,
	})
	require.Equal(t, http.StatusCreated, status)
	var data authData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data
}

func completeProfile(t *testing.T, ts *httptest.Server, token string) {
	t.Helper()
	status, _ := doJSON(t, http.MethodPut, ts.URL+"/profile", token, map[string]any{
		"bio":               "here for the hiking photos",
		"isProfileComplete": true,
	})
	require.Equal(t, http.StatusOK, status)
}

func TestRegister_Defaults(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	data := register(t, ts, "a@x.com", "pass-a", "Alice")
	assert.Equal(t, "a@x.com", data.User.Email)
	assert.Equal(t, models.TierFree, data.User.Subscription)
	assert.Equal(t, 5, data.User.LikesRemaining)
	assert.False(t, data.User.IsProfileComplete)
	assert.NotEmpty(t, data.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	register(t, ts, "a@x.com", "pass-a", "Alice")
	status, env := doJSON(t, http.MethodPost, ts.URL+"/auth/register", "", map[string]string{
		"email": "a@x.com", "password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "already registered")
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	register(t, ts, "a@x.com", "pass-a", "Alice")

	status, env := doJSON(t, http.MethodPost, ts.URL+"/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "pass-a",
	})
	require.Equal(t, http.StatusOK, status)
	var data authData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Token)

	// Wrong password and unknown email must be indistinguishable.
	status, envBadPass := doJSON(t, http.MethodPost, ts.URL+"/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	status, envNoUser := doJSON(t, http.MethodPost, ts.URL+"/auth/login", "", map[string]string{
		"email": "nobody@x.com", "password": "pass-a",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, envBadPass.Message, envNoUser.Message)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/auth/me"},
		{http.MethodPut, "/profile"},
		{http.MethodGet, "/profiles/discover"},
		{http.MethodPost, "/swipe"},
		{http.MethodGet, "/matches"},
		{http.MethodPost, "/subscribe/gold"},
	} {
		status, _ := doJSON(t, route.method, ts.URL+route.path, "", nil)
		assert.Equalf(t, http.StatusUnauthorized, status, "%s %s", route.method, route.path)
	}
}

func TestMe_StripsPassword(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	data := register(t, ts, "a@x.com", "pass-a", "Alice")

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+data.Token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "a@x.com")
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "$2a$")
}

func TestDiscover_OnlyCompleteUnswipedProfiles(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	alice := register(t, ts, "a@x.com", "pass-a", "Alice")
	bob := register(t, ts, "b@x.com", "pass-b", "Bob")
	register(t, ts, "c@x.com", "pass-c", "Carol") // never completes profile

	status, env := doJSON(t, http.MethodGet, ts.URL+"/profiles/discover", alice.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var candidates []models.User
	require.NoError(t, json.Unmarshal(env.Data, &candidates))
	assert.Empty(t, candidates)

	completeProfile(t, ts, bob.Token)

	status, env = doJSON(t, http.MethodGet, ts.URL+"/profiles/discover", alice.Token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &candidates))
	require.Len(t, candidates, 1)
	assert.Equal(t, bob.User.ID, candidates[0].ID)

	// After swiping, Bob drops out of Alice's feed.
	status, _ = doJSON(t, http.MethodPost, ts.URL+"/swipe", alice.Token, map[string]string{
		"targetUserId": bob.User.ID, "direction": "left",
	})
	require.Equal(t, http.StatusOK, status)
	status, env = doJSON(t, http.MethodGet, ts.URL+"/profiles/discover", alice.Token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &candidates))
	assert.Empty(t, candidates)
}

func TestMutualSwipeScenario(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	alice := register(t, ts, "a@x.com", "pass-a", "Alice")
	bob := register(t, ts, "b@x.com", "pass-b", "Bob")

	type swipeResult struct {
		Match bool `json:"match"`
	}

	status, env := doJSON(t, http.MethodPost, ts.URL+"/swipe", alice.Token, map[string]string{
		"targetUserId": bob.User.ID, "direction": "right",
	})
	require.Equal(t, http.StatusOK, status)
	var res swipeResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.False(t, res.Match)

	status, env = doJSON(t, http.MethodPost, ts.URL+"/swipe", bob.Token, map[string]string{
		"targetUserId": alice.User.ID, "direction": "right",
	})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.True(t, res.Match)

	type matchEntry struct {
		MatchID string      `json:"matchId"`
		User    models.User `json:"user"`
	}
	status, env = doJSON(t, http.MethodGet, ts.URL+"/matches", alice.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var entries []matchEntry
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, bob.User.ID, entries[0].User.ID)

	status, env = doJSON(t, http.MethodGet, ts.URL+"/matches", bob.Token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, alice.User.ID, entries[0].User.ID)
}

func TestSwipe_Validation(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	alice := register(t, ts, "a@x.com", "pass-a", "Alice")
	bob := register(t, ts, "b@x.com", "pass-b", "Bob")

	status, _ := doJSON(t, http.MethodPost, ts.URL+"/swipe", alice.Token, map[string]string{
		"targetUserId": bob.User.ID, "direction": "up",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, http.MethodPost, ts.URL+"/swipe", alice.Token, map[string]string{
		"targetUserId": alice.User.ID, "direction": "right",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSubscriptions(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	alice := register(t, ts, "a@x.com", "pass-a", "Alice")

	// catalog is public
	status, env := doJSON(t, http.MethodGet, ts.URL+"/subscriptions", "", nil)
	require.Equal(t, http.StatusOK, status)
	var plans []models.Plan
	require.NoError(t, json.Unmarshal(env.Data, &plans))
	require.Len(t, plans, 3)

	status, env = doJSON(t, http.MethodPost, ts.URL+"/subscribe/gold", alice.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var sub struct {
		Success bool   `json:"success"`
		Plan    string `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sub))
	assert.True(t, sub.Success)
	assert.Equal(t, "gold", sub.Plan)

	status, env = doJSON(t, http.MethodGet, ts.URL+"/auth/me", alice.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var me models.User
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "gold", me.Subscription)
	assert.Equal(t, models.UnlimitedLikes, me.LikesRemaining)

	status, _ = doJSON(t, http.MethodPost, ts.URL+"/subscribe/diamond", alice.Token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

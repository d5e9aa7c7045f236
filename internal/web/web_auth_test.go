package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcubed/cubed/internal/model"
)

func appState(t *testing.T, ts *webTestServer, path string) model.SessionState {
	t.Helper()
	rr := ts.get(path)
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	script := doc.Find(`script#app-state[type="application/json"]`)
	require.Equal(t, 1, script.Length(), "Expected one app-state script")

	var state model.SessionState
	require.NoError(t, json.Unmarshal([]byte(script.Text()), &state))
	return state
}

func TestHomeRedirectsToCreatePasswordWithoutAdmin(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/createPassword", rr.Header().Get("Location"))
}

func TestLoginPageRedirectsToCreatePasswordWithoutAdmin(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/login")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/createPassword", rr.Header().Get("Location"))
}

func TestCreatePasswordPageEmbedsState(t *testing.T) {
	ts := newWebTestServer(t)

	state := appState(t, ts, "/createPassword")
	assert.False(t, state.HasAdminAccount)
	assert.False(t, state.IsLoggedIn)
	assert.Empty(t, state.ServerError)
}

func TestCreatePasswordPageRedirectsOnceAdminExists(t *testing.T) {
	ts := newWebTestServer(t)
	_, err := ts.app.AuthService.CreatePassword(t.Context(), testPassword, testPassword)
	require.NoError(t, err)

	rr := ts.get("/createPassword")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))

	state := appState(t, ts, "/login")
	assert.True(t, state.HasAdminAccount)
	assert.False(t, state.IsLoggedIn)
}

func TestHomeRedirectsToListWhenLoggedIn(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createAdmin()

	rr := ts.get("/")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/lineup/alternateNames/list", rr.Header().Get("Location"))

	rr = ts.get("/login")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/lineup/alternateNames/list", rr.Header().Get("Location"))
}

func TestProtectedPageRedirectsToLogin(t *testing.T) {
	ts := newWebTestServer(t)

	for _, path := range []string{
		"/changePassword",
		"/lineup/alternateNames/list",
		"/lineup/missingNames/list",
		"/wheel/categories/list",
		"/wheel/categories/abc/list",
		"/wheel/duplicates/list",
	} {
		rr := ts.get(path)
		assert.Equal(t, http.StatusSeeOther, rr.Code, path)
		assert.Equal(t, "/login", rr.Header().Get("Location"), path)
	}
}

func TestProtectedPageAcceptsBearerToken(t *testing.T) {
	ts := newWebTestServer(t)
	session, err := ts.app.AuthService.CreatePassword(t.Context(), testPassword, testPassword)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/wheel/categories/list", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestShellRendersForLoggedInAdmin(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createAdmin()

	rr := ts.get("/wheel/unverified/list")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "div#root")
	assertContainsElement(t, doc, `script[src="/static/bundle.js"]`)
	assertContainsText(t, doc, "title", "Unverified Words")

	state := appState(t, ts, "/changePassword")
	assert.True(t, state.HasAdminAccount)
	assert.True(t, state.IsLoggedIn)
}

func TestLogoutClearsSession(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createAdmin()

	rr := ts.get("/logout")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	assert.False(t, ts.cookies.hasSession())

	rr = ts.followRedirect(rr)
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash-info", "logged out")

	// Flash is shown once
	rr = ts.get("/login")
	doc = parseHTML(rr.Body)
	assertNotContainsElement(t, doc, ".flash")
}

func TestExpiredSessionRedirectsToLogin(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createAdmin()

	ts.app.MockClock.Advance(61 * time.Minute)

	rr := ts.get("/wheel/categories/list")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}

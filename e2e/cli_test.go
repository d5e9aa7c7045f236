package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcubed/cubed/internal/api"
	"github.com/mcubed/cubed/internal/cli"
	"github.com/mcubed/cubed/internal/factory"
	"github.com/mcubed/cubed/internal/model"
	"github.com/mcubed/cubed/internal/web"
)

const adminPassword = "hunter2"

// cliRunner runs cubedctl commands in-process against a server
type cliRunner struct {
	serverURL string
	tokenFile string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	return &cliRunner{
		serverURL: serverURL,
		tokenFile: filepath.Join(t.TempDir(), "token"),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	var out bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs(fullArgs)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

// testServer is a real HTTP server over the composed page and API routers
type testServer struct {
	app *factory.TestApp
	url string
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		AuthService:      app.AuthService,
		LineupController: app.LineupController,
		WheelController:  app.WheelController,
		Store:            app.Driver,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:           logger,
		AuthService:      app.AuthService,
		LineupController: app.LineupController,
		WheelController:  app.WheelController,
		API:              apiRouter,
	})

	server := httptest.NewServer(webRouter)
	t.Cleanup(server.Close)

	return &testServer{app: app, url: server.URL}
}

// loggedIn bootstraps the admin and logs the runner in
func loggedIn(t *testing.T) (*testServer, *cliRunner) {
	t.Helper()

	ts := startTestServer(t)
	_, err := ts.app.AuthService.CreatePassword(t.Context(), adminPassword, adminPassword)
	require.NoError(t, err)

	runner := newCLIRunner(t, ts.url)
	output, err := runner.run("login", "--password", adminPassword)
	require.NoError(t, err, "output: %s", output)

	return ts, runner
}

// Response types for JSON parsing
type sessionResponse struct {
	HasAdminAccount bool   `json:"hasAdminAccount"`
	IsLoggedIn      bool   `json:"isLoggedIn"`
	Token           string `json:"token"`
}

type healthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type approveResponse struct {
	Approved int      `json:"approved"`
	Failed   []string `json:"failed"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	runner := newCLIRunner(t, ts.url)

	output, err := runner.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ok", resp.Store)
}

func TestCLI_LoginStateLogout(t *testing.T) {
	ts := startTestServer(t)
	runner := newCLIRunner(t, ts.url)

	output, err := runner.run("state")
	require.NoError(t, err, "output: %s", output)
	var state sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &state))
	assert.False(t, state.HasAdminAccount)

	_, err = ts.app.AuthService.CreatePassword(t.Context(), adminPassword, adminPassword)
	require.NoError(t, err)

	// Wrong password
	_, err = runner.run("login", "--password", "nope")
	require.Error(t, err)
	assert.True(t, cli.IsUnauthorized(err))

	output, err = runner.run("login", "--password", adminPassword)
	require.NoError(t, err, "output: %s", output)
	var login sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &login))
	assert.True(t, login.IsLoggedIn)

	saved, err := os.ReadFile(runner.tokenFile)
	require.NoError(t, err)
	assert.Equal(t, login.Token, string(saved))

	// Token from the file is sent on the next command
	output, err = runner.run("state")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &state))
	assert.True(t, state.IsLoggedIn)

	output, err = runner.run("logout")
	require.NoError(t, err, "output: %s", output)
	_, err = os.Stat(runner.tokenFile)
	assert.True(t, os.IsNotExist(err))

	_, err = runner.run("categories", "list")
	require.Error(t, err)
	assert.True(t, cli.IsUnauthorized(err))
}

func TestCLI_CategoriesAndWords(t *testing.T) {
	ts, runner := loggedIn(t)

	output, err := runner.run("categories", "create", "--name", "Animals")
	require.NoError(t, err, "output: %s", output)
	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Contains(t, msg.Message, "Animals")

	output, err = runner.run("categories", "list")
	require.NoError(t, err, "output: %s", output)
	var categories []model.WheelCategory
	require.NoError(t, json.Unmarshal([]byte(output), &categories))
	require.Len(t, categories, 1)
	catID := categories[0].ID

	ctx := t.Context()
	for _, w := range []string{"cat", "dog", "cat"} {
		_, err := ts.app.WheelController.SaveWord(ctx, model.WheelWord{CategoryID: catID, Word: w})
		require.NoError(t, err)
	}

	output, err = runner.run("words", "list", "--category", catID, "--sort", "word", "--desc")
	require.NoError(t, err, "output: %s", output)
	var words []model.WheelWord
	require.NoError(t, json.Unmarshal([]byte(output), &words))
	require.Len(t, words, 3)
	assert.Equal(t, "dog", words[0].Word)

	output, err = runner.run("words", "duplicates")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &words))
	assert.Len(t, words, 2)

	output, err = runner.run("words", "approve-all")
	require.NoError(t, err, "output: %s", output)
	var approved approveResponse
	require.NoError(t, json.Unmarshal([]byte(output), &approved))
	assert.Equal(t, 3, approved.Approved)
	assert.Empty(t, approved.Failed)

	output, err = runner.run("words", "unverified")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &words))
	assert.Empty(t, words)

	output, err = runner.run("words", "approve-all")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "No words awaiting approval", msg.Message)
}

func TestCLI_LineupNames(t *testing.T) {
	ts, runner := loggedIn(t)

	_, err := runner.run("alternate-names", "resolve", "--external-name", "M. Trout", "--team", "LAA", "--sport", "MLB")
	require.Error(t, err)

	output, err := runner.run("missing-names", "list")
	require.NoError(t, err, "output: %s", output)
	var missing []model.MissingName
	require.NoError(t, json.Unmarshal([]byte(output), &missing))
	require.Len(t, missing, 1)
	assert.Equal(t, "M. Trout", missing[0].Name)
	assert.Equal(t, model.SportMLB, missing[0].Sport)

	_, err = ts.app.LineupController.SaveAlternateName(t.Context(), model.AlternateName{ContestName: "Mike Trout", ExternalName: "M. Trout"})
	require.NoError(t, err)

	output, err = runner.run("alternate-names", "resolve", "--external-name", "M. Trout")
	require.NoError(t, err, "output: %s", output)
	var resolved model.AlternateName
	require.NoError(t, json.Unmarshal([]byte(output), &resolved))
	assert.Equal(t, "Mike Trout", resolved.ContestName)

	output, err = runner.run("alternate-names", "list", "--sort", "contestName")
	require.NoError(t, err, "output: %s", output)
	var names []model.AlternateName
	require.NoError(t, json.Unmarshal([]byte(output), &names))
	assert.Len(t, names, 1)

	output, err = runner.run("missing-names", "clear")
	require.NoError(t, err, "output: %s", output)

	output, err = runner.run("missing-names", "list")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &missing))
	assert.Empty(t, missing)
}

func TestCLI_RejectsUnknownOutputFormat(t *testing.T) {
	ts := startTestServer(t)

	cmd := cli.NewRootCmd()
	cmd.SetArgs([]string{"--server", ts.url, "--output", "yaml", "health"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	require.Error(t, cmd.Execute())
}

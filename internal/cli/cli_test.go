// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/config"
	"github.com/jeranaias/cookbot-tui/internal/devserver"
	"github.com/jeranaias/cookbot-tui/internal/export"
	"github.com/jeranaias/cookbot-tui/internal/model"
	"github.com/jeranaias/cookbot-tui/internal/ui/contact"
)

// isolate points configuration at a fresh directory and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("COOKBOT_HOME", home)
	for _, name := range []string{
		"BACKEND_URI", "COOKBOT_BACKEND_URL", "COOKBOT_TIMEOUT", "COOKBOT_THEME",
		"COOKBOT_LOG_LEVEL", "COOKBOT_LOG_FILE", "COOKBOT_SERVER_ADDR", "NO_COLOR",
	} {
		t.Setenv(name, "")
	}
	t.Cleanup(config.ResetGlobalForTesting)
	return home
}

// newBackend starts a dev server and returns it with its API base URL.
func newBackend(t *testing.T) (*devserver.Server, string) {
	t.Helper()
	srv := devserver.New(devserver.Config{})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.CloseClientConnections()
		ts.Close()
	})
	return srv, ts.URL + "/api"
}

// run executes the root command with args and captures both streams.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func sampleRecipe() *model.Recipe {
	return &model.Recipe{
		Title:        "Tomato Soup",
		Ingredients:  []string{"6 tomatoes", "1 onion"},
		Instructions: []string{"Roast the tomatoes.", "Blend with the onion."},
		Servings:     "4",
	}
}

func TestAsk_JSON(t *testing.T) {
	isolate(t)
	_, url := newBackend(t)

	stdout, _, err := run(t, "--backend", url, "ask", "--json", "What can I make with chicken and rice?")
	require.NoError(t, err)

	var got askJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.True(t, got.IsRecipe)
	require.NotNil(t, got.Recipe)
	assert.Equal(t, "Chicken Fried Rice", got.Recipe.Title)
	assert.True(t, strings.HasPrefix(got.SessionID, "session_"), got.SessionID)
}

func TestAsk_RawRecipeAndSession(t *testing.T) {
	isolate(t)
	srv, url := newBackend(t)

	stdout, stderr, err := run(t, "--backend", url, "ask", "--raw", "--session", "s1", "chocolate cake please")
	require.NoError(t, err)

	assert.Contains(t, stdout, "# One-Bowl Chocolate Cake")
	assert.Contains(t, stdout, "## Ingredients")
	assert.Contains(t, stderr, "session: s1")
	assert.Len(t, srv.Store().History("s1"), 2)
}

func TestAsk_TextReply(t *testing.T) {
	isolate(t)
	_, url := newBackend(t)

	stdout, _, err := run(t, "--backend", url, "ask", "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(stdout))
	assert.NotContains(t, stdout, "## Ingredients")
}

func TestAsk_RequiresQuestion(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "ask")
	require.Error(t, err)
}

func TestRecipes_List(t *testing.T) {
	isolate(t)
	srv, url := newBackend(t)
	id := srv.Store().SaveRecipe("s1", sampleRecipe())

	stdout, _, err := run(t, "--backend", url, "recipes", "list", "--session", "s1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Saved recipes (1)")
	assert.Contains(t, stdout, "Tomato Soup")
	assert.Contains(t, stdout, "serves 4")
	assert.Contains(t, stdout, "id: "+id)

	stdout, _, err = run(t, "--backend", url, "recipes", "ls", "--session", "other")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No saved recipes yet.")
}

func TestRecipes_RequiresSession(t *testing.T) {
	isolate(t)
	_, url := newBackend(t)

	for _, sub := range []string{"list", "export"} {
		_, _, err := run(t, "--backend", url, "recipes", sub)
		var usage *UsageError
		require.ErrorAs(t, err, &usage, sub)
		assert.Equal(t, ExitUsageError, ExitCode(err))
	}
}

func TestRecipes_ExportStdoutJSON(t *testing.T) {
	isolate(t)
	srv, url := newBackend(t)
	srv.Store().SaveRecipe("s1", sampleRecipe())

	stdout, _, err := run(t, "--backend", url, "recipes", "export", "--session", "s1", "--format", "json", "--out", "-")
	require.NoError(t, err)

	var doc struct {
		SessionID string `json:"session_id"`
		Count     int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "s1", doc.SessionID)
	assert.Equal(t, 1, doc.Count)
}

func TestRecipes_ExportToPath(t *testing.T) {
	isolate(t)
	srv, url := newBackend(t)
	srv.Store().SaveRecipe("s1", sampleRecipe())
	path := filepath.Join(t.TempDir(), "mine.md")

	stdout, _, err := run(t, "--backend", url, "recipes", "export", "--session", "s1", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Exported 1 recipe(s) to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Tomato Soup")
	assert.Contains(t, string(data), "- 6 tomatoes")
}

func TestRecipes_ExportEmptyAndBadFormat(t *testing.T) {
	isolate(t)
	_, url := newBackend(t)

	_, _, err := run(t, "--backend", url, "recipes", "export", "--session", "none", "-o", "-")
	require.ErrorIs(t, err, export.ErrNoRecipes)
	assert.Equal(t, ExitNotFoundError, ExitCode(err))

	_, _, err = run(t, "--backend", url, "recipes", "export", "--session", "s1", "--format", "pdf")
	assert.Equal(t, ExitUsageError, ExitCode(err))
}

func TestContact(t *testing.T) {
	isolate(t)
	srv, url := newBackend(t)

	stdout, _, err := run(t, "--backend", url, "contact",
		"--name", " Ann ", "--email", "ann@example.com", "--message", "Love the pasta!")
	require.NoError(t, err)
	assert.Contains(t, stdout, contact.MsgSent)

	contacts := srv.Store().Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, "Ann", contacts[0].Name)
}

func TestContact_MissingFields(t *testing.T) {
	isolate(t)
	srv, url := newBackend(t)

	_, _, err := run(t, "--backend", url, "contact", "--name", "Ann")
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, ExitCode(err))
	assert.Empty(t, srv.Store().Contacts())
}

func TestHealth(t *testing.T) {
	isolate(t)
	_, url := newBackend(t)

	stdout, _, err := run(t, "--backend", url, "health")
	require.NoError(t, err)
	assert.Contains(t, stdout, url)
	assert.Contains(t, stdout, "healthy")
	assert.Contains(t, stdout, "Backend is healthy")
}

func TestHealth_Unreachable(t *testing.T) {
	isolate(t)
	ts := httptest.NewServer(nil)
	url := ts.URL + "/api"
	ts.Close()

	_, _, err := run(t, "--backend", url, "health")
	require.Error(t, err)
	assert.Equal(t, ExitNetworkError, ExitCode(err))
}

func TestConfig_SetGetPath(t *testing.T) {
	home := isolate(t)

	stdout, _, err := run(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.toml"), strings.TrimSpace(stdout))

	_, _, err = run(t, "config", "set", "ui.theme", "light")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, "config.toml"))

	stdout, _, err = run(t, "config", "get", "ui.theme")
	require.NoError(t, err)
	assert.Equal(t, "light", strings.TrimSpace(stdout))

	stdout, _, err = run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, `theme = "light"`)
}

func TestConfig_SetErrors(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "config", "set", "ui.nope", "x")
	assert.Equal(t, ExitUsageError, ExitCode(err))

	_, _, err = run(t, "config", "set", "ui.theme", "purple")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, ExitConfigError, ExitCode(err))
}

func TestConfig_ExplicitFileAndFlags(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, setConfigValue(path, "backend.url", "http://example.test/api"))

	stdout, _, err := run(t, "--config", path, "config", "get", "backend.url")
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/api", strings.TrimSpace(stdout))

	stdout, _, err = run(t, "--config", path, "--backend", "http://flag.test/api", "config", "get", "backend.url")
	require.NoError(t, err)
	assert.Equal(t, "http://flag.test/api", strings.TrimSpace(stdout))
}

func TestConfig_Keys(t *testing.T) {
	isolate(t)

	stdout, _, err := run(t, "config", "keys")
	require.NoError(t, err)
	assert.Contains(t, stdout, "backend.url")
	assert.Contains(t, stdout, "ui.theme")
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cookbot "+Version)
}

func TestRoot_NeedsTerminal(t *testing.T) {
	isolate(t)

	_, _, err := run(t)
	var ttyErr *TTYRequiredError
	require.ErrorAs(t, err, &ttyErr)
	assert.Equal(t, ExitUsageError, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", usageErrorf("bad %s", "flag"), ExitUsageError},
		{"empty message", &api.Error{Op: api.OpChat, Err: api.ErrEmptyMessage}, ExitUsageError},
		{"config", fmt.Errorf("%w: theme", config.ErrInvalidConfig), ExitConfigError},
		{"deadline", fmt.Errorf("wrapped: %w", context.DeadlineExceeded), ExitTimeoutError},
		{"no recipes", export.ErrNoRecipes, ExitNotFoundError},
		{"transport", &api.Error{Op: api.OpHealth, Err: errors.New("connection refused")}, ExitNetworkError},
		{"server", &api.Error{Op: api.OpChat, Status: 500, Message: "boom"}, ExitGeneralError},
		{"other", errors.New("boom"), ExitGeneralError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

// scriptedInput feeds fixed lines to the REPL, then reports EOF.
type scriptedInput struct {
	lines   []string
	end     error
	history []string
	closed  bool
}

func (s *scriptedInput) Prompt(string) (string, error) {
	if len(s.lines) == 0 {
		if s.end != nil {
			return "", s.end
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedInput) AppendHistory(item string) { s.history = append(s.history, item) }

func (s *scriptedInput) Close() error {
	s.closed = true
	return nil
}

func newTestREPL(t *testing.T, in lineReader) (*repl, *bytes.Buffer, *devserver.Server) {
	t.Helper()
	srv, url := newBackend(t)
	e := &env{
		cfg:    config.Default(),
		logger: zap.NewNop(),
		client: api.NewClient(url),
	}
	var out bytes.Buffer
	return e.newREPL(in, &out), &out, srv
}

func TestREPL_ChatSaveAndList(t *testing.T) {
	in := &scriptedInput{lines: []string{
		"hello",
		"",
		"chicken and rice?",
		"/save",
		"/recipes",
		"/quit",
		"never read",
	}}
	r, out, srv := newTestREPL(t, in)

	require.NoError(t, r.run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "CookBot:")
	assert.Contains(t, text, "# Chicken Fried Rice")
	assert.Contains(t, text, devserver.MsgRecipeSaved)
	assert.Contains(t, text, "Saved recipes (1)")
	assert.Equal(t, []string{"hello", "chicken and rice?", "/save", "/recipes", "/quit"}, in.history)
	assert.Equal(t, []string{"never read"}, in.lines)
	assert.Len(t, srv.Store().Recipes(r.ctrl.SessionID()), 1)
}

func TestREPL_Commands(t *testing.T) {
	in := &scriptedInput{
		lines: []string{"/help", "/save", "/bogus", "/new"},
		end:   liner.ErrPromptAborted,
	}
	r, out, _ := newTestREPL(t, in)
	first := r.ctrl.SessionID()

	require.NoError(t, r.run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "/recipes   List saved recipes")
	assert.Contains(t, text, "No recipe to save yet.")
	assert.Contains(t, text, `Unknown command "/bogus"`)
	assert.Contains(t, text, "Started a new conversation.")
	assert.NotEqual(t, first, r.ctrl.SessionID())
}

func TestREPL_BackendError(t *testing.T) {
	ts := httptest.NewServer(nil)
	url := ts.URL + "/api"
	ts.Close()

	e := &env{cfg: config.Default(), logger: zap.NewNop(), client: api.NewClient(url)}
	var out bytes.Buffer
	r := e.newREPL(&scriptedInput{lines: []string{"hello"}}, &out)

	require.NoError(t, r.run(context.Background()))
	assert.Contains(t, out.String(), "[!!]")
	assert.NotContains(t, out.String(), "CookBot:")
}

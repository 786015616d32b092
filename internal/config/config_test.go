// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// isolate points the config directory at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("COOKBOT_HOME", dir)
	for _, key := range []string{
		"BACKEND_URI", "COOKBOT_BACKEND_URL", "COOKBOT_TIMEOUT",
		"COOKBOT_THEME", "COOKBOT_LOG_LEVEL", "COOKBOT_LOG_FILE", "COOKBOT_SERVER_ADDR",
	} {
		t.Setenv(key, "")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestConfig_Default(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://127.0.0.1:5000/api", cfg.Backend.URL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout())
	assert.Equal(t, 5*time.Second, cfg.UI.ContactClearDelay())
	assert.Equal(t, 2*time.Second, cfg.UI.CopiedResetDelay())
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.True(t, cfg.UI.ShowWelcome)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"relative url", func(c *Config) { c.Backend.URL = "/api" }, "backend.url"},
		{"ftp url", func(c *Config) { c.Backend.URL = "ftp://host/api" }, "backend.url"},
		{"zero timeout", func(c *Config) { c.Backend.TimeoutSeconds = 0 }, "backend.timeout_seconds"},
		{"negative rate", func(c *Config) { c.Backend.RequestsPerSecond = -1 }, "backend.requests_per_second"},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"long clear", func(c *Config) { c.UI.ContactClearSeconds = 600 }, "ui.contact_clear_seconds"},
		{"zero copied", func(c *Config) { c.UI.CopiedResetSeconds = 0 }, "ui.copied_reset_seconds"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestConfig_SetDefaultsNormalizes(t *testing.T) {
	cfg := &Config{}
	cfg.Backend.URL = " https://example.com/api/ "
	cfg.UI.Theme = "DARK"
	cfg.SetDefaults()

	assert.Equal(t, "https://example.com/api", cfg.Backend.URL)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, 30, cfg.Backend.TimeoutSeconds)
	assert.Equal(t, "127.0.0.1:5000", cfg.Server.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadDefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Backend.URL, cfg.Backend.URL)
}

func TestConfig_SaveAndLoadTOML(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.Backend.URL = "https://cookbot.example.com/api"
	cfg.UI.Theme = "light"
	cfg.Backend.RequestsPerSecond = 2.5
	require.NoError(t, EnsureConfigDir())
	require.NoError(t, Save(cfg))

	path, err := ConfigPathTOML()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# cookbot configuration file")

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://cookbot.example.com/api", loaded.Backend.URL)
	assert.Equal(t, "light", loaded.UI.Theme)
	assert.Equal(t, 2.5, loaded.Backend.RequestsPerSecond)
}

func TestConfig_LoadJSONFallback(t *testing.T) {
	isolate(t)
	require.NoError(t, EnsureConfigDir())

	cfg := Default()
	cfg.UI.ContactClearSeconds = 9
	path, err := ConfigPathJSON()
	require.NoError(t, err)
	require.NoError(t, SaveJSON(cfg, path))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9, loaded.UI.ContactClearSeconds)
}

func TestConfig_LoadFromPathInvalid(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"neon\"\n"), 0600))

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BACKEND_URI", "https://from-backend-uri.example.com/api")
	t.Setenv("COOKBOT_TIMEOUT", "12")
	t.Setenv("COOKBOT_THEME", "light")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://from-backend-uri.example.com/api", cfg.Backend.URL)
	assert.Equal(t, 12*time.Second, cfg.Backend.Timeout())
	assert.Equal(t, "light", cfg.UI.Theme)

	t.Setenv("COOKBOT_BACKEND_URL", "https://explicit.example.com/api")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "https://explicit.example.com/api", cfg.Backend.URL)
}

func TestConfig_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("BACKEND_URI=https://dotenv.example.com/api\n"), 0600))
	// godotenv only fills unset variables.
	require.NoError(t, os.Unsetenv("BACKEND_URI"))
	t.Cleanup(func() { _ = os.Unsetenv("BACKEND_URI") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://dotenv.example.com/api", cfg.Backend.URL)
}

func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	v, err := cfg.Get("ui.theme")
	require.NoError(t, err)
	assert.Equal(t, "auto", v)

	require.NoError(t, cfg.Set("ui.theme", "dark"))
	require.NoError(t, cfg.Set("backend.timeout_seconds", "45"))
	require.NoError(t, cfg.Set("backend.requests_per_second", "1.5"))
	require.NoError(t, cfg.Set("ui.show_welcome", "false"))
	require.NoError(t, cfg.Set("server.allowed_origins", "http://a, http://b"))

	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, 45, cfg.Backend.TimeoutSeconds)
	assert.Equal(t, 1.5, cfg.Backend.RequestsPerSecond)
	assert.False(t, cfg.UI.ShowWelcome)
	assert.Equal(t, []string{"http://a", "http://b"}, cfg.Server.AllowedOrigins)

	_, err = cfg.Get("ui.nope")
	assert.Error(t, err)
	assert.Error(t, cfg.Set("backend.timeout_seconds", "soon"))
	_, err = cfg.Get("ui.theme.extra")
	assert.Error(t, err)
}

func TestConfig_GetAllKeys(t *testing.T) {
	keys := GetAllKeys()
	assert.Contains(t, keys, "backend.url")
	assert.Contains(t, keys, "ui.contact_clear_seconds")
	assert.Contains(t, keys, "server.allowed_origins")

	cfg := Default()
	for _, key := range keys {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}
}

func TestConfig_Clone(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.Server.AllowedOrigins[0] = "changed"
	clone.UI.Theme = "light"

	assert.NotEqual(t, "changed", cfg.Server.AllowedOrigins[0])
	assert.Equal(t, "auto", cfg.UI.Theme)
}

// Run with: go test -race ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			assert.NotNil(t, Global())
		}()
	}
	wg.Wait()
}

func TestConfig_ReloadGlobal(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	assert.Equal(t, "auto", Global().UI.Theme)

	t.Setenv("COOKBOT_THEME", "dark")
	require.NoError(t, ReloadGlobal())
	assert.Equal(t, "dark", Global().UI.Theme)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	changes := make(chan *Config, 4)
	w, err := WatchWithDebounce(path, 20*time.Millisecond, func(cfg *Config, err error) {
		if err == nil {
			changes <- cfg
		}
	})
	require.NoError(t, err)

	cfg := Default()
	cfg.UI.Theme = "light"
	require.NoError(t, SaveTOML(cfg, path))

	select {
	case got := <-changes:
		assert.Equal(t, "light", got.UI.Theme)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}

	require.NoError(t, w.Close())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	called := make(chan struct{}, 1)
	w, err := WatchWithDebounce(path, 10*time.Millisecond, func(*Config, error) {
		called <- struct{}{}
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0600))

	select {
	case <-called:
		t.Fatal("unexpected reload for unrelated file")
	case <-time.After(150 * time.Millisecond):
	}
	require.NoError(t, w.Close())
}

func TestWatch_NilCallback(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "config.toml"), nil)
	assert.Error(t, err)
}

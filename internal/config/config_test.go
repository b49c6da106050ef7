package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/pkg/globalsearch"
)

func writeConfig(t *testing.T, contents string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "gsperm.hcl", []byte(contents), 0o600))
	return fs
}

func TestLoad(t *testing.T) {
	t.Setenv("GS_TEST_PASSWORD", "hunter2")

	fs := writeConfig(t, `
log_level = "debug"
output    = "json"

server {
  base_url    = "https://gs.example.com/square9api"
  username    = "admin"
  password    = env("GS_TEST_PASSWORD")
  timeout     = "10s"
  retry_delay = "250ms"
  max_retries = 0
  tls_verify  = false
}
`)

	cfg, err := Load(fs, "gsperm.hcl")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, hclog.Debug, cfg.Level())
	assert.Equal(t, "json", cfg.Output)
	require.NotNil(t, cfg.Server)
	assert.Equal(t, "hunter2", cfg.Server.Password)

	client, err := cfg.ClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://gs.example.com/square9api", client.BaseURL)
	assert.Equal(t, "admin", client.Username)
	assert.Equal(t, "hunter2", client.Password)
	assert.Equal(t, 10*time.Second, client.Timeout)
	assert.Equal(t, 250*time.Millisecond, client.RetryDelay)
	require.NotNil(t, client.MaxRetries)
	assert.Equal(t, 0, *client.MaxRetries)
	require.NotNil(t, client.TLSVerify)
	assert.False(t, *client.TLSVerify)
}

func TestLoad_Defaults(t *testing.T) {
	fs := writeConfig(t, `
server {
  base_url = "http://localhost/square9api"
  username = "admin"
}
`)

	cfg, err := Load(fs, "gsperm.hcl")
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, hclog.Info, cfg.Level())

	client, err := cfg.ClientConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, client.Timeout)
	require.NotNil(t, client.MaxRetries)
	assert.Equal(t, 3, *client.MaxRetries)
	require.NotNil(t, client.TLSVerify)
	assert.True(t, *client.TLSVerify)
}

func TestLoad_ZeroRetriesReachClient(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	fs := writeConfig(t, `
server {
  base_url    = "`+server.URL+`/square9api"
  username    = "admin"
  password    = "secret"
  retry_delay = "1ms"
  max_retries = 0
}
`)

	cfg, err := Load(fs, "gsperm.hcl")
	require.NoError(t, err)
	clientCfg, err := cfg.ClientConfig()
	require.NoError(t, err)

	client, err := globalsearch.NewClient(clientCfg, globalsearch.WithLogger(hclog.NewNullLogger()))
	require.NoError(t, err)

	_, err = client.InboxPermissions(context.Background(), 4)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestLoad_NoServer(t *testing.T) {
	fs := writeConfig(t, `output = "yaml"`)

	cfg, err := Load(fs, "gsperm.hcl")
	require.NoError(t, err)
	assert.Nil(t, cfg.Server)

	_, err = cfg.ClientConfig()
	assert.EqualError(t, err, "configuration has no server block")
}

func TestLoad_UnsetEnv(t *testing.T) {
	fs := writeConfig(t, `
server {
  base_url = "http://localhost"
  username = "admin"
  password = env("GS_TEST_DEFINITELY_UNSET")
}
`)

	cfg, err := Load(fs, "gsperm.hcl")
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.Password)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		contents string
		wantErr  string
	}{
		{
			name:    "empty path",
			path:    "",
			wantErr: "configuration file path is required",
		},
		{
			name:    "missing file",
			path:    "missing.hcl",
			wantErr: "configuration file not found: missing.hcl",
		},
		{
			name:     "syntax error",
			path:     "gsperm.hcl",
			contents: `server {`,
			wantErr:  "failed to parse configuration file",
		},
		{
			name:     "unknown attribute",
			path:     "gsperm.hcl",
			contents: `colour = "red"`,
			wantErr:  "failed to parse configuration file",
		},
		{
			name:     "bad log level",
			path:     "gsperm.hcl",
			contents: `log_level = "loud"`,
			wantErr:  "LogLevel: must be a valid value",
		},
		{
			name:     "bad output",
			path:     "gsperm.hcl",
			contents: `output = "xml"`,
			wantErr:  "must be a valid value",
		},
		{
			name: "missing username",
			path: "gsperm.hcl",
			contents: `
server {
  base_url = "http://localhost"
  username = ""
}`,
			wantErr: "Username: cannot be blank",
		},
		{
			name: "bad timeout",
			path: "gsperm.hcl",
			contents: `
server {
  base_url = "http://localhost"
  username = "admin"
  timeout  = "soon"
}`,
			wantErr: "must be a duration",
		},
		{
			name: "negative retries",
			path: "gsperm.hcl",
			contents: `
server {
  base_url    = "http://localhost"
  username    = "admin"
  max_retries = -1
}`,
			wantErr: "MaxRetries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.contents != "" {
				require.NoError(t, afero.WriteFile(fs, tt.path, []byte(tt.contents), 0o600))
			}

			_, err := Load(fs, tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

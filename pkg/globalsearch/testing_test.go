package globalsearch

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

// newTestClient starts an httptest server with handler and returns a client
// pointed at it. The client retries twice.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	return newTestClientWithRetries(t, 2, handler)
}

func newTestClientWithRetries(t *testing.T, retries int, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&Config{
		BaseURL:    server.URL + "/square9api",
		Username:   "admin",
		Password:   "secret",
		Timeout:    5 * time.Second,
		MaxRetries: intPtr(retries),
		RetryDelay: time.Millisecond,
	}, WithLogger(hclog.NewNullLogger()))
	require.NoError(t, err)

	return client, server
}

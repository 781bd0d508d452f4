package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost:8000", time.Second)
	client2 := NewHTTPClient("http://localhost:8000", time.Second)

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Settings(t *testing.T) {
	client := NewHTTPClient("http://localhost:8000", 3*time.Second)

	assert.Equal(t, "http://localhost:8000", client.BaseURL)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_SetsTraceID(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get(TraceIDHeader))
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)

	_, err := client.R().Get("/health")
	require.NoError(t, err)
	_, err = client.R().SetContext(WithTraceID(context.Background(), "fixed-trace")).Get("/health")
	require.NoError(t, err)

	require.Len(t, seen, 2)
	_, parseErr := uuid.Parse(seen[0])
	assert.NoError(t, parseErr, "generated trace id must be a UUID")
	assert.Equal(t, "fixed-trace", seen[1])
}

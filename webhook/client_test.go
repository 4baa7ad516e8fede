package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	ctx := context.Background()

	var gotBody []byte
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte("1"))
	}))
	defer server.Close()

	c := New(hclog.NewNullLogger())
	err := c.Send(ctx, server.URL, map[string]string{"summary": "EC2 Instance Deleted"})
	require.NoError(t, err)

	require.Equal(t, "application/json", gotContentType)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	require.Equal(t, "EC2 Instance Deleted", decoded["summary"])
}

func TestSendNonSuccessStatus(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	}))
	defer server.Close()

	c := New(hclog.NewNullLogger())
	err := c.Send(ctx, server.URL, map[string]string{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
	require.Contains(t, err.Error(), "rate limited")
}

func TestSendTransportFailure(t *testing.T) {
	ctx := context.Background()

	c := New(hclog.NewNullLogger())
	err := c.Send(ctx, "http://127.0.0.1:1", map[string]string{})
	require.Error(t, err)
}

func TestSendUnmarshalableMessage(t *testing.T) {
	ctx := context.Background()

	c := New(hclog.NewNullLogger())
	err := c.Send(ctx, "http://unused.example.com", map[string]interface{}{"bad": func() {}})
	require.Error(t, err)
}

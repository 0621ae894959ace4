package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Err(t *testing.T) {
	t.Run("returns nil when Error field is nil", func(t *testing.T) {
		resp := response{JsonRPC: "2.0"}

		assert.NoError(t, resp.Err("eth_accounts"))
	})

	t.Run("returns a provider error when Error field is present", func(t *testing.T) {
		expectedCode := -32601
		expectedMsg := "method not found"

		resp := response{
			JsonRPC: "2.0",
			Error: &struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
			}{
				Code:    expectedCode,
				Message: expectedMsg,
			},
		}

		err := resp.Err("eth_foo")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProviderReturnedError)

		var providerErr *ProviderError
		require.True(t, errors.As(err, &providerErr))
		assert.Equal(t, "eth_foo", providerErr.Method)
		assert.Equal(t, expectedCode, providerErr.Code)
		assert.Contains(t, err.Error(), fmt.Sprintf("[%d]", expectedCode))
		assert.Contains(t, err.Error(), expectedMsg)
	})
}

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestClient_Fetch(t *testing.T) {
	t.Run("successful response with result", func(t *testing.T) {
		var received map[string]any
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"result":  map[string]any{"hello": "world"},
				"id":      received["id"],
			})
		})

		client := NewClient(server.Client(), server.URL)

		result, err := client.Fetch(context.Background(), "eth_test", "0x1", false)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(result, &decoded))
		assert.Equal(t, "world", decoded["hello"])

		assert.Equal(t, "2.0", received["jsonrpc"])
		assert.Equal(t, "eth_test", received["method"])
		assert.Equal(t, []any{"0x1", false}, received["params"])
		assert.NotEmpty(t, received["id"])
	})

	t.Run("sends an empty params array when no params are given", func(t *testing.T) {
		var raw map[string]json.RawMessage
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			w.Write([]byte(`{"jsonrpc":"2.0","result":[]}`))
		})

		_, err := NewClient(server.Client(), server.URL).Fetch(context.Background(), "eth_accounts")
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(raw["params"]))
	})

	t.Run("response with JSON-RPC error", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"jsonrpc":"2.0","error":{"code":-32000,"message":"filter not found"}}`))
		})

		_, err := NewClient(server.Client(), server.URL).Fetch(context.Background(), "eth_getFilterChanges", "0x1")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Contains(t, err.Error(), "filter not found")
	})

	t.Run("non 200 status code", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		_, err := NewClient(server.Client(), server.URL).Fetch(context.Background(), "eth_accounts")

		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("malformed JSON response", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{invalid json`))
		})

		_, err := NewClient(server.Client(), server.URL).Fetch(context.Background(), "eth_accounts")

		assert.Error(t, err)
	})

	t.Run("network error when server is down", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		client := NewClient(&http.Client{Timeout: 100 * time.Millisecond}, url)
		_, err := client.Fetch(context.Background(), "eth_accounts")

		assert.Error(t, err)
	})

	t.Run("canceled context aborts the request", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"jsonrpc":"2.0","result":"0x1"}`))
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewClient(server.Client(), server.URL).Fetch(ctx, "eth_blockNumber")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCall(t *testing.T) {
	t.Run("decodes the result into the requested type", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"jsonrpc":"2.0","result":["0xa","0xb"]}`))
		})

		result, err := Call[[]string](context.Background(), NewClient(server.Client(), server.URL), "eth_accounts")

		require.NoError(t, err)
		assert.Equal(t, []string{"0xa", "0xb"}, result)
	})

	t.Run("returns a decode error for mismatched results", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"jsonrpc":"2.0","result":{"not":"a list"}}`))
		})

		_, err := Call[[]string](context.Background(), NewClient(server.Client(), server.URL), "eth_accounts")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding eth_accounts result")
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"jsonrpc":"2.0","error":{"code":-1,"message":"boom"}}`))
		})

		_, err := Call[string](context.Background(), NewClient(server.Client(), server.URL), "eth_call")

		assert.ErrorIs(t, err, ErrProviderReturnedError)
	})
}

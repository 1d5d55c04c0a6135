package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acadkit/cohort/infra/logger"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(Config{Token: "tok", Owner: "org", Repo: "demo"}, logger.NopLogger{})
	c.baseURL = srv.URL
	return c
}

func TestPutFileCreatesNewFile(t *testing.T) {
	var put contentsPayload
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/org/demo/contents/out/G1.csv", r.URL.Path)
		require.Equal(t, "token tok", r.Header.Get("Authorization"))
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&put))
			w.WriteHeader(http.StatusCreated)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))

	require.NoError(t, c.PutFile(context.Background(), "out/G1.csv", []byte("a,b\n")))
	require.Equal(t, "Add out/G1.csv", put.Message)
	require.Empty(t, put.SHA)
	require.Equal(t, "main", put.Branch)
	decoded, err := base64.StdEncoding.DecodeString(put.Content)
	require.NoError(t, err)
	require.Equal(t, "a,b\n", string(decoded))
}

func TestPutFileUpdatesExistingFile(t *testing.T) {
	var put contentsPayload
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			require.NoError(t, json.NewEncoder(w).Encode(map[string]string{"sha": "abc123"}))
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&put))
			w.WriteHeader(http.StatusOK)
		}
	}))

	require.NoError(t, c.PutFile(context.Background(), "out/G1.csv", []byte("x")))
	require.Equal(t, "abc123", put.SHA)
	require.Equal(t, "Update out/G1.csv", put.Message)
}

func TestPutFileSurfacesServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusForbidden)
	}))

	err := c.PutFile(context.Background(), "out/G1.csv", []byte("x"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
}

func TestPutFileSurfacesLookupError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := c.PutFile(context.Background(), "out/G1.csv", []byte("x"))
	require.Error(t, err)
}

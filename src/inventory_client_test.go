package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookEnvelope = `{
  "success": true,
  "data": {
    "id": "b1",
    "title": "Dune",
    "author": {"id": "a1", "name": "Herbert"},
    "genre": {"id": "g1", "name": "SciFi"},
    "userId": "s1",
    "createdAt": "2024-01-01T00:00:00Z",
    "updatedAt": "2024-01-02T00:00:00Z"
  }
}`

func TestFetchBookForwardsCredential(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(bookEnvelope))
	}))
	defer srv.Close()

	client := NewInventoryClient(srv.URL, 2*time.Second)
	info, err := client.FetchBook(context.Background(), "b1", "Bearer tok")
	require.NoError(t, err)

	assert.Equal(t, "/api/books/b1", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.True(t, info.Success)
	assert.Equal(t, "s1", info.Data.UserID)
	assert.Equal(t, "Herbert", info.Data.Author.Name)
	assert.Equal(t, "SciFi", info.Data.Genre.Name)
}

func TestFetchBookNoCredentialHeader(t *testing.T) {
	var hadAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(bookEnvelope))
	}))
	defer srv.Close()

	client := NewInventoryClient(srv.URL, 2*time.Second)
	_, err := client.FetchBook(context.Background(), "b1", "")
	require.NoError(t, err)
	assert.False(t, hadAuth)
}

func TestFetchBookNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewInventoryClient(srv.URL, 2*time.Second)
	_, err := client.FetchBook(context.Background(), "b-missing", "")

	var uErr *UpstreamError
	require.ErrorAs(t, err, &uErr)
	assert.Equal(t, "failed to fetch book details", uErr.Msg)
}

func TestFetchBookTransportFailure(t *testing.T) {
	// puerto cerrado: la conexión se rechaza
	client := NewInventoryClient("http://127.0.0.1:1", time.Second)
	_, err := client.FetchBook(context.Background(), "b1", "")

	var uErr *UpstreamError
	require.ErrorAs(t, err, &uErr)
}

func TestFetchBookTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewInventoryClient(srv.URL, 50*time.Millisecond)
	start := time.Now()
	_, err := client.FetchBook(context.Background(), "b1", "")

	var uErr *UpstreamError
	require.ErrorAs(t, err, &uErr)
	assert.Less(t, time.Since(start), time.Second, "call must respect the bounded timeout")
}

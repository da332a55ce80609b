package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vst-mis/vst-mis/internal/orders"
)

func TestAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"nextId":"ORD-2024-1843"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, WithToken("tok-123"))
	id, err := client.NextOrderID(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ORD-2024-1843", id)
	require.Equal(t, "Bearer tok-123", gotAuth)
}

func TestUnauthorizedTriggersSignOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid or expired token"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, WithToken("stale"))
	signedOut := false
	client.OnSignOut(func() { signedOut = true })

	_, err := client.FetchAll(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusUnauthorized, statusErr.Code)
	require.Equal(t, "Invalid or expired token", statusErr.Message)
	require.True(t, signedOut)
	require.Empty(t, client.Token())
}

func TestRejectionCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Order ID already exists"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, WithToken("tok"))
	_, err := client.CreateOrder(context.Background(), orders.Order{ID: "ORD-2024-1842"})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, "Order ID already exists", statusErr.Message)
}

func TestRejectionWithoutBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.FetchAll(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, "Request failed", statusErr.Message)
}

func TestTransportFailureIsNotStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := New(srv.URL)
	_, err := client.FetchAll(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.False(t, errors.As(err, &statusErr))
}

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"fresh","user":{"id":1,"email":"demo@vstmis.local","name":"Demo User"}}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	session, err := client.Login(context.Background(), "demo@vstmis.local", "demo-mis-2024")
	require.NoError(t, err)
	require.Equal(t, "fresh", session.Token)
	require.Equal(t, "fresh", client.Token())
	require.Equal(t, "Demo User", session.User.Name)
}

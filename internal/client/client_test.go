package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "50", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"name":"Jo","email":"jo@x.io","extra":1}],"total":51,"page":2,"limit":50}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL + "/")
	require.NoError(t, err)

	page, err := c.FetchUsers(context.Background(), 2, 50)
	require.NoError(t, err)
	require.Equal(t, 51, page.Total)
	require.Equal(t, 2, page.Page)
	require.Len(t, page.Data, 1)
	require.Equal(t, "Jo", page.Data[0].Name.String())
}

func TestFetchUsersErrorStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"error body", http.StatusBadRequest, `{"error":"Invalid page or limit query parameters"}`, "Invalid page or limit query parameters"},
		{"plain body", http.StatusBadGateway, `upstream down`, "failed to fetch users"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := New(srv.URL)
			require.NoError(t, err)

			_, err = c.FetchUsers(context.Background(), 1, 50)
			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			require.Equal(t, tt.status, statusErr.Code)
			require.Equal(t, tt.wantMsg, statusErr.Message)
		})
	}
}

func TestFetchUsersMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)
	_, err = c.FetchUsers(context.Background(), 1, 50)
	require.ErrorContains(t, err, "decoding users page")
}

func TestFetchUsersHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.FetchUsers(ctx, 1, 50)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, err := New("localhost:3000")
	require.Error(t, err)
}

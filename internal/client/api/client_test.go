package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dentaldesk-service/internal/app/models"
	"dentaldesk-service/internal/pkg/dto/requests"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, zap.NewNop())
	require.NoError(t, err)
	return client, server
}

func TestClientDecodesErrorBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status_code": 404,
			"success":     false,
			"message":     "Patient biodata not found.",
		})
	}))

	_, err := client.GetBiodata(context.Background(), 42)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Patient biodata not found.", apiErr.Message)
	assert.True(t, IsNotFound(err))
}

func TestIsNotFoundOnlyMatches404(t *testing.T) {
	assert.False(t, IsNotFound(&APIError{StatusCode: http.StatusConflict}))
	assert.False(t, IsNotFound(assert.AnError))
	assert.True(t, IsNotFound(&APIError{StatusCode: http.StatusNotFound}))
}

func TestClientCarriesSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "abc123", Path: "/", HttpOnly: true})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user":       models.User{ID: 7, Email: "dentist@example.com"},
			"session_id": "abc123",
		})
	})
	mux.HandleFunc("GET /patients/user/7", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session_id")
		if err != nil || cookie.Value != "abc123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Patient{{ID: 1, UserID: 7}})
	})

	client, _ := newTestClient(t, mux)

	login, err := client.Login(context.Background(), &requests.Login{Email: "dentist@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "abc123", login.SessionID)

	patients, err := client.ListPatientsByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, 1, patients[0].ID)
}

func TestListDecodesEmptyBodyToEmptySlice(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))

	visits, err := client.ListVisits(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, visits)
	assert.Empty(t, visits)
}

package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneywise/client-go/internal/api"
)

func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var body struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

			w.Header().Set("Content-Type", "application/json")
			if body.Password != "x" {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"message": "invalid credentials",
				})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": map[string]any{
					"accessToken":  "T1",
					"refreshToken": "R1",
					"expiresAt":    "2030-01-01",
					"user": map[string]any{
						"id": "u1", "email": body.Email,
						"firstName": "A", "lastName": "B", "currency": "USD",
					},
				},
			})
		case "/api/accounts":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			http.NotFound(w, r)
		}
	}))
}

func newManager(t *testing.T, baseURL string) (*Manager, *Store) {
	t.Helper()
	store := NewStore(NewMemoryStorage())
	client := api.New(baseURL, store, api.WithUnauthorizedHook(store.Invalidate))
	return NewManager(client, store), store
}

func TestLoginPersistsSession(t *testing.T) {
	server := newAuthServer(t)
	defer server.Close()

	manager, store := newManager(t, server.URL)

	user, err := manager.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	// State is written synchronously before Login returns.
	assert.Equal(t, "T1", store.Token())
	current := manager.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "u1", current.ID)
	assert.Equal(t, "a@b.com", current.Email)
	assert.True(t, manager.Authenticated())
}

func TestFailedLoginLeavesStateUntouched(t *testing.T) {
	server := newAuthServer(t)
	defer server.Close()

	manager, store := newManager(t, server.URL)
	require.NoError(t, store.SaveLogin("prior", testUser()))

	_, err := manager.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid credentials", apiErr.Message)

	assert.Equal(t, "prior", store.Token(), "failed auth must not overwrite the session")
	assert.NotNil(t, manager.CurrentUser())
}

func TestLogoutThenCurrentUserIsNil(t *testing.T) {
	server := newAuthServer(t)
	defer server.Close()

	manager, _ := newManager(t, server.URL)
	_, err := manager.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)

	manager.Logout()

	assert.Nil(t, manager.CurrentUser())
	assert.False(t, manager.Authenticated())
}

func TestUnauthorizedResponseEndsSession(t *testing.T) {
	server := newAuthServer(t)
	defer server.Close()

	store := NewStore(NewMemoryStorage())
	client := api.New(server.URL, store, api.WithUnauthorizedHook(store.Invalidate))
	manager := NewManager(client, store)

	_, err := manager.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)

	// Any resource call answered with 401 tears the session down.
	_, err = client.ListAccounts(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)

	assert.Empty(t, store.Token())
	assert.Nil(t, store.CurrentUser())
	select {
	case <-store.Expired():
	default:
		t.Fatal("front-end controllers must be notified of the invalidation")
	}
}

func TestRegisterMismatchDoesNotAuthenticate(t *testing.T) {
	server := newAuthServer(t)
	defer server.Close()

	manager, store := newManager(t, server.URL)

	_, err := manager.Register(context.Background(), api.RegisterParams{
		Email:           "a@b.com",
		Password:        "one",
		ConfirmPassword: "two",
	})

	assert.ErrorIs(t, err, api.ErrPasswordMismatch)
	assert.Empty(t, store.Token())
}

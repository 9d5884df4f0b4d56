package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginReturnsSessionPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body.Email)
		assert.Equal(t, "x", body.Password)

		envelopeResponse(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"accessToken":  "T1",
				"refreshToken": "R1",
				"expiresAt":    "2030-01-01",
				"user": map[string]any{
					"id": "u1", "email": "a@b.com",
					"firstName": "A", "lastName": "B", "currency": "USD",
				},
			},
		})
	}))
	defer server.Close()

	client := New(server.URL, staticToken(""))
	payload, err := client.Login(context.Background(), "a@b.com", "x")

	require.NoError(t, err)
	assert.Equal(t, "T1", payload.AccessToken)
	assert.Equal(t, "R1", payload.RefreshToken)
	assert.Equal(t, "2030-01-01", payload.ExpiresAt)
	assert.Equal(t, "u1", payload.User.ID)
	assert.Equal(t, "USD", payload.User.Currency)
}

func TestLoginFailureSurfacesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelopeResponse(t, w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "invalid credentials",
		})
	}))
	defer server.Close()

	client := New(server.URL, staticToken(""))
	payload, err := client.Login(context.Background(), "a@b.com", "wrong")

	assert.Nil(t, payload)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestRegisterPasswordMismatchSkipsNetwork(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := New(server.URL, staticToken(""))
	payload, err := client.Register(context.Background(), RegisterParams{
		Email:           "a@b.com",
		Password:        "one",
		ConfirmPassword: "two",
	})

	assert.Nil(t, payload)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Zero(t, requests, "mismatch must be rejected before any request")
}

func TestVerificationTokenFromURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "token param", url: "https://app.moneywise.app/verify?token=abc", want: "abc"},
		{name: "code fallback", url: "https://app.moneywise.app/verify?code=def", want: "def"},
		{name: "token preferred over code", url: "https://app.moneywise.app/verify?code=def&token=abc", want: "abc"},
		{name: "neither present", url: "https://app.moneywise.app/verify", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerificationTokenFromURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyEmailPostsToken(t *testing.T) {
	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/verify-email", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotToken = body["token"]
		envelopeResponse(t, w, http.StatusOK, map[string]any{"success": true})
	}))
	defer server.Close()

	client := New(server.URL, staticToken(""))
	require.NoError(t, client.VerifyEmail(context.Background(), "abc"))
	assert.Equal(t, "abc", gotToken)
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributeToGoal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/savings-goals/g1/contributions", r.URL.Path)

		var body contributionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a1", body.AccountID)
		assert.Equal(t, 50.0, body.Amount)

		envelopeResponse(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"id": "gc1", "goalId": "g1", "accountId": "a1",
				"amount": 50.0, "date": "2026-08-31",
			},
		})
	}))
	defer server.Close()

	client := New(server.URL, staticToken("T1"))
	contribution, err := client.ContributeToGoal(context.Background(), "g1", "a1", 50)

	require.NoError(t, err)
	assert.Equal(t, "gc1", contribution.ID)
	assert.Equal(t, "a1", contribution.AccountID)
}

func TestWithdrawFromGoalSendsOnlyAmount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/savings-goals/g1/withdraw", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"amount": 25.0}, body, "withdrawal carries no account selection")

		envelopeResponse(t, w, http.StatusOK, map[string]any{"success": true})
	}))
	defer server.Close()

	client := New(server.URL, staticToken("T1"))
	require.NoError(t, client.WithdrawFromGoal(context.Background(), "g1", 25))
}

func TestMarkNotificationRead(t *testing.T) {
	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		envelopeResponse(t, w, http.StatusOK, map[string]any{"success": true})
	}))
	defer server.Close()

	client := New(server.URL, staticToken("T1"))
	require.NoError(t, client.MarkNotificationRead(context.Background(), "n1"))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/notifications/n1/read", gotPath)
}

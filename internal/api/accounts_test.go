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

func TestTransferValidatesBeforeNetwork(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := New(server.URL, staticToken("T1"))

	t.Run("same account", func(t *testing.T) {
		_, err := client.Transfer(context.Background(), TransferParams{
			FromAccountID: "a1",
			ToAccountID:   "a1",
			Amount:        10,
			Date:          "2026-08-31",
		})
		assert.ErrorIs(t, err, ErrSameAccount)
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := client.Transfer(context.Background(), TransferParams{
			FromAccountID: "a1",
			ToAccountID:   "a2",
			Amount:        0,
			Date:          "2026-08-31",
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := client.Transfer(context.Background(), TransferParams{
			FromAccountID: "a1",
			ToAccountID:   "a2",
			Amount:        -5,
			Date:          "2026-08-31",
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	assert.Zero(t, requests, "invalid transfers must never reach the server")
}

func TestTransferPostsAndReturnsRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/accounts/transfer", r.URL.Path)

		var body TransferParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a1", body.FromAccountID)
		assert.Equal(t, "a2", body.ToAccountID)
		assert.Equal(t, 25.0, body.Amount)

		envelopeResponse(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"id":            "tr1",
				"fromAccountId": "a1",
				"toAccountId":   "a2",
				"amount":        25.0,
				"date":          "2026-08-31",
			},
		})
	}))
	defer server.Close()

	client := New(server.URL, staticToken("T1"))
	transfer, err := client.Transfer(context.Background(), TransferParams{
		FromAccountID: "a1",
		ToAccountID:   "a2",
		Amount:        25,
		Date:          "2026-08-31",
		Description:   "rent share",
	})

	require.NoError(t, err)
	assert.Equal(t, "tr1", transfer.ID)
	assert.Equal(t, 25.0, transfer.Amount)
}

func TestListExpensesFilterQuery(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		envelopeResponse(t, w, http.StatusOK, map[string]any{"success": true, "data": []any{}})
	}))
	defer server.Close()

	client := New(server.URL, staticToken("T1"))
	_, err := client.ListExpenses(context.Background(), ExpenseFilter{
		StartDate: "2026-08-01",
		Limit:     10,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-08-01"}, gotQuery["startDate"])
	assert.Equal(t, []string{"10"}, gotQuery["limit"])
	// Omitted filter fields mean "no filter", not "filter by empty".
	assert.NotContains(t, gotQuery, "endDate")
	assert.NotContains(t, gotQuery, "categoryId")
	assert.NotContains(t, gotQuery, "accountId")
}

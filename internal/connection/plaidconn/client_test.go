package plaidconn_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/onm/internal/connection"
	"github.com/MrJamesThe3rd/onm/internal/connection/plaidconn"
)

// fakePlaid records the last request body per path and answers with the
// canned response registered for it.
type fakePlaid struct {
	t         *testing.T
	responses map[string]cannedResponse
	bodies    map[string]map[string]any
}

type cannedResponse struct {
	status      int
	contentType string
	body        string
}

func newFakePlaid(t *testing.T, responses map[string]cannedResponse) (*fakePlaid, *plaidconn.Client) {
	t.Helper()

	f := &fakePlaid{t: t, responses: responses, bodies: make(map[string]map[string]any)}

	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	client, err := plaidconn.NewClient(plaidconn.Config{ClientID: "client-1", Secret: "secret-1", BaseURL: srv.URL})
	require.NoError(t, err)

	return f, client
}

func (f *fakePlaid) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	assert.Equal(f.t, http.MethodPost, r.Method)
	assert.Equal(f.t, "client-1", r.Header.Get("PLAID-CLIENT-ID"))
	assert.Equal(f.t, "secret-1", r.Header.Get("PLAID-SECRET"))

	var body map[string]any
	assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body))
	f.bodies[r.URL.Path] = body

	resp, ok := f.responses[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}

	contentType := resp.contentType
	if contentType == "" {
		contentType = "application/json"
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

const linkTokenResponse = `{"link_token":"link-sandbox-1","expiration":"2024-03-01T00:00:00Z","request_id":"req-1"}`

func TestClient_CreateLinkToken(t *testing.T) {
	f, client := newFakePlaid(t, map[string]cannedResponse{
		"/link/token/create": {status: http.StatusOK, body: linkTokenResponse},
	})

	token, err := client.CreateLinkToken(context.Background(), "user-1", "")
	require.NoError(t, err)
	assert.Equal(t, "link-sandbox-1", token)

	body := f.bodies["/link/token/create"]
	require.NotNil(t, body)
	assert.Equal(t, "onm", body["client_name"])
	assert.Equal(t, "en", body["language"])
	assert.Equal(t, []any{"US"}, body["country_codes"])
	assert.Equal(t, map[string]any{"client_user_id": "user-1"}, body["user"])
	assert.Equal(t, []any{"transactions"}, body["products"])
	assert.NotContains(t, body, "access_token")
}

func TestClient_CreateLinkToken_UpdateMode(t *testing.T) {
	f, client := newFakePlaid(t, map[string]cannedResponse{
		"/link/token/create": {status: http.StatusOK, body: linkTokenResponse},
	})

	_, err := client.CreateLinkToken(context.Background(), "user-1", "access-sandbox-9")
	require.NoError(t, err)

	body := f.bodies["/link/token/create"]
	require.NotNil(t, body)
	assert.Equal(t, "access-sandbox-9", body["access_token"])
	assert.NotContains(t, body, "products")
}

func TestClient_ExchangePublicToken(t *testing.T) {
	f, client := newFakePlaid(t, map[string]cannedResponse{
		"/item/public_token/exchange": {
			status: http.StatusOK,
			body:   `{"access_token":"access-sandbox-1","item_id":"item-1","request_id":"req-2"}`,
		},
	})

	token, err := client.ExchangePublicToken(context.Background(), "public-sandbox-1")
	require.NoError(t, err)
	assert.Equal(t, "access-sandbox-1", token)
	assert.Equal(t, "public-sandbox-1", f.bodies["/item/public_token/exchange"]["public_token"])
}

func TestClient_TransactionsSync_Errors(t *testing.T) {
	tests := []struct {
		name              string
		resp              cannedResponse
		wantCode          string
		wantLoginRequired bool
		wantCause         bool
	}{
		{
			name: "plaid error envelope",
			resp: cannedResponse{
				status: http.StatusBadRequest,
				body: `{"error_type":"ITEM_ERROR","error_code":"ITEM_LOGIN_REQUIRED",` +
					`"error_message":"the login details of this item have changed",` +
					`"display_message":"Please log in again","request_id":"req-3"}`,
			},
			wantCode:          "ITEM_LOGIN_REQUIRED",
			wantLoginRequired: true,
		},
		{
			name:      "body is not an error envelope",
			resp:      cannedResponse{status: http.StatusBadGateway, contentType: "text/plain", body: "upstream unavailable"},
			wantCause: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, client := newFakePlaid(t, map[string]cannedResponse{"/transactions/sync": tt.resp})

			_, err := client.TransactionsSync(context.Background(), "access-sandbox-1", "")
			require.Error(t, err)
			assert.ErrorIs(t, err, connection.ErrConnection)

			var cerr *connection.Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, "transactions sync", cerr.Op)
			assert.Equal(t, tt.wantCode, cerr.Code)
			assert.Equal(t, tt.wantLoginRequired, cerr.LoginRequired())
			assert.Equal(t, tt.wantCause, cerr.Err != nil)

			body := f.bodies["/transactions/sync"]
			assert.Equal(t, "access-sandbox-1", body["access_token"])
			assert.NotContains(t, body, "cursor")
		})
	}
}

package plaidconn

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/plaid/plaid-go/v41/plaid"

	"github.com/MrJamesThe3rd/onm/internal/connection"
)

const clientName = "onm"

// Config holds the aggregator credentials.
type Config struct {
	ClientID    string
	Secret      string
	Environment string // sandbox or production
	Timeout     time.Duration
	// BaseURL replaces the environment host when set.
	BaseURL string
}

// Client is the plaid-go backed Upstream. It also serves the link flow.
type Client struct {
	api *plaid.APIClient
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.Secret == "" {
		return nil, errors.New("plaid client: client id and secret are required")
	}

	configuration := plaid.NewConfiguration()
	configuration.AddDefaultHeader("PLAID-CLIENT-ID", cfg.ClientID)
	configuration.AddDefaultHeader("PLAID-SECRET", cfg.Secret)

	switch cfg.Environment {
	case "", "sandbox":
		configuration.UseEnvironment(plaid.Sandbox)
	case "production":
		configuration.UseEnvironment(plaid.Production)
	default:
		return nil, fmt.Errorf("plaid client: invalid environment %q", cfg.Environment)
	}

	if cfg.BaseURL != "" {
		configuration.Servers = plaid.ServerConfigurations{{URL: cfg.BaseURL}}
	}

	if cfg.Timeout > 0 {
		configuration.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{api: plaid.NewAPIClient(configuration)}, nil
}

func (c *Client) AccountsBalance(ctx context.Context, accessToken string) ([]plaid.AccountBase, error) {
	req := plaid.NewAccountsBalanceGetRequest(accessToken)

	resp, _, err := c.api.PlaidApi.AccountsBalanceGet(ctx).AccountsBalanceGetRequest(*req).Execute()
	if err != nil {
		return nil, upstreamError("accounts balance", err)
	}

	return resp.GetAccounts(), nil
}

func (c *Client) TransactionsSync(ctx context.Context, accessToken, cursor string) (plaid.TransactionsSyncResponse, error) {
	req := plaid.NewTransactionsSyncRequest(accessToken)
	if cursor != "" {
		req.SetCursor(cursor)
	}

	resp, _, err := c.api.PlaidApi.TransactionsSync(ctx).TransactionsSyncRequest(*req).Execute()
	if err != nil {
		return plaid.TransactionsSyncResponse{}, upstreamError("transactions sync", err)
	}

	return resp, nil
}

// CreateLinkToken starts a link session. With an access token the session
// repairs an existing item instead of creating one.
func (c *Client) CreateLinkToken(ctx context.Context, userID, accessToken string) (string, error) {
	req := plaid.NewLinkTokenCreateRequest(clientName, "en", []plaid.CountryCode{plaid.COUNTRYCODE_US})
	req.SetUser(plaid.LinkTokenCreateRequestUser{ClientUserId: userID})

	if accessToken != "" {
		req.SetAccessToken(accessToken)
	} else {
		req.SetProducts([]plaid.Products{plaid.PRODUCTS_TRANSACTIONS})
	}

	resp, _, err := c.api.PlaidApi.LinkTokenCreate(ctx).LinkTokenCreateRequest(*req).Execute()
	if err != nil {
		return "", upstreamError("link token create", err)
	}

	return resp.GetLinkToken(), nil
}

func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (string, error) {
	req := plaid.NewItemPublicTokenExchangeRequest(publicToken)

	resp, _, err := c.api.PlaidApi.ItemPublicTokenExchange(ctx).ItemPublicTokenExchangeRequest(*req).Execute()
	if err != nil {
		return "", upstreamError("public token exchange", err)
	}

	return resp.GetAccessToken(), nil
}

// upstreamError decodes the aggregator's error envelope when there is one.
func upstreamError(op string, err error) *connection.Error {
	perr, convErr := plaid.ToPlaidError(err)
	if convErr != nil {
		return &connection.Error{Op: op, Err: err}
	}

	return &connection.Error{
		Op:      op,
		Code:    perr.GetErrorCode(),
		Message: perr.GetErrorMessage(),
	}
}

package randomuser_client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mcdev12/randomuser/go/clients"
)

type RandomUserClient struct {
	*clients.BaseClient
}

// NewRandomUserClient builds a client for the API rooted at baseURL. An empty
// baseURL falls back to the public endpoint.
func NewRandomUserClient(baseURL string) *RandomUserClient {
	if baseURL == "" {
		baseURL = BaseURL
	}

	client := &RandomUserClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}

	client.SetHeader(AcceptHeader, JsonContentType)

	return client
}

// GetRaw sends params to the users endpoint exactly as given, without any
// typed encoding. Used to probe how the API reacts to malformed values.
func (c *RandomUserClient) GetRaw(ctx context.Context, params url.Values) (*clients.Response, error) {
	resp, err := c.Get(ctx, UsersEndpoint, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return resp, nil
}

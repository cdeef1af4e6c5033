package background

import (
	"context"

	"pecheck/internal/messaging"
	"pecheck/internal/models"
	"pecheck/internal/registry"
)

// Client is the typed side of the background channel used by popups.
type Client struct {
	ch *messaging.Channel
}

// NewClient wraps a channel served by a Service.
func NewClient(ch *messaging.Channel) *Client {
	return &Client{ch: ch}
}

// CheckDomain sends a checkDomain request.
func (c *Client) CheckDomain(ctx context.Context, domain string) (*models.PEOwnershipRecord, error) {
	resp, err := c.ch.Send(ctx, messaging.CheckDomain{Domain: domain})
	if err != nil {
		return nil, err
	}
	return resp.Record, nil
}

// PEDatabase sends a getPEDatabase request.
func (c *Client) PEDatabase(ctx context.Context) (*registry.Database, error) {
	resp, err := c.ch.Send(ctx, messaging.GetPEDatabase{})
	if err != nil {
		return nil, err
	}
	if resp.Database == nil {
		return nil, messaging.ErrMissingPayload
	}
	return resp.Database, nil
}

// Send forwards an untyped request, for the generic message endpoint.
func (c *Client) Send(ctx context.Context, req messaging.Request) (messaging.Response, error) {
	return c.ch.Send(ctx, req)
}

// Close stops the underlying channel.
func (c *Client) Close() {
	c.ch.Close()
}

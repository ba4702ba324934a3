package github

import (
	"go.hookshot.dev/webhook-sdk/internal/client"
)

// Client is the SDK surface for handling GitHub webhook deliveries.
type Client struct {
	client *client.Client
}

func NewClient(client *client.Client) *Client {
	return &Client{client}
}

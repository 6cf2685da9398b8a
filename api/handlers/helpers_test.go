package handlers

import (
	"context"
	"testing"

	"iconify-proxy-api/core/interfaces"
)

// failingClient fails the test when the upstream is reached
type failingClient struct {
	t *testing.T
}

func (c *failingClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	c.t.Errorf("unexpected upstream call to %s", url)
	return nil, context.Canceled
}

// noUpstream returns dependencies whose client must never be called
func noUpstream(t *testing.T) interfaces.Dependencies {
	return interfaces.Dependencies{HTTPClient: &failingClient{t: t}}
}
